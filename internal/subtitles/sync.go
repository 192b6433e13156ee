package subtitles

import (
	"bufio"
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// utf8BOM peut préfixer la première ligne d'un fichier SRT.
const utf8BOM = "\ufeff"

var reIndexLine = regexp.MustCompile(`^\d+$`)

// lineState : position dans un bloc de sous-titre.
type lineState int

const (
	expectingIndex lineState = iota // en attente de la ligne d'index
	inBlock                         // index lu, jusqu'à la prochaine ligne vide
)

// Options paramètre une passe de synchronisation.
type Options struct {
	Offset    int64 // ms, >= 0
	Direction Direction
	Scope     Scope
}

// Stats résume une passe.
type Stats struct {
	Lines      int // lignes lues
	RangeLines int // lignes d'horodatage reconnues
	Shifted    int // lignes d'horodatage réécrites
	Skipped    int // lignes d'horodatage hors du scope
	Guarded    int // reculs où une garde a conservé le début ou la fin
}

// Sync lit r ligne par ligne et écrit dans w : les lignes d'horodatage retenues
// par opts.Scope sont décalées, toutes les autres sont recopiées à l'identique
// (terminateur compris). L'état de la passe est local à l'appel.
func Sync(ctx context.Context, r io.Reader, w io.Writer, opts Options) (Stats, error) {
	var st Stats
	if opts.Offset < 0 {
		return st, errors.Errorf("offset négatif : %d ms", opts.Offset)
	}

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	state := expectingIndex
	index := 0

	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		raw, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return st, &IOError{Op: opRead, Err: rerr}
		}
		if raw == "" {
			break
		}
		st.Lines++

		content, eol := splitEOL(raw)
		prefix := ""
		if st.Lines == 1 && strings.HasPrefix(content, utf8BOM) {
			prefix = utf8BOM
			content = content[len(utf8BOM):]
		}

		// transitions de l'automate
		switch state {
		case expectingIndex:
			if reIndexLine.MatchString(content) {
				if n, err := strconv.Atoi(content); err == nil {
					index = n
					state = inBlock
				}
			}
		case inBlock:
			if content == "" {
				state = expectingIndex
			}
		}

		out := raw
		if rng, ok := ParseRangeLine(content); ok {
			st.RangeLines++
			if opts.Scope.Includes(rng, index) {
				shifted := Shift(rng, opts.Offset, opts.Direction)
				text, err := shifted.Format()
				if err != nil {
					return st, errors.Wrapf(err, "ligne %d (%s)", st.Lines, rng)
				}
				if opts.Direction == Hasten && opts.Offset > 0 &&
					(shifted.Start == rng.Start || shifted.End == rng.End) {
					st.Guarded++
				}
				st.Shifted++
				out = prefix + text + eol
			} else {
				st.Skipped++
			}
		}

		if _, err := bw.WriteString(out); err != nil {
			return st, &IOError{Op: opWrite, Err: err}
		}

		if rerr == io.EOF {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return st, &IOError{Op: opWrite, Err: err}
	}
	return st, nil
}

// splitEOL sépare le contenu de la ligne de son terminateur ("\r\n", "\n" ou "").
func splitEOL(line string) (content, eol string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}
