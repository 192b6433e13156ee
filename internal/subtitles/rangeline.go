package subtitles

import (
	"fmt"
	"regexp"
)

// rangeSeparator sépare début et fin sur une ligne d'horodatage SRT.
const rangeSeparator = " --> "

var reRangeLine = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})$`)

// Range : intervalle d'affichage d'un sous-titre, en millisecondes.
// Start <= End n'est pas garanti en entrée.
type Range struct {
	Start int64
	End   int64
}

// ParseRangeLine reconnaît une ligne "hh:mm:ss,mmm --> hh:mm:ss,mmm".
// line ne doit pas contenir le terminateur de ligne.
// Retourne false pour toute autre ligne : l'appelant la recopie telle quelle.
func ParseRangeLine(line string) (Range, bool) {
	m := reRangeLine.FindStringSubmatch(line)
	if m == nil {
		return Range{}, false
	}
	start, err := ParseTimestamp(m[1])
	if err != nil {
		return Range{}, false
	}
	end, err := ParseTimestamp(m[2])
	if err != nil {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Format ré-encode l'intervalle sous la forme "début --> fin".
func (r Range) Format() (string, error) {
	start, err := FormatTimestamp(r.Start)
	if err != nil {
		return "", err
	}
	end, err := FormatTimestamp(r.End)
	if err != nil {
		return "", err
	}
	return start + rangeSeparator + end, nil
}

// String implémente fmt.Stringer ; les valeurs hors limites sont affichées en ms.
func (r Range) String() string {
	s, err := r.Format()
	if err != nil {
		return fmt.Sprintf("Range{%dms%s%dms}", r.Start, rangeSeparator, r.End)
	}
	return s
}
