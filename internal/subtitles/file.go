package subtitles

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/patrickprogramme/srtsync/internal/fsutil"
	"github.com/pkg/errors"
)

// DefaultExtension : extension exigée par défaut pour l'entrée et la sortie.
const DefaultExtension = ".srt"

// Job décrit une synchronisation de fichier.
type Job struct {
	Input     string
	Output    string // vide => Input (modification sur place)
	Extension string // vide => DefaultExtension
	Options   Options
	Backup    bool // sauvegarde horodatée de la destination avant remplacement
	DryRun    bool // passe complète sans rien écrire
}

// Result : bilan d'un SyncFile.
type Result struct {
	Output string
	Backup string // chemin de la sauvegarde, vide si aucune
	Stats  Stats
}

// Destination retourne le chemin de sortie effectif.
func (j Job) Destination() string {
	if j.Output == "" {
		return j.Input
	}
	return j.Output
}

// Validate vérifie les extensions avant toute ouverture de fichier.
func (j Job) Validate() error {
	ext := j.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	if !fsutil.HasExtension(j.Input, ext) {
		return &ExtensionError{Path: j.Input, Want: ext}
	}
	if dst := j.Destination(); !fsutil.HasExtension(dst, ext) {
		return &ExtensionError{Path: dst, Want: ext}
	}
	if j.Options.Offset < 0 {
		return errors.Errorf("offset négatif : %d ms", j.Options.Offset)
	}
	return nil
}

// SyncFile applique Sync au fichier j.Input. La sortie est écrite dans un
// fichier temporaire puis renommée en destination une fois la passe terminée :
// en cas d'échec, la source et la destination restent intactes.
func SyncFile(ctx context.Context, j Job) (Result, error) {
	res := Result{Output: j.Destination()}
	if err := j.Validate(); err != nil {
		return res, err
	}

	in, err := os.Open(j.Input)
	if err != nil {
		return res, &IOError{Op: opOpen, Path: j.Input, Err: err}
	}
	defer in.Close()

	if j.DryRun {
		st, err := Sync(ctx, in, io.Discard, j.Options)
		res.Stats = st
		return res, withPath(err, j.Input, res.Output)
	}

	perm := os.FileMode(0o644)
	if info, err := in.Stat(); err == nil {
		perm = info.Mode().Perm()
	}

	var st Stats
	var passErr error
	werr := fsutil.WriteStreamAtomic(res.Output, perm, func(w io.Writer) error {
		st, passErr = Sync(ctx, in, w, j.Options)
		if passErr != nil {
			return passErr
		}
		// la sauvegarde se fait au dernier moment, juste avant le renommage
		if j.Backup {
			b, err := fsutil.BackupFile(res.Output)
			if err != nil {
				return &IOError{Op: opBackup, Path: res.Output, Err: err}
			}
			res.Backup = b
		}
		return nil
	})
	res.Stats = st
	if passErr != nil {
		return res, withPath(passErr, j.Input, res.Output)
	}
	if werr != nil {
		var ioErr *IOError
		if errors.As(werr, &ioErr) {
			return res, werr
		}
		return res, &IOError{Op: opWrite, Path: filepath.Clean(res.Output), Err: werr}
	}
	return res, nil
}

// withPath complète un IOError sans chemin produit par Sync.
func withPath(err error, input, output string) error {
	var ioErr *IOError
	if errors.As(err, &ioErr) && ioErr.Path == "" {
		ioErr.Path = input
		if ioErr.Op == opWrite {
			ioErr.Path = output
		}
	}
	return err
}
