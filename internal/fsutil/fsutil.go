package fsutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// HasExtension indique si path se termine par ext (casse ignorée).
// ext inclut le point, ex: ".srt".
func HasExtension(path, ext string) bool {
	if ext == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext))
}

// WriteFileAtomic écrit data dans destPath de manière atomique : écriture dans
// un fichier temporaire du même répertoire puis os.Rename(tmp -> dest).
// Crée les répertoires parents si nécessaire.
//
// destPath : chemin complet vers le fichier cible.
// data : contenu à écrire.
// perm : permissions POSIX (ex: 0o644).
func WriteFileAtomic(destPath string, data []byte, perm os.FileMode) error {
	return WriteStreamAtomic(destPath, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// WriteStreamAtomic : version streaming de WriteFileAtomic.
// fn écrit le contenu dans un fichier temporaire du répertoire de destPath ;
// le fichier n'est renommé en destPath que si fn, le flush et la fermeture
// réussissent. Dans tous les autres cas le temporaire est supprimé et destPath
// reste intact.
func WriteStreamAtomic(destPath string, perm os.FileMode, fn func(w io.Writer) error) error {
	dir := filepath.Dir(destPath)
	if dir == "" {
		dir = "."
	}
	// repertoire parent existe ?
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "mkdir %s", dir)
	}

	// creation fichier temp, nommé d'après la cible pour le repérer en cas de crash
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(destPath)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()

	promoted := false
	// cleanup si échec
	defer func() {
		_ = tmp.Close()
		if !promoted {
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := fn(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write temp file")
	}
	// best-effort : les données sont au moins dans le cache du système
	_ = tmp.Sync()

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}

	// set permission (best-effort)
	_ = os.Chmod(tmpName, perm)

	// rename
	if err := os.Rename(tmpName, destPath); err != nil {
		return errors.Wrap(err, "rename tmp -> dest")
	}
	promoted = true
	return nil
}

// BackupFile copie path vers path.bak.<horodatage> et retourne le chemin de la copie.
// Si path n'existe pas, retourne "" sans erreur.
func BackupFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "lecture du fichier pour sauvegarde %s", path)
	}
	perm := os.FileMode(0o644)
	if info, serr := os.Stat(path); serr == nil {
		perm = info.Mode().Perm()
	}
	backup := path + ".bak." + time.Now().Format("20060102T150405")
	if err := WriteFileAtomic(backup, data, perm); err != nil {
		return "", errors.Wrapf(err, "écriture de la sauvegarde %s", backup)
	}
	return backup, nil
}
