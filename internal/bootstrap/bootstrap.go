package bootstrap

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/patrickprogramme/srtsync/internal/fsutil"
)

// Statuts retournés par ExportDefaults
const (
	StatusWritten     = "written"
	StatusUnchanged   = "unchanged"
	StatusSkipped     = "skipped (different)"
	StatusOverwritten = "overwritten"
)

// ExportDefaults copie les fichiers listés (chemins DANS fsys) vers destDir.
// - force : si true, écrase les fichiers différents (avec backup)
//
// Retourne une map[nom]status et la première erreur rencontrée.
func ExportDefaults(fsys fs.FS, files []string, destDir string, force bool) (map[string]string, error) {
	status := make(map[string]string)

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return status, fmt.Errorf("échec de création du répertoire %s : %w", destDir, err)
	}

	for _, src := range files {
		data, err := fs.ReadFile(fsys, filepath.ToSlash(src))
		if err != nil {
			return status, fmt.Errorf("lecture de la ressource embarquée %s : %w", src, err)
		}

		name := filepath.Base(src)
		destPath := filepath.Join(destDir, name)

		// si le fichier existe déjà : comparer
		if existing, err := os.ReadFile(destPath); err == nil {
			if bytes.Equal(existing, data) {
				status[name] = StatusUnchanged
				continue
			}
			if !force {
				status[name] = StatusSkipped
				continue
			}
			// force == true -> backup + overwrite
			if _, err := fsutil.BackupFile(destPath); err != nil {
				return status, fmt.Errorf("backup failed for %s: %w", destPath, err)
			}
			if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
				return status, fmt.Errorf("échec d'écriture du fichier %s : %w", destPath, err)
			}
			status[name] = StatusOverwritten
			continue
		} else if !os.IsNotExist(err) {
			return status, fmt.Errorf("échec lors du test du fichier %s : %w", destPath, err)
		}

		// dest n'existe pas -> écrire atomiquement
		if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
			return status, fmt.Errorf("échec d'écriture du fichier %s : %w", destPath, err)
		}
		status[name] = StatusWritten
	}

	return status, nil
}

// SortedNames retourne les clés de status triées, pour un affichage stable.
func SortedNames(status map[string]string) []string {
	names := make([]string, 0, len(status))
	for n := range status {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
