package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

// ReadPath lit le presse-papier et le nettoie pour l'utiliser comme chemin :
// BOM, espaces et guillemets ("Copier en tant que chemin" sous Windows) retirés.
// Seule la première ligne est conservée.
func ReadPath() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return CleanPath(text), nil
}

// CleanPath applique le nettoyage de ReadPath à s.
func CleanPath(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
// Retourne une erreur si l'opération échoue.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("le texte à copier ne peut pas être vide")
	}
	return clipboard.WriteAll(text)
}
