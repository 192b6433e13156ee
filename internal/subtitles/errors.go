package subtitles

import (
	"fmt"

	"github.com/pkg/errors"
)

// Erreurs sentinelles, à tester avec errors.Is.
var (
	ErrExtension  = errors.New("extension de fichier invalide")
	ErrFormat     = errors.New("format d'horodatage invalide")
	ErrOutOfRange = errors.New("horodatage hors limites")
	ErrIO         = errors.New("erreur d'entrée/sortie")
)

// ExtensionError : le chemin d'entrée ou de sortie n'a pas l'extension attendue.
type ExtensionError struct {
	Path string
	Want string
}

func (e *ExtensionError) Error() string {
	return fmt.Sprintf("le fichier %q doit avoir l'extension %s", e.Path, e.Want)
}

func (e *ExtensionError) Is(target error) bool { return target == ErrExtension }

// FormatError : chaîne qui ne respecte pas le format fixe hh:mm:ss,mmm.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("horodatage %q invalide : format attendu hh:mm:ss,mmm (01:23:45,678)", e.Value)
	}
	return fmt.Sprintf("horodatage %q invalide : %s", e.Value, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// RangeError : valeur en millisecondes non représentable en hh:mm:ss,mmm.
type RangeError struct {
	Ms int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%d ms hors de l'intervalle [0, %d]", e.Ms, MaxTimestamp)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// opérations rapportées par IOError
const (
	opOpen   = "ouverture"
	opRead   = "lecture"
	opWrite  = "écriture"
	opBackup = "sauvegarde"
)

// IOError enveloppe un échec open/read/write/rename/remove avec son contexte.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s : %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s : %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
