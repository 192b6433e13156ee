package subtitles

import (
	"fmt"
	"strings"
)

// Direction du décalage.
// Delay ajoute l'offset sans condition ; Hasten le retranche avec les gardes de Retreat.
type Direction int

const (
	Delay Direction = iota
	Hasten
)

func (d Direction) String() string {
	switch d {
	case Delay:
		return "delay"
	case Hasten:
		return "hasten"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepte "delay"/"advance" et "hasten"/"retreat" (casse ignorée).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "delay", "advance", "":
		return Delay, nil
	case "hasten", "retreat":
		return Hasten, nil
	default:
		return Delay, fmt.Errorf("direction inconnue %q (attendu : delay ou hasten)", s)
	}
}

// Advance décale début et fin de +offset.
func Advance(r Range, offset int64) Range {
	return Range{Start: r.Start + offset, End: r.End + offset}
}

// Retreat décale début et fin de -offset, sous deux gardes indépendantes :
//   - le début n'est retranché que si Start > offset, sinon il garde sa valeur
//     d'origine (pas de remise à zéro) ;
//   - la fin n'est retranchée que si le résultat reste strictement après le
//     début (éventuellement déjà ajusté), sinon elle garde sa valeur.
//
// Les gardes n'évitent que les inversions causées par le décalage ; un
// intervalle déjà inversé en entrée n'est pas corrigé.
func Retreat(r Range, offset int64) Range {
	out := r
	if out.Start > offset {
		out.Start -= offset
	}
	if r.End-offset > out.Start {
		out.End -= offset
	}
	return out
}

// Shift applique Advance ou Retreat selon dir.
func Shift(r Range, offset int64, dir Direction) Range {
	if dir == Hasten {
		return Retreat(r, offset)
	}
	return Advance(r, offset)
}
