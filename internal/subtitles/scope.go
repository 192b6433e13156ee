package subtitles

import (
	"fmt"
)

// ScopeKind identifie le type de filtre appliqué aux lignes d'horodatage.
type ScopeKind int

const (
	ScopeWhole ScopeKind = iota
	ScopeAfterTime
	ScopeBeforeTime
	ScopeBetweenTimes
	ScopeAfterIndex
	ScopeBeforeIndex
	ScopeBetweenIndexes
)

// Scope décide, ligne par ligne, si un intervalle doit être décalé.
// Les bornes temporelles sont comparées à l'intervalle d'origine (avant décalage),
// les bornes d'index au dernier index de sous-titre rencontré.
// La valeur zéro est ScopeWhole.
type Scope struct {
	Kind ScopeKind

	// bornes temporelles, en ms
	After  int64
	Before int64

	// bornes d'index
	StartIndex int
	EndIndex   int
}

// WholeFile : tout le fichier est décalé.
func WholeFile() Scope {
	return Scope{Kind: ScopeWhole}
}

// AfterTime : seuls les sous-titres qui commencent strictement après cutoff.
func AfterTime(cutoff string) (Scope, error) {
	ms, err := ParseTimestamp(cutoff)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Kind: ScopeAfterTime, After: ms}, nil
}

// BeforeTime : seuls les sous-titres qui finissent strictement avant cutoff.
func BeforeTime(cutoff string) (Scope, error) {
	ms, err := ParseTimestamp(cutoff)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Kind: ScopeBeforeTime, Before: ms}, nil
}

// BetweenTimes combine AfterTime(after) et BeforeTime(before).
func BetweenTimes(after, before string) (Scope, error) {
	a, err := ParseTimestamp(after)
	if err != nil {
		return Scope{}, err
	}
	b, err := ParseTimestamp(before)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Kind: ScopeBetweenTimes, After: a, Before: b}, nil
}

// AfterIndex : index courant > n. Avec n < 1 cela revient à WholeFile
// pour un fichier correctement numéroté.
func AfterIndex(n int) Scope {
	return Scope{Kind: ScopeAfterIndex, StartIndex: n}
}

// BeforeIndex : index courant < n.
func BeforeIndex(n int) Scope {
	return Scope{Kind: ScopeBeforeIndex, EndIndex: n}
}

// BetweenIndexes : start < index courant < end (bornes exclues).
func BetweenIndexes(start, end int) Scope {
	return Scope{Kind: ScopeBetweenIndexes, StartIndex: start, EndIndex: end}
}

// Includes indique si l'intervalle d'origine r, lu sous l'index index, est concerné.
func (s Scope) Includes(r Range, index int) bool {
	switch s.Kind {
	case ScopeWhole:
		return true
	case ScopeAfterTime:
		return s.After < r.Start
	case ScopeBeforeTime:
		return s.Before > r.End
	case ScopeBetweenTimes:
		return s.After < r.Start && s.Before > r.End
	case ScopeAfterIndex:
		return index > s.StartIndex
	case ScopeBeforeIndex:
		return index < s.EndIndex
	case ScopeBetweenIndexes:
		return index > s.StartIndex && index < s.EndIndex
	default:
		return false
	}
}

func (s Scope) String() string {
	ts := func(ms int64) string {
		out, err := FormatTimestamp(ms)
		if err != nil {
			return fmt.Sprintf("%dms", ms)
		}
		return out
	}
	switch s.Kind {
	case ScopeWhole:
		return "fichier entier"
	case ScopeAfterTime:
		return "après " + ts(s.After)
	case ScopeBeforeTime:
		return "avant " + ts(s.Before)
	case ScopeBetweenTimes:
		return fmt.Sprintf("entre %s et %s", ts(s.After), ts(s.Before))
	case ScopeAfterIndex:
		return fmt.Sprintf("après l'index %d", s.StartIndex)
	case ScopeBeforeIndex:
		return fmt.Sprintf("avant l'index %d", s.EndIndex)
	case ScopeBetweenIndexes:
		return fmt.Sprintf("entre les index %d et %d", s.StartIndex, s.EndIndex)
	default:
		return fmt.Sprintf("ScopeKind(%d)", int(s.Kind))
	}
}
