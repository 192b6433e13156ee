package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/patrickprogramme/srtsync/internal/subtitles"
)

// NoIndex : valeur des flags d'index quand ils ne sont pas fournis.
const NoIndex = -1

var ErrConflictingScope = errors.New("bornes temporelles et bornes d'index ne peuvent pas être combinées")

// BuildScope traduit les bornes des flags en subtitles.Scope.
// Sans borne : fichier entier. Deux bornes du même type : intervalle.
func BuildScope(f *CLIFlags) (subtitles.Scope, error) {
	after := strings.TrimSpace(f.After)
	before := strings.TrimSpace(f.Before)
	hasTime := after != "" || before != ""
	hasIndex := f.AfterIndex != NoIndex || f.BeforeIndex != NoIndex

	if hasTime && hasIndex {
		return subtitles.Scope{}, ErrConflictingScope
	}

	switch {
	case after != "" && before != "":
		return subtitles.BetweenTimes(after, before)
	case after != "":
		return subtitles.AfterTime(after)
	case before != "":
		return subtitles.BeforeTime(before)
	}

	if f.AfterIndex < NoIndex || f.BeforeIndex < NoIndex {
		return subtitles.Scope{}, fmt.Errorf("index négatif : after=%d before=%d", f.AfterIndex, f.BeforeIndex)
	}
	switch {
	case f.AfterIndex != NoIndex && f.BeforeIndex != NoIndex:
		return subtitles.BetweenIndexes(f.AfterIndex, f.BeforeIndex), nil
	case f.AfterIndex != NoIndex:
		return subtitles.AfterIndex(f.AfterIndex), nil
	case f.BeforeIndex != NoIndex:
		return subtitles.BeforeIndex(f.BeforeIndex), nil
	}
	return subtitles.WholeFile(), nil
}

// ResolveDirection : --hasten > --direction > config.
func ResolveDirection(f *CLIFlags, cfgDirection string) (subtitles.Direction, error) {
	if f.Hasten {
		return subtitles.Hasten, nil
	}
	if f.Direction != "" {
		return subtitles.ParseDirection(f.Direction)
	}
	return subtitles.ParseDirection(cfgDirection)
}

// BuildJob assemble le Job de synchronisation pour input à partir des flags et de la config.
func (a *App) BuildJob(input string) (subtitles.Job, error) {
	var job subtitles.Job

	if a.flags.Offset < 0 {
		return job, fmt.Errorf("--offset doit être >= 0 (reçu %d)", a.flags.Offset)
	}
	dir, err := ResolveDirection(a.flags, a.cfg.Direction)
	if err != nil {
		return job, fmt.Errorf("direction: %w", err)
	}
	scope, err := BuildScope(a.flags)
	if err != nil {
		return job, fmt.Errorf("scope: %w", err)
	}

	job = subtitles.Job{
		Input:     input,
		Output:    a.flags.Output,
		Extension: a.cfg.Extension,
		Options: subtitles.Options{
			Offset:    a.flags.Offset,
			Direction: dir,
			Scope:     scope,
		},
		Backup: a.cfg.Backup || a.flags.Backup,
		DryRun: a.flags.DryRun,
	}
	return job, nil
}
