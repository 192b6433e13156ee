package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/patrickprogramme/srtsync/internal/clipboard"
	"github.com/patrickprogramme/srtsync/internal/config"
	"github.com/patrickprogramme/srtsync/internal/subtitles"
	"github.com/patrickprogramme/srtsync/internal/ui"
	"github.com/sirupsen/logrus"
)

// CLIFlags contient les information venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	Input      string

	Output    string
	Offset    int64
	Direction string
	Hasten    bool

	After       string
	Before      string
	AfterIndex  int
	BeforeIndex int

	Backup  bool
	DryRun  bool
	Verbose bool
}

// NewCLIFlags retourne des flags sans aucune borne.
func NewCLIFlags() *CLIFlags {
	return &CLIFlags{AfterIndex: NoIndex, BeforeIndex: NoIndex}
}

// App orchestre les différentes dépendances (UI, config, logger...)
type App struct {
	cfg    *config.Config
	ui     ui.Interface
	flags  *CLIFlags
	log    logrus.FieldLogger
	copyFn func(string) error
}

// New construit l'application.
// Pour les tests, on préférera injecter une ui factice.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, log logrus.FieldLogger) *App {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &App{
		cfg:    cfg,
		ui:     uiClient,
		flags:  flags,
		log:    log,
		copyFn: clipboard.WriteAll,
	}
}

// Run exécute le flux principal et retourne le bilan de la synchronisation.
func (a *App) Run(ctx context.Context) (subtitles.Result, error) {
	var res subtitles.Result

	// Récupération du fichier : priorité argument > clipboard > prompt
	input := a.flags.Input
	if input == "" {
		p, err := a.ui.GetSubtitlePath(ctx, a.cfg.Extension, a.cfg.UseClipboard)
		if err != nil {
			return res, fmt.Errorf("get input: %w", err)
		}
		input = p
	}

	job, err := a.BuildJob(input)
	if err != nil {
		return res, err
	}

	entry := a.log.WithFields(logrus.Fields{
		"input":     job.Input,
		"output":    job.Destination(),
		"offset_ms": job.Options.Offset,
		"direction": job.Options.Direction.String(),
		"scope":     job.Options.Scope.String(),
	})
	entry.Debug("synchronisation")

	res, err = subtitles.SyncFile(ctx, job)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return res, fmt.Errorf("opération annulée: %w", err)
		}
		entry.WithError(err).Error("échec de la synchronisation")
		return res, fmt.Errorf("sync %s: %w", job.Input, err)
	}

	entry.WithFields(logrus.Fields{
		"lines":   res.Stats.Lines,
		"ranges":  res.Stats.RangeLines,
		"shifted": res.Stats.Shifted,
		"skipped": res.Stats.Skipped,
		"guarded": res.Stats.Guarded,
		"backup":  res.Backup,
		"dry_run": job.DryRun,
	}).Info("synchronisation terminée")

	a.report(ctx, job, res)

	if a.cfg.CopyOutputPath && !job.DryRun {
		if err := a.copyFn(res.Output); err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: impossible de copier le chemin dans le presse-papier: %v", err))
		} else {
			a.ui.PrintInfo(ctx, "Chemin de sortie copié dans le presse-papier.")
		}
	}
	return res, nil
}

func (a *App) report(ctx context.Context, job subtitles.Job, res subtitles.Result) {
	verb := "retardé(s)"
	if job.Options.Direction == subtitles.Hasten {
		verb = "avancé(s)"
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("%d horodatage(s) %s de %d ms (%s), %d ignoré(s).",
		res.Stats.Shifted, verb, job.Options.Offset, job.Options.Scope, res.Stats.Skipped))
	if res.Stats.Guarded > 0 {
		a.ui.PrintInfo(ctx, fmt.Sprintf("%d horodatage(s) conservé(s) pour éviter un temps négatif ou un intervalle vide.", res.Stats.Guarded))
	}
	if res.Backup != "" {
		a.ui.PrintInfo(ctx, fmt.Sprintf("Sauvegarde : %s", res.Backup))
	}
	if job.DryRun {
		a.ui.PrintInfo(ctx, "Simulation : aucun fichier écrit.")
		return
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Fichier écrit :\n%s", res.Output))
}
