package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/srtsync/internal/app"
	"github.com/patrickprogramme/srtsync/internal/assets"
	"github.com/patrickprogramme/srtsync/internal/bootstrap"
	"github.com/patrickprogramme/srtsync/internal/config"
	"github.com/patrickprogramme/srtsync/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigName = "srtsync.yaml"

func newRootCmd() *cobra.Command {
	flags := app.NewCLIFlags()

	cmd := &cobra.Command{
		Use:   "srtsync [fichier.srt]",
		Short: "Décale les horodatages d'un fichier de sous-titres SubRip",
		Long: `srtsync retarde ou avance toutes les paires d'horodatage d'un fichier .srt
d'un décalage fixe en millisecondes, éventuellement limité à une plage de temps
ou d'index. Sans argument, le fichier est pris dans le presse-papier ou demandé.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.Input = args[0]
			}
			return runSync(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.Int64VarP(&flags.Offset, "offset", "t", 0, "décalage en millisecondes (>= 0)")
	f.StringVarP(&flags.Direction, "direction", "d", "", "delay (retarder) ou hasten (avancer) ; par défaut celle de la config")
	f.BoolVar(&flags.Hasten, "hasten", false, "raccourci pour --direction hasten")
	f.StringVarP(&flags.Output, "output", "o", "", "fichier de sortie (par défaut : modification sur place)")
	f.StringVar(&flags.After, "after", "", "ne décaler que les sous-titres qui commencent après HH:MM:SS,mmm")
	f.StringVar(&flags.Before, "before", "", "ne décaler que les sous-titres qui finissent avant HH:MM:SS,mmm")
	f.IntVar(&flags.AfterIndex, "after-index", app.NoIndex, "ne décaler que les sous-titres d'index strictement supérieur")
	f.IntVar(&flags.BeforeIndex, "before-index", app.NoIndex, "ne décaler que les sous-titres d'index strictement inférieur")
	f.BoolVar(&flags.Backup, "backup", false, "sauvegarder la destination avant remplacement")
	f.BoolVar(&flags.DryRun, "dry-run", false, "simuler sans rien écrire")
	_ = cmd.MarkFlagRequired("offset")
	cmd.MarkFlagsMutuallyExclusive("direction", "hasten")

	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", defaultConfigName, "chemin du fichier de config (.yaml ou .toml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "logs détaillés (niveau debug)")

	cmd.AddCommand(newInitCmd(flags))
	return cmd
}

// binDir : répertoire de l'exécutable, "." si indéterminable.
func binDir() string {
	exePath, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exePath)
}

// resolveConfigPath : emplacement config par défaut à côté de l'exécutable.
func resolveConfigPath(p string) string {
	if p == defaultConfigName || p == "" {
		return filepath.Join(binDir(), defaultConfigName)
	}
	return p
}

func loadConfig(flags *app.CLIFlags) (*config.Config, *logrus.Logger, error) {
	flags.ConfigPath = resolveConfigPath(flags.ConfigPath)

	asset := assets.DefaultConfigAsset
	if strings.EqualFold(filepath.Ext(flags.ConfigPath), ".toml") {
		asset = assets.DefaultTOMLConfigAsset
	}
	// s'assurer que le fichier config existe, si non on le crée
	created, err := bootstrap.EnsureConfigPresent(flags.ConfigPath, assets.Embedded, asset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: EnsureConfigPresent: %v\n", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config %s: %w", cfg.Path(), err)
	}

	logger, err := cfg.Log.Logger()
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	if flags.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.WithFields(logrus.Fields{"config": cfg.Path(), "created": created}).Debug("configuration chargée")
	return cfg, logger, nil
}

func runSync(cmd *cobra.Command, flags *app.CLIFlags) error {
	cfg, logger, err := loadConfig(flags)
	if err != nil {
		return err
	}

	a := app.New(cfg, ui.NewTerminal(), flags, logger)
	if _, err := a.Run(cmd.Context()); err != nil {
		return err
	}
	return nil
}
