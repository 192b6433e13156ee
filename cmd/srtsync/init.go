package main

import (
	"fmt"

	"github.com/patrickprogramme/srtsync/internal/app"
	"github.com/patrickprogramme/srtsync/internal/assets"
	"github.com/patrickprogramme/srtsync/internal/bootstrap"
	"github.com/spf13/cobra"
)

func newInitCmd(flags *app.CLIFlags) *cobra.Command {
	var (
		dir   string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Exporte les fichiers de config d'exemple (YAML et TOML)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = binDir()
			}
			status, err := bootstrap.ExportDefaults(assets.Embedded, assets.DefaultConfigAssets, dir, force)
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, name := range bootstrap.SortedNames(status) {
				fmt.Fprintf(out, "%-24s %s\n", name, status[name])
			}
			if flags.Verbose {
				fmt.Fprintf(out, "répertoire : %s\n", dir)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "répertoire de destination (par défaut : celui de l'exécutable)")
	cmd.Flags().BoolVar(&force, "force", false, "remplacer les fichiers modifiés (une sauvegarde .bak est conservée)")
	return cmd
}
