package ui

import (
	"context"
)

type Interface interface {
	// GetSubtitlePath doit renvoyer le chemin d'un fichier existant portant l'extension ext.
	// Implémentation terminale : priorité clipboard (si useClipboard) -> prompt
	GetSubtitlePath(ctx context.Context, ext string, useClipboard bool) (string, error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
