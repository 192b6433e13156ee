package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/patrickprogramme/srtsync/internal/clipboard"
	"github.com/patrickprogramme/srtsync/internal/fsutil"
)

type terminalUI struct {
	reader  *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	readClp func() (string, error)
}

func NewTerminal() Interface {
	return newTerminal(os.Stdin, os.Stdout, os.Stderr, clipboard.ReadPath)
}

func newTerminal(in io.Reader, out, errOut io.Writer, readClp func() (string, error)) *terminalUI {
	return &terminalUI{
		reader:  bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
		readClp: readClp,
	}
}

// IsSubtitleFile indique si p désigne un fichier régulier existant portant l'extension ext.
func IsSubtitleFile(p, ext string) bool {
	if p == "" || !fsutil.HasExtension(p, ext) {
		return false
	}
	st, err := os.Stat(p)
	return err == nil && st.Mode().IsRegular()
}

func (t *terminalUI) GetSubtitlePath(ctx context.Context, ext string, useClipboard bool) (string, error) {
	// 1) clipboard
	if useClipboard && t.readClp != nil {
		if clip, err := t.readClp(); err == nil && IsSubtitleFile(clip, ext) {
			t.PrintInfo(ctx, fmt.Sprintf("Utilisation du fichier depuis le presse-papier: %s", clip))
			return clip, nil
		}
	}
	// 2) prompt
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(t.out, "Entrez le chemin d'un fichier %s: ", ext)
		input, err := t.reader.ReadString('\n')
		p := clipboard.CleanPath(input)
		if IsSubtitleFile(p, ext) {
			return p, nil
		}
		if err != nil {
			// plus rien à lire : inutile de boucler
			return "", fmt.Errorf("lecture stdin: %w", err)
		}
		fmt.Fprintf(t.out, "❌ Fichier introuvable ou extension différente de %s. Essayez à nouveau.\n", ext)
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, s)
}
