package subtitles

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeSRT(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o640); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func readFile(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read %s: %v", p, err)
	}
	return string(b)
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSyncFile_InPlace(t *testing.T) {
	dir := t.TempDir()
	p := writeSRT(t, dir, "a.srt", "1\n00:00:01,000 --> 00:00:05,000\nHi\n")

	res, err := SyncFile(context.Background(), Job{Input: p, Options: Options{Offset: 2000}})
	if err != nil {
		t.Fatalf("SyncFile error: %v", err)
	}
	if res.Output != p {
		t.Fatalf("Output = %q; want %q", res.Output, p)
	}
	if got, want := readFile(t, p), "1\n00:00:03,000 --> 00:00:07,000\nHi\n"; got != want {
		t.Fatalf("content = %q; want %q", got, want)
	}
	// un seul fichier, sans temporaire résiduel
	if diff := cmp.Diff([]string{"a.srt"}, dirNames(t, dir)); diff != "" {
		t.Fatalf("directory content (-want +got):\n%s", diff)
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Fatalf("mode = %v; want 0640", info.Mode().Perm())
	}
}

func TestSyncFile_SeparateOutput(t *testing.T) {
	dir := t.TempDir()
	src := "1\n00:00:01,000 --> 00:00:05,000\nHi\n"
	in := writeSRT(t, dir, "in.srt", src)
	out := filepath.Join(dir, "sub", "out.SRT")

	res, err := SyncFile(context.Background(), Job{
		Input:   in,
		Output:  out,
		Options: Options{Offset: 500, Direction: Hasten},
	})
	if err != nil {
		t.Fatalf("SyncFile error: %v", err)
	}
	if got := readFile(t, in); got != src {
		t.Fatalf("source modified: %q", got)
	}
	if got, want := readFile(t, out), "1\n00:00:00,500 --> 00:00:04,500\nHi\n"; got != want {
		t.Fatalf("output = %q; want %q", got, want)
	}
	if res.Stats.Shifted != 1 {
		t.Fatalf("Stats = %+v", res.Stats)
	}
}

func TestSyncFile_Extension(t *testing.T) {
	dir := t.TempDir()
	in := writeSRT(t, dir, "a.txt", "1\n")
	_, err := SyncFile(context.Background(), Job{Input: in, Options: Options{Offset: 1}})
	if !errors.Is(err, ErrExtension) {
		t.Fatalf("error = %v; want ErrExtension", err)
	}

	srt := writeSRT(t, dir, "b.srt", "1\n")
	_, err = SyncFile(context.Background(), Job{Input: srt, Output: filepath.Join(dir, "b.txt"), Options: Options{Offset: 1}})
	var ee *ExtensionError
	if !errors.As(err, &ee) || !strings.HasSuffix(ee.Path, "b.txt") {
		t.Fatalf("error = %v; want *ExtensionError on output", err)
	}

	// extension personnalisée
	if _, err := SyncFile(context.Background(), Job{Input: in, Extension: ".txt", Options: Options{Offset: 1}}); err != nil {
		t.Fatalf("custom extension: %v", err)
	}
}

func TestSyncFile_MissingInput(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.srt")
	_, err := SyncFile(context.Background(), Job{Input: p, Options: Options{Offset: 1}})
	if !errors.Is(err, ErrIO) {
		t.Fatalf("error = %v; want ErrIO", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v; want os.ErrNotExist as cause", err)
	}
}

func TestSyncFile_FailureLeavesOriginal(t *testing.T) {
	dir := t.TempDir()
	src := "1\n99:59:59,000 --> 99:59:59,900\nHi\n"
	p := writeSRT(t, dir, "a.srt", src)

	_, err := SyncFile(context.Background(), Job{Input: p, Options: Options{Offset: 5000}})
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("error = %v; want ErrOutOfRange", err)
	}
	if got := readFile(t, p); got != src {
		t.Fatalf("original modified: %q", got)
	}
	if diff := cmp.Diff([]string{"a.srt"}, dirNames(t, dir)); diff != "" {
		t.Fatalf("directory content (-want +got):\n%s", diff)
	}
}

func TestSyncFile_CanceledLeavesOriginal(t *testing.T) {
	dir := t.TempDir()
	src := "1\n00:00:01,000 --> 00:00:02,000\nHi\n"
	p := writeSRT(t, dir, "a.srt", src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := SyncFile(ctx, Job{Input: p, Options: Options{Offset: 5000}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v; want context.Canceled", err)
	}
	if got := readFile(t, p); got != src {
		t.Fatalf("original modified: %q", got)
	}
}

func TestSyncFile_UnwritableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignore les permissions du répertoire")
	}
	dir := t.TempDir()
	src := "1\n00:00:01,000 --> 00:00:02,000\nHi\n"
	p := writeSRT(t, dir, "a.srt", src)
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, err := SyncFile(context.Background(), Job{Input: p, Options: Options{Offset: 1000}})
	if !errors.Is(err, ErrIO) {
		t.Fatalf("error = %v; want ErrIO", err)
	}
	if got := readFile(t, p); got != src {
		t.Fatalf("original modified: %q", got)
	}
}

func TestSyncFile_BackupAndDryRun(t *testing.T) {
	dir := t.TempDir()
	src := "1\n00:00:01,000 --> 00:00:02,000\nHi\n"
	p := writeSRT(t, dir, "a.srt", src)

	res, err := SyncFile(context.Background(), Job{Input: p, DryRun: true, Options: Options{Offset: 1000}})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if res.Stats.Shifted != 1 || readFile(t, p) != src {
		t.Fatalf("dry run wrote or miscounted: %+v", res.Stats)
	}

	res, err = SyncFile(context.Background(), Job{Input: p, Backup: true, Options: Options{Offset: 1000}})
	if err != nil {
		t.Fatalf("backup run: %v", err)
	}
	if res.Backup == "" {
		t.Fatal("expected backup path")
	}
	if got := readFile(t, res.Backup); got != src {
		t.Fatalf("backup content = %q; want original", got)
	}
	if got := readFile(t, p); !strings.Contains(got, "00:00:02,000 --> 00:00:03,000") {
		t.Fatalf("content not shifted: %q", got)
	}
}
