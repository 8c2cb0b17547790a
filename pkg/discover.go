package pkg

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dzjyyds666/dentry/parse/desktop"
	"golang.org/x/sync/errgroup"
)

// DefaultDataDirs is used when XDG_DATA_DIRS is unset or empty.
var DefaultDataDirs = []string{"/usr/local/share", "/usr/share"}

const (
	// DiagnosticParseSkipped marks a file that is not a valid desktop entry.
	DiagnosticParseSkipped = "parse_skipped"
	// DiagnosticReadFailed marks a file that could not be read.
	DiagnosticReadFailed = "read_failed"
)

type (
	// Diagnostic describes a discovered file that was left out of the result.
	Diagnostic struct {
		Code  string
		Path  string
		Cause error
	}

	// LoadedEntry is a discovered file together with its parsed content.
	LoadedEntry struct {
		Path  string
		Entry *desktop.Entry
	}
)

// DataDirs splits an XDG_DATA_DIRS value. Empty elements are dropped and an
// empty result falls back to DefaultDataDirs.
func DataDirs(xdgDataDirs string) []string {
	var dirs []string
	for _, d := range filepath.SplitList(xdgDataDirs) {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) == 0 {
		return append([]string(nil), DefaultDataDirs...)
	}
	return dirs
}

// DataHome returns XDG_DATA_HOME when it is an absolute path, otherwise
// $HOME/.local/share. It reports false when neither is usable.
func DataHome(xdgDataHome, home string) (string, bool) {
	if filepath.IsAbs(xdgDataHome) {
		return xdgDataHome, true
	}
	if home == "" {
		return "", false
	}
	return filepath.Join(home, ".local", "share"), true
}

// ApplicationDirs lists the "applications" directory of every data dir,
// system dirs first and the user data home last.
func ApplicationDirs(dataDirs []string, dataHome string) []string {
	out := make([]string, 0, len(dataDirs)+1)
	for _, d := range dataDirs {
		out = append(out, filepath.Join(d, "applications"))
	}
	if dataHome != "" {
		out = append(out, filepath.Join(dataHome, "applications"))
	}
	return out
}

// CollectDesktopFiles walks root and returns every *.desktop file below it.
// Symbolic links are skipped, not followed, and unreadable directories are
// ignored.
func CollectDesktopFiles(root string) []string {
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return nil
	}

	var files []string
	// The trailing separator makes WalkDir resolve root when it is itself a link.
	_ = filepath.WalkDir(root+string(filepath.Separator), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".desktop") {
			files = append(files, path)
		}
		return nil
	})
	return files
}

// DiscoverInDirs collects desktop files from each of dirs in order.
// Precedence between files sharing a desktop file ID is not applied.
func DiscoverInDirs(dirs []string) []string {
	var files []string
	for _, d := range dirs {
		files = append(files, CollectDesktopFiles(d)...)
	}
	return files
}

// LoadEntries reads and parses paths with at most jobs files in flight.
// Files that fail are reported as diagnostics; the returned entries keep the
// order of paths. The only error returned is a context cancellation.
func LoadEntries(ctx context.Context, paths []string, jobs int) ([]LoadedEntry, []Diagnostic, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	entries := make([]*desktop.Entry, len(paths))
	causes := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := ReadTextFile(path)
			if err != nil {
				causes[i] = err
				return nil
			}
			entries[i], causes[i] = desktop.ParseEntry(src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var (
		loaded []LoadedEntry
		diags  []Diagnostic
	)
	for i, path := range paths {
		switch {
		case causes[i] == nil:
			loaded = append(loaded, LoadedEntry{Path: path, Entry: entries[i]})
		case errors.Is(causes[i], desktop.ErrInvalidLine):
			diags = append(diags, Diagnostic{Code: DiagnosticParseSkipped, Path: path, Cause: causes[i]})
		default:
			diags = append(diags, Diagnostic{Code: DiagnosticReadFailed, Path: path, Cause: causes[i]})
		}
	}
	return loaded, diags, nil
}
