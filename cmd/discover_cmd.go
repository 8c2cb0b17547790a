package cmd

import (
	"fmt"

	"github.com/dzjyyds666/dentry/parse/desktop"
	"github.com/dzjyyds666/dentry/pkg"
	"github.com/spf13/cobra"
)

var showAll bool

var discoverCmd = &cobra.Command{
	Use:   "discover [dir...]",
	Short: "List installed applications",
	Long: `Search the "applications" directory of every XDG data directory (or the given
directories) for desktop entry files and print each path with its localized name.
Symbolic links are not followed.`,
	RunE: discoverRun,
}

func init() {
	flags := discoverCmd.Flags()
	flags.BoolVarP(&showAll, "all", "a", false, "include entries with NoDisplay or Hidden set")
	flags.String("data-dirs", "", "override $XDG_DATA_DIRS")
	flags.String("data-home", "", "override $XDG_DATA_HOME")
	flags.IntP("jobs", "j", 0, "files parsed in parallel (default: GOMAXPROCS)")
	_ = cfg.BindPFlag(keyDataDirs, flags.Lookup("data-dirs"))
	_ = cfg.BindPFlag(keyDataHome, flags.Lookup("data-home"))
	_ = cfg.BindPFlag(keyJobs, flags.Lookup("jobs"))
}

func discoverRun(cmd *cobra.Command, args []string) error {
	locale, err := resolveLocale(cfg)
	if err != nil {
		return err
	}

	dirs := args
	if len(dirs) == 0 {
		dirs = applicationDirs(cfg)
	}
	logger.Debug("searching for desktop files", "dirs", dirs)

	paths := pkg.DiscoverInDirs(dirs)
	loaded, diags, err := pkg.LoadEntries(cmd.Context(), paths, cfg.GetInt(keyJobs))
	if err != nil {
		return err
	}
	for _, d := range diags {
		logger.Warn("skipping desktop file", "path", d.Path, "code", d.Code, "err", d.Cause)
	}

	out := cmd.OutOrStdout()
	for _, le := range loaded {
		if !showAll && le.Entry.Hidden() {
			continue
		}
		name, _ := le.Entry.LocalizedGet(desktop.KeyName.String(), locale)
		fmt.Fprintf(out, "%s\t%s\n", le.Path, name)
	}
	return nil
}
