package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "dentry",
})

var rootCmd = &cobra.Command{
	Use:   "dentry",
	Short: "Dentry reads XDG desktop entry files.",
	Long:  "Dentry parses freedesktop desktop entry files, resolves localized values and lists the applications installed in the XDG data directories.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfg.GetBool(keyVerbose) {
			logger.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Dentry",
	Long:  `All software has versions. This is Dentry's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Dentry v0.1 -- HEAD")
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("locale", "l", "", "locale used for localized keys (default: $LC_MESSAGES, then $LC_ALL)")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	_ = cfg.BindPFlag(keyLocale, flags.Lookup("locale"))
	_ = cfg.BindPFlag(keyVerbose, flags.Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(discoverCmd)
}
