package cmd

import (
	"fmt"
	"strings"

	"github.com/dzjyyds666/dentry/parse/desktop"
	"github.com/dzjyyds666/dentry/pkg"
	"github.com/spf13/viper"
)

// Config keys. Flags and environment variables are bound onto them in init.
const (
	keyLocale     = "locale"
	keyDataDirs   = "data_dirs"
	keyDataHome   = "data_home"
	keyHome       = "home"
	keyLCMessages = "lc_messages"
	keyLCAll      = "lc_all"
	keyJobs       = "jobs"
	keyVerbose    = "verbose"
)

var envBindings = map[string]string{
	keyDataDirs:   "XDG_DATA_DIRS",
	keyDataHome:   "XDG_DATA_HOME",
	keyHome:       "HOME",
	keyLCMessages: "LC_MESSAGES",
	keyLCAll:      "LC_ALL",
}

// cfg is the only place the process environment is read.
var cfg = newConfig()

func newConfig() *viper.Viper {
	v := viper.New()
	v.AllowEmptyEnv(true)
	v.SetDefault(keyJobs, 0)
	v.SetDefault(keyVerbose, false)
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
	return v
}

// resolveLocale prefers --locale, then LC_MESSAGES, then LC_ALL. A nil
// result means no localized lookup.
func resolveLocale(v *viper.Viper) (*desktop.Locale, error) {
	if s := v.GetString(keyLocale); s != "" {
		l, ok := desktop.ParseLocale(s)
		if !ok {
			return nil, fmt.Errorf("invalid locale %q", s)
		}
		return &l, nil
	}

	l, ok := desktop.LocaleFromEnv(func(name string) (string, bool) {
		key := strings.ToLower(name)
		return v.GetString(key), v.IsSet(key)
	})
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// applicationDirs resolves the directories searched by discover.
func applicationDirs(v *viper.Viper) []string {
	home, _ := pkg.DataHome(v.GetString(keyDataHome), v.GetString(keyHome))
	return pkg.ApplicationDirs(pkg.DataDirs(v.GetString(keyDataDirs)), home)
}
