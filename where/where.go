// Package where resolves the directories and files the playground reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/alglib/alglib/constant"
	"github.com/alglib/alglib/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "ALGLIB_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, creating it on first use.
// ALGLIB_CONFIG_PATH takes precedence over the platform user config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// ConfigFile returns the path of the toml file "config write" produces.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

// Logs returns the directory holding the dated log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History returns the file holding the replay history.
func History() string {
	return filepath.Join(Config(), "history.json")
}
