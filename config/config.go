// Package config wires the playground's settings registry into viper: defaults, environment bindings and the toml file.
package config

import (
	"strings"

	"github.com/alglib/alglib/constant"
	"github.com/alglib/alglib/filesystem"
	"github.com/alglib/alglib/where"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps dotted configuration keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, binds environment variables and reads the config file if one exists.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}

	return nil
}

// Has reports whether name is a registered configuration key.
func Has(name string) bool {
	_, ok := Default[name]
	return ok
}
