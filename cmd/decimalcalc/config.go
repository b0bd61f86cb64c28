package main

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// loadConfig reads decimalcalc's optional YAML config the way
// matrixorigin-matrixone and vitessio-vitess load their service config
// through viper: a default in-memory value set, then a file overlay when
// one is present, never erroring just because the file is absent.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("default_round_mode", "HALF_EVEN")
	v.SetDefault("default_precision", 18)
	v.SetDefault("default_scale", 4)

	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound *os.PathError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, err
	}
	return v, nil
}
