// Package config loads service settings from the environment and an
// optional .env file using viper.
package config

import (
	"strings"

	"git.thinkinpower.net/bingen/data"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      int    `mapstructure:"SERVER_PORT"`
	RunMode         string `mapstructure:"RUN_MODE"`
	DataDir         string `mapstructure:"DATA_DIR"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	DefaultQuantity int    `mapstructure:"DEFAULT_QUANTITY"`
}

const (
	defaultServerPort = 8080
	defaultDataDir    = "./dataset"
	defaultLogLevel   = "info"
)

// LoadConfig reads the optional .env file in path, then the environment.
// Out of range values fall back to their defaults.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", defaultServerPort)
	viper.SetDefault("RUN_MODE", data.RunModeDev)
	viper.SetDefault("DATA_DIR", defaultDataDir)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("DEFAULT_QUANTITY", data.DefaultQuantity)

	_ = viper.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT")
	_ = viper.BindEnv("RUN_MODE")
	_ = viper.BindEnv("DATA_DIR")
	_ = viper.BindEnv("LOG_LEVEL")
	_ = viper.BindEnv("DEFAULT_QUANTITY")

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Warnf("failed to read config file, using environment values: %s", err)
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		err = errors.Wrap(err, "unmarshal config")
		return
	}

	if config.ServerPort <= 0 || config.ServerPort > 65535 {
		logger.Warnf("invalid SERVER_PORT %d, using %d", config.ServerPort, defaultServerPort)
		config.ServerPort = defaultServerPort
	}
	switch config.RunMode {
	case data.RunModeDev, data.RunModeTest, data.RunModeRelease:
	default:
		logger.Warnf("invalid RUN_MODE %q, using %s", config.RunMode, data.RunModeDev)
		config.RunMode = data.RunModeDev
	}
	config.DataDir = strings.TrimSpace(config.DataDir)
	if config.DataDir == "" {
		config.DataDir = defaultDataDir
	}
	if _, levelErr := logger.ParseLevel(config.LogLevel); levelErr != nil {
		logger.Warnf("invalid LOG_LEVEL %q, using %s", config.LogLevel, defaultLogLevel)
		config.LogLevel = defaultLogLevel
	}
	if config.DefaultQuantity < data.MinQuantity || config.DefaultQuantity > data.MaxQuantity {
		logger.Warnf("DEFAULT_QUANTITY %d out of range, using %d", config.DefaultQuantity, data.DefaultQuantity)
		config.DefaultQuantity = data.DefaultQuantity
	}
	return
}
