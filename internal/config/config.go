package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	ledgerconfig "github.com/heroarena/ledger/modules/ledger/config"
	"github.com/heroarena/ledger/pkg/logger"
	"github.com/heroarena/ledger/pkg/logger/slogx"
	"github.com/heroarena/ledger/pkg/middleware/requestlogger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	conf       = &Config{
		Logger: logger.Config{
			Output: "text",
		},
		HTTPServer: HTTPServer{
			Port: 8080,
		},
		EnableModules: []string{"ledger"},
	}
)

type Config struct {
	Logger        logger.Config `mapstructure:"logger"`
	HTTPServer    HTTPServer    `mapstructure:"http_server"`
	EnableModules []string      `mapstructure:"enable_modules"`
	APIOnly       bool          `mapstructure:"api_only"`
	Modules       Modules       `mapstructure:"modules"`
}

type HTTPServer struct {
	Port   int                  `mapstructure:"port"`
	Logger requestlogger.Config `mapstructure:"logger"`
}

type Modules struct {
	Ledger ledgerconfig.Config `mapstructure:"ledger"`
}

// BindPFlag binds a command-line flag to a configuration key.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("failed to bind flag to configuration", slogx.Error(err), slog.String("key", key))
	}
}

// Parse reads the configuration from the given file (or ./config.yaml if
// empty), environment variables and bound flags. Subsequent calls return the
// already parsed configuration.
func Parse(configFile string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.WarnContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(&conf); err != nil {
			logger.PanicContext(ctx, "failed to unmarshal config", slogx.Error(err))
		}
	})

	return *conf
}

// Load returns the parsed configuration. If Parse was never called, it parses
// with the default config file lookup.
func Load() Config {
	return Parse("")
}
