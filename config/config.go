package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Responder   ResponderConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ResponderConfig controls the error responder middleware.
type ResponderConfig struct {
	// ShowStackTrace exposes stack traces in error response bodies. When the
	// key is absent from config it defaults to true only in development.
	ShowStackTrace bool
}

// EnvironmentDevelopment is the environment name that enables stack trace
// exposure by default.
const EnvironmentDevelopment = "development"

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Responder. The stack trace default derives from the environment name
	// and is resolved here, once — never at response time.
	if viper.IsSet("responder.show_stack_trace") {
		cfg.Responder.ShowStackTrace = viper.GetBool("responder.show_stack_trace")
	} else {
		cfg.Responder.ShowStackTrace = cfg.Environment.Name == EnvironmentDevelopment
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)
}

// EnvironmentName reports the process-wide runtime environment name. Used
// when the responder is constructed without a loaded Config.
func EnvironmentName() string {
	if v := os.Getenv("ENVIRONMENT_NAME"); v != "" {
		return v
	}
	return "production"
}

// IsDevelopment reports whether the process runs in development mode.
func IsDevelopment() bool {
	return EnvironmentName() == EnvironmentDevelopment
}
