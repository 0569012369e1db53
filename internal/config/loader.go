package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds process-wide settings.
type Config struct {
	ListenAddr     string
	AllowedOrigins []string
	StagingDir     string
	DefaultSheet   string
	Development    bool
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	return Config{
		ListenAddr:     ":8080",
		AllowedOrigins: []string{"http://localhost:3000"},
		StagingDir:     filepath.Join(os.TempDir(), "template-automation"),
		DefaultSheet:   "INSERT",
		Development:    false,
	}
}

// Load reads config.yaml from configPath with TEMPLATER_-prefixed environment
// overrides. A missing config file is not an error; defaults apply.
func Load(configPath string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("TEMPLATER")

	v.BindEnv("server.listen_addr")
	v.BindEnv("server.allowed_origins")
	v.BindEnv("staging.dir")
	v.BindEnv("template.default_sheet")
	v.BindEnv("log.development")

	_ = v.ReadInConfig()

	if v.IsSet("server.listen_addr") {
		cfg.ListenAddr = v.GetString("server.listen_addr")
	}
	if v.IsSet("server.allowed_origins") {
		cfg.AllowedOrigins = v.GetStringSlice("server.allowed_origins")
	}
	if v.IsSet("staging.dir") {
		cfg.StagingDir = v.GetString("staging.dir")
	}
	if v.IsSet("template.default_sheet") {
		cfg.DefaultSheet = v.GetString("template.default_sheet")
	}
	if v.IsSet("log.development") {
		cfg.Development = v.GetBool("log.development")
	}

	return cfg, nil
}
