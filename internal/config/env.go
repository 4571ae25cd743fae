package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvPort            = "PORT"
	EnvModelPath       = "HOUSEPRICED_MODEL_PATH"
	EnvStrictStartup   = "HOUSEPRICED_STRICT_STARTUP"
	EnvLogLevel        = "HOUSEPRICED_LOG_LEVEL"
	EnvLogFormat       = "HOUSEPRICED_LOG_FORMAT"
	EnvLogFile         = "HOUSEPRICED_LOG_FILE"
	EnvRequestLogLevel = "HOUSEPRICED_REQUEST_LOG_LEVEL"
)

// LoadDotEnv loads variables from path into the process environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("port", EnvPort)
	v.BindEnv("model_path", EnvModelPath)
	v.BindEnv("strict_startup", EnvStrictStartup)
	v.BindEnv("log_level", EnvLogLevel)
	v.BindEnv("log_format", EnvLogFormat)
	v.BindEnv("log_file", EnvLogFile)
	v.BindEnv("request_log_level", EnvRequestLogLevel)
}

// ApplyEnv overlays environment variables onto cfg. Unset or empty
// variables leave the field untouched.
func ApplyEnv(cfg *Config) error {
	v := viper.New()
	bindEnvVars(v)

	if s := strings.TrimSpace(v.GetString("port")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s: not a number: %q", EnvPort, s)
		}
		cfg.Port = n
	}
	if s := v.GetString("model_path"); s != "" {
		cfg.ModelPath = s
	}
	if s := strings.TrimSpace(v.GetString("strict_startup")); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%s: not a boolean: %q", EnvStrictStartup, s)
		}
		cfg.StrictStartup = b
	}
	if s := v.GetString("log_level"); s != "" {
		cfg.LogLevel = s
	}
	if s := v.GetString("log_format"); s != "" {
		cfg.LogFormat = s
	}
	if s := v.GetString("log_file"); s != "" {
		cfg.LogFile = s
	}
	if s := v.GetString("request_log_level"); s != "" {
		cfg.RequestLogLevel = s
	}
	return nil
}
