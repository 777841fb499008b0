// fleetdesk/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	appDirName     = "FleetDesk"
	configFileName = "config.json"
	envPrefix      = "FLEETDESK"
)

// ServerConfig holds the loopback HTTP listener settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr" json:"addr"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level" json:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format" json:"format"`
}

// Data is the persisted application configuration.
type Data struct {
	Server            ServerConfig  `mapstructure:"server" json:"server"`
	Logging           LoggingConfig `mapstructure:"logging" json:"logging"`
	DocumentsDir      string        `mapstructure:"documents_dir" json:"documents_dir"`
	CustomInstallPath string        `mapstructure:"custom_install_path" json:"custom_install_path"`
	Parser            string        `mapstructure:"parser" json:"parser"`
}

var (
	cfg        = Defaults()
	configPath string
	mutex      = &sync.RWMutex{}
)

// Defaults returns the configuration used when no file is present.
func Defaults() Data {
	return Data{
		Server:  ServerConfig{Addr: "127.0.0.1:8787"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Parser:  "pattern",
	}
}

// Validate checks all configuration invariants and reports every violation.
func (d Data) Validate() error {
	var errs []string
	if d.Server.Addr == "" {
		errs = append(errs, "server.addr must not be empty")
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[d.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", d.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[d.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", d.Logging.Format))
	}
	validParsers := map[string]bool{"pattern": true, "line": true}
	if !validParsers[d.Parser] {
		errs = append(errs, fmt.Sprintf("parser must be one of [pattern, line], got %q", d.Parser))
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// DefaultPath returns <UserConfigDir>/FleetDesk/config.json.
func DefaultPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(userConfigDir, appDirName, configFileName), nil
}

// Load reads the configuration at DefaultPath into the process-wide state.
func Load() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration file at path, applies FLEETDESK_* environment
// overrides and validates the result. A missing file leaves the defaults in place.
// On error the process-wide state falls back to defaults and Save is disabled,
// so an unreadable or invalid file is never overwritten.
func LoadFrom(path string) error {
	data, err := read(path)

	mutex.Lock()
	defer mutex.Unlock()
	if err != nil {
		cfg = Defaults()
		configPath = ""
		return err
	}
	cfg = data
	configPath = path
	return nil
}

func read(path string) (Data, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Data{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var data Data
	if err := v.Unmarshal(&data); err != nil {
		return Data{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := data.Validate(); err != nil {
		return Data{}, err
	}
	return data, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("documents_dir", d.DocumentsDir)
	v.SetDefault("custom_install_path", d.CustomInstallPath)
	v.SetDefault("parser", d.Parser)
}

// Save validates data, makes it the process-wide state and writes it to the
// path last passed to Load.
func Save(data Data) error {
	if err := data.Validate(); err != nil {
		return err
	}

	mutex.Lock()
	defer mutex.Unlock()

	if configPath == "" {
		return errors.New("config not loaded")
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("server.addr", data.Server.Addr)
	v.Set("logging.level", data.Logging.Level)
	v.Set("logging.format", data.Logging.Format)
	v.Set("documents_dir", data.DocumentsDir)
	v.Set("custom_install_path", data.CustomInstallPath)
	v.Set("parser", data.Parser)
	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	cfg = data
	return nil
}

// Get returns a copy of the current configuration.
func Get() Data {
	mutex.RLock()
	defer mutex.RUnlock()
	return cfg
}
