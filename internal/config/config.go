package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/newkub/templates/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys understood by `config get|set`.
const (
	KeyTemplatesRoot = "templates_root"
	KeyTemplatesRepo = "templates_repo"
)

// Keys lists the settings accepted by Set.
var Keys = []string{KeyTemplatesRoot, KeyTemplatesRepo}

// Dir returns the path to the config directory (~/.templates-cli/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.templates-cli/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// RepoCacheDir is where `fetch` keeps its clone of the templates repository.
func RepoCacheDir() string {
	return filepath.Join(Dir(), "templates-repo")
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyTemplatesRepo, branding.TemplatesRepoURL())

	// A missing config file just means defaults.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// TemplatesRoot picks the directory holding templates/<name>/. In order:
// the explicit flag value, $TEMPLATES_ROOT (relative paths are taken from
// cwd), the templates_root setting, the fetched repository clone, and
// finally two levels above cwd.
func TemplatesRoot(explicit, cwd string) string {
	abs := func(p string) string {
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(cwd, p)
	}

	if explicit != "" {
		return abs(explicit)
	}
	if env := os.Getenv(branding.EnvVar("ROOT")); env != "" {
		return abs(env)
	}
	if setting := Get(KeyTemplatesRoot); setting != "" {
		return abs(setting)
	}
	if info, err := os.Stat(filepath.Join(RepoCacheDir(), "templates")); err == nil && info.IsDir() {
		return RepoCacheDir()
	}
	return filepath.Join(cwd, "..", "..")
}
