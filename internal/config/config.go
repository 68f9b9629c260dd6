package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/frontkit/nextkit/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyGeneratorCommand = "generator.command"
	KeyGeneratorPackage = "generator.package"
	KeyPackageManager   = "package_manager"
	KeyInstallSkip      = "install.skip"
)

var defaults = map[string]any{
	KeyGeneratorCommand: "npx",
	KeyGeneratorPackage: "create-next-app@latest",
	KeyPackageManager:   "npm",
	KeyInstallSkip:      false,
}

var boolKeys = map[string]bool{
	KeyInstallSkip: true,
}

// Settings is the resolved configuration.
type Settings struct {
	GeneratorCommand string
	GeneratorPackage string
	PackageManager   string
	SkipInstall      bool
}

var v = newViper()

func newViper() *viper.Viper {
	nv := viper.New()
	for k, val := range defaults {
		nv.SetDefault(k, val)
	}
	return nv
}

// Dir returns the path to the config directory (~/.nextkit/). NEXTKIT_HOME
// overrides it.
func Dir() string {
	if override := os.Getenv(branding.EnvVar("home")); override != "" {
		return override
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.nextkit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes the config from the config file and environment. A
// missing config file is not an error; a malformed one is.
func Load() error {
	v = newViper()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		GeneratorCommand: v.GetString(KeyGeneratorCommand),
		GeneratorPackage: v.GetString(KeyGeneratorPackage),
		PackageManager:   v.GetString(KeyPackageManager),
		SkipInstall:      v.GetBool(KeyInstallSkip),
	}
}

// Keys returns every known key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}

	var typed any = value
	if boolKeys[key] {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config key %q expects true or false, got %q", key, value)
		}
		typed = b
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	v.Set(key, typed)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
