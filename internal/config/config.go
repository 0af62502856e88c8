package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "go-file-compressor"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "FILE_COMPRESSOR"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// Compression settings
	Compression struct {
		Level  string `mapstructure:"level"`  // fast, default, best
		Format string `mapstructure:"format"` // gzip, zstd, xz, bzip2
	} `mapstructure:"compression"`

	// Quiet disables the progress bar
	Quiet bool `mapstructure:"quiet"`
}

// Global variables
var (
	// Global configuration instance
	Instance AppConfig

	// Status indicators
	ConfigLoaded bool
	ConfigFile   string

	// Ensure initialization happens once per process
	initOnce sync.Once
)

// Initialize sets up the configuration system
func Initialize(cfgFile string) error {
	var err error
	initOnce.Do(func() {
		err = load(cfgFile)
	})
	return err
}

// Reload replaces the current configuration with one read from the
// given file. Used when --config is passed after startup initialization.
func Reload(cfgFile string) error {
	return load(cfgFile)
}

// load builds a viper instance and populates the global Instance
func load(cfgFile string) error {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		addSearchPaths(v)
	}

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Read configuration file
	if readErr := v.ReadInConfig(); readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", readErr)
		}
		// Config file not found, using defaults and environment variables
		ConfigLoaded = false
		ConfigFile = ""
	} else {
		ConfigLoaded = true
		ConfigFile = v.ConfigFileUsed()
	}

	if unmarshalErr := v.Unmarshal(&Instance); unmarshalErr != nil {
		return fmt.Errorf("error parsing config: %w", unmarshalErr)
	}

	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")
	v.SetDefault("log_file", "")

	v.SetDefault("compression.level", "default")
	v.SetDefault("compression.format", "gzip")

	v.SetDefault("quiet", false)
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	// Always check current directory first
	v.AddConfigPath(".")

	// Add user config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, AppName))
	}
}
