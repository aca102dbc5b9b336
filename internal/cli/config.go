package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/transmission/internal/logging"
	"github.com/mesh-intelligence/transmission/internal/paths"
)

// Config keys in config.yaml. Each can be overridden by an environment
// variable with the TRANSMISSION_ prefix, e.g. TRANSMISSION_LOG_LEVEL.
const (
	cfgKeyDataDir          = "data_dir"
	cfgKeyLogLevel         = "log_level"
	cfgKeyLogFormat        = "log_format"
	cfgKeyDefaultReduction = "default_reduction"

	envPrefix = "TRANSMISSION"
)

var errInvalidDefaultReduction = errors.New("default_reduction must be a finite number")

// settings is the resolved CLI configuration.
type settings struct {
	ConfigDir        string
	DataDir          string
	DefaultReduction float64
	Logging          logging.Config
}

// configFile is the structure written to config.yaml by init.
type configFile struct {
	DataDir          string  `yaml:"data_dir,omitempty"`
	LogLevel         string  `yaml:"log_level"`
	LogFormat        string  `yaml:"log_format"`
	DefaultReduction float64 `yaml:"default_reduction"`
}

// loadSettings reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error; defaults apply.
func loadSettings(configDir string) (settings, error) {
	defaults := logging.NewDefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaults.Level)
	v.SetDefault(cfgKeyLogFormat, defaults.Format)
	v.SetDefault(cfgKeyDefaultReduction, 0.0)
	v.SetConfigName(strings.TrimSuffix(paths.ConfigFileName, filepath.Ext(paths.ConfigFileName)))
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	// data_dir from the environment is handled by paths.ResolveDataDir.
	_ = v.BindEnv(cfgKeyLogLevel)
	_ = v.BindEnv(cfgKeyLogFormat)
	_ = v.BindEnv(cfgKeyDefaultReduction)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	raw := v.Get(cfgKeyDefaultReduction)
	reduction, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(reduction) || math.IsInf(reduction, 0) {
		return settings{}, fmt.Errorf("%w: %v", errInvalidDefaultReduction, raw)
	}

	return settings{
		ConfigDir:        configDir,
		DataDir:          v.GetString(cfgKeyDataDir),
		DefaultReduction: reduction,
		Logging: logging.Config{
			Level:  v.GetString(cfgKeyLogLevel),
			Format: v.GetString(cfgKeyLogFormat),
		},
	}, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path, dataDir string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	defaults := logging.NewDefaultConfig()
	cfg := configFile{
		DataDir:          dataDir,
		LogLevel:         defaults.Level,
		LogFormat:        defaults.Format,
		DefaultReduction: 1,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := "# transmissionctl configuration\n" +
		"# default_reduction applies to transmissions that omit mechanical_reduction.\n"
	return true, os.WriteFile(path, append([]byte(header), data...), 0o644)
}
