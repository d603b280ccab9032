// Package config is for app wide settings that are unmarshalled
// from Viper (flags, NAPOOP_* environment, napoop.yaml)
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Output formats
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputJSONL = "jsonl"
	OutputFASTA = "fasta"
)

// Config is the root-level settings struct and is a mix
// of settings available in napoop.yaml and those
// available from the command line
type Config struct {
	// output format: text | json | jsonl | fasta
	Output string `mapstructure:"output"`

	// suppress the header line of tabular text output
	NoHeader bool `mapstructure:"no-header"`

	// render text output as styled tables
	Pretty bool `mapstructure:"pretty"`

	// debug | info | warn | error
	LogLevel string `mapstructure:"log-level"`

	// only log errors
	Quiet bool `mapstructure:"quiet"`

	// periodicity scan window (nt past the oligo)
	Window int `mapstructure:"window"`

	// FASTA line width (0 = single line)
	Width int `mapstructure:"width"`

	// snip pads out-of-range positions with n instead of clamping
	Pad bool `mapstructure:"pad"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", OutputText)
	v.SetDefault("no-header", false)
	v.SetDefault("pretty", false)
	v.SetDefault("log-level", "info")
	v.SetDefault("quiet", false)
	v.SetDefault("window", 50)
	v.SetDefault("width", 60)
	v.SetDefault("pad", false)
}

// Load reads settings into a Config. An explicit cfgFile must exist;
// otherwise napoop.yaml is looked up in the working directory and
// $HOME/.config/napoop and skipped when absent.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("NAPOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("napoop")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/napoop")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return c, c.Validate()
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputJSONL, OutputFASTA:
	default:
		return fmt.Errorf("invalid --output %q (text | json | jsonl | fasta)", c.Output)
	}
	if c.Window < 0 {
		return errors.New("--window must be ≥ 0")
	}
	if c.Width < 0 {
		return errors.New("--width must be ≥ 0")
	}
	return nil
}

// Level is the effective log level after --quiet.
func (c Config) Level() string {
	if c.Quiet {
		return "error"
	}
	return c.LogLevel
}
