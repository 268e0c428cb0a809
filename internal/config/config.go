package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type UIConfig struct {
	SplitRatio    float64 `mapstructure:"split_ratio"`
	MinPaneWidth  int     `mapstructure:"min_pane_width"`
	MaxListFrac   float64 `mapstructure:"max_list_frac"`
	MaxDetailFrac float64 `mapstructure:"max_detail_frac"`
}

type ExportConfig struct {
	Format            string `mapstructure:"format"`
	Dir               string `mapstructure:"dir"`
	IncludeSpeakers   bool   `mapstructure:"include_speakers"`
	IncludeTimestamps bool   `mapstructure:"include_timestamps"`
}

type TranscriptConfig struct {
	MacrosPath  string  `mapstructure:"macros_path"`
	MinConf     float64 `mapstructure:"min_confidence"`
	SeekStepSec int     `mapstructure:"seek_step_sec"`
}

type Config struct {
	UI         UIConfig         `mapstructure:"ui"`
	Export     ExportConfig     `mapstructure:"export"`
	Transcript TranscriptConfig `mapstructure:"transcript"`

	path string
}

func defaults(v *viper.Viper, dir string) {
	v.SetDefault("ui.split_ratio", 0.5)
	v.SetDefault("ui.min_pane_width", 24)
	v.SetDefault("ui.max_list_frac", 0.0)
	v.SetDefault("ui.max_detail_frac", 0.0)
	v.SetDefault("export.format", "srt")
	v.SetDefault("export.dir", "exports")
	v.SetDefault("export.include_speakers", true)
	v.SetDefault("export.include_timestamps", true)
	v.SetDefault("transcript.macros_path", filepath.Join(dir, "macros.toml"))
	v.SetDefault("transcript.min_confidence", 0.85)
	v.SetDefault("transcript.seek_step_sec", 5)
}

func configDir() (string, error) {
	if p := os.Getenv("SCRIBEDECK_CONFIG"); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "scribedeck"), nil
}

// Load reads config.toml from the scribedeck config directory, creating
// it with defaults on first run. SCRIBEDECK_* environment variables
// override file values (SCRIBEDECK_UI_SPLIT_RATIO and so on).
func Load() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}
	v := viper.New()
	defaults(v, dir)
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("SCRIBEDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Config{}, fmt.Errorf("creating config dir: %w", err)
		}
		if err := v.SafeWriteConfigAs(filepath.Join(dir, "config.toml")); err != nil {
			return Config{}, fmt.Errorf("writing default config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.path = filepath.Join(dir, "config.toml")
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.UI.SplitRatio < 0 || c.UI.SplitRatio > 1 {
		return fmt.Errorf("ui.split_ratio %v outside [0,1]", c.UI.SplitRatio)
	}
	if c.UI.MinPaneWidth < 0 {
		return fmt.Errorf("ui.min_pane_width must be non-negative")
	}
	switch c.Export.Format {
	case "srt", "vtt", "txt", "json":
	default:
		return fmt.Errorf("export.format %q not one of srt, vtt, txt, json", c.Export.Format)
	}
	if c.Transcript.SeekStepSec <= 0 {
		return fmt.Errorf("transcript.seek_step_sec must be positive")
	}
	return nil
}

// Save writes the current values back to config.toml. Used on exit to
// persist presentation state like the split ratio.
func (c Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config has no backing file")
	}
	v := viper.New()
	v.Set("ui.split_ratio", c.UI.SplitRatio)
	v.Set("ui.min_pane_width", c.UI.MinPaneWidth)
	v.Set("ui.max_list_frac", c.UI.MaxListFrac)
	v.Set("ui.max_detail_frac", c.UI.MaxDetailFrac)
	v.Set("export.format", c.Export.Format)
	v.Set("export.dir", c.Export.Dir)
	v.Set("export.include_speakers", c.Export.IncludeSpeakers)
	v.Set("export.include_timestamps", c.Export.IncludeTimestamps)
	v.Set("transcript.macros_path", c.Transcript.MacrosPath)
	v.Set("transcript.min_confidence", c.Transcript.MinConf)
	v.Set("transcript.seek_step_sec", c.Transcript.SeekStepSec)
	v.SetConfigType("toml")
	if err := v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
