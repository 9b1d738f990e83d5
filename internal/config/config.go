// Package config loads gridnav settings from defaults, an optional TOML file
// and GRIDNAV_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xuri/excelize/v2"
)

// Config holds application configuration.
type Config struct {
	Navigation NavigationConfig
	Sheet      SheetConfig
	Log        LogConfig
	TUI        TUIConfig
}

// NavigationConfig holds navigation engine settings.
type NavigationConfig struct {
	SearchHorizon int `mapstructure:"search_horizon"`
}

// SheetConfig holds sheet limits.
type SheetConfig struct {
	MaxRows int `mapstructure:"max_rows"`
	MaxCols int `mapstructure:"max_cols"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// TUIConfig holds interactive grid settings.
type TUIConfig struct {
	ColumnWidth int `mapstructure:"column_width"`
}

// Load reads configuration. path overrides GRIDNAV_CONFIG; when both are
// empty ~/.config/gridnav/config.toml is read if present.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("navigation.search_horizon", 1000)
	v.SetDefault("sheet.max_rows", excelize.TotalRows)
	v.SetDefault("sheet.max_cols", excelize.MaxColumns)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("tui.column_width", 10)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("GRIDNAV_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gridnav"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GRIDNAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Navigation.SearchHorizon <= 0 {
		return fmt.Errorf("navigation.search_horizon must be positive, got %d", c.Navigation.SearchHorizon)
	}
	if c.Sheet.MaxRows <= 0 || c.Sheet.MaxRows > excelize.TotalRows {
		return fmt.Errorf("sheet.max_rows must be in 1..%d, got %d", excelize.TotalRows, c.Sheet.MaxRows)
	}
	if c.Sheet.MaxCols <= 0 || c.Sheet.MaxCols > excelize.MaxColumns {
		return fmt.Errorf("sheet.max_cols must be in 1..%d, got %d", excelize.MaxColumns, c.Sheet.MaxCols)
	}
	if c.TUI.ColumnWidth < 3 {
		return fmt.Errorf("tui.column_width must be at least 3, got %d", c.TUI.ColumnWidth)
	}
	return nil
}
