package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Board struct {
	Width     int `mapstructure:"width"`
	Height    int `mapstructure:"height"`
	MineCount int `mapstructure:"mine_count"`
}

type Log struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type Config struct {
	Development bool   `mapstructure:"development"`
	Addr        string `mapstructure:"addr"`
	Board       Board  `mapstructure:"board"`
	Log         Log    `mapstructure:"log"`

	WebSocket WebSocketBuffers `mapstructure:"websocket"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("development", false)
	v.SetDefault("addr", ":8080")
	v.SetDefault("board.width", 9)
	v.SetDefault("board.height", 9)
	v.SetDefault("board.mine_count", 10)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("websocket.read_buffer_size", 1024)
	v.SetDefault("websocket.write_buffer_size", 1024)
}

// Load reads configuration from defaults, then the optional file at path,
// then MINES_* env variables (MINES_BOARD_WIDTH, MINES_LOG_FILE, ...).
// DEVELOPMENT and APP_PORT are honoured as well.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MINES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("development", "MINES_DEVELOPMENT", "DEVELOPMENT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("addr", "MINES_ADDR", "APP_PORT"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := cfg.Board.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (b Board) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("board must be at least 1 by 1, got %d by %d", b.Width, b.Height)
	}
	if b.MineCount < 0 {
		return fmt.Errorf("mine count must not be negative, got %d", b.MineCount)
	}
	return nil
}

// Exceeds reports whether the board has more than limit cells.
// It does not multiply, so huge sizes cannot overflow.
func (b Board) Exceeds(limit int) bool {
	if b.Width <= 0 || b.Height <= 0 {
		return false
	}
	return b.Width > limit/b.Height
}
