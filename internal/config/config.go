package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DBPath   string         `koanf:"db_path"`
	LogPath  string         `koanf:"log_path"`
	Locale   string         `koanf:"locale"`
	Scan     ScanConfig     `koanf:"scan"`
	Alert    AlertConfig    `koanf:"alert"`
	Audio    AudioConfig    `koanf:"audio"`
	Calendar CalendarConfig `koanf:"calendar"`
}

type ScanConfig struct {
	IntervalSeconds int `koanf:"interval_seconds"`
}

type AlertConfig struct {
	CueSeconds    int  `koanf:"cue_seconds"`
	Notifications bool `koanf:"notifications"`
}

type AudioConfig struct {
	// Capture command; the output file path is appended as the final
	// argument. Empty means voice capture is unavailable.
	Command []string `koanf:"command"`
}

type CalendarConfig struct {
	EventBase string `koanf:"event_base"`
	Scheme    string `koanf:"scheme"`
	WebBase   string `koanf:"web_base"`
}

func (c Config) ScanInterval() time.Duration {
	return time.Duration(c.Scan.IntervalSeconds) * time.Second
}

func (c Config) CueInterval() time.Duration {
	return time.Duration(c.Alert.CueSeconds) * time.Second
}

func defaults() map[string]interface{} {
	home, _ := os.UserHomeDir()
	return map[string]interface{}{
		"db_path":               filepath.Join(home, ".remind", "reminders.db"),
		"log_path":              filepath.Join(home, ".remind", "remind.log"),
		"locale":                "",
		"scan.interval_seconds": 10,
		"alert.cue_seconds":     1,
		"alert.notifications":   true,
		"audio.command":         []string{"arecord", "-q", "-f", "cd", "-t", "wav"},
		"calendar.event_base":   "https://www.google.com/calendar/render",
		"calendar.scheme":       "reminderapp",
		"calendar.web_base":     "",
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// REMIND_-prefixed environment variables, in increasing precedence.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider("REMIND_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Scan.IntervalSeconds <= 0 {
		cfg.Scan.IntervalSeconds = 10
	}
	if cfg.Alert.CueSeconds <= 0 {
		cfg.Alert.CueSeconds = 1
	}
	return &cfg, nil
}

// envKey maps REMIND_SCAN__INTERVAL_SECONDS to scan.interval_seconds.
// Double underscore separates sections so keys may keep single underscores.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "REMIND_"))
	return strings.ReplaceAll(s, "__", ".")
}
