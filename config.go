package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/zam-dot/tintype/internal/logger"
	"github.com/zam-dot/tintype/internal/markup"
	"github.com/zam-dot/tintype/internal/notify"
)

const (
	appName               = "tintype"
	defaultConfigFileName = "config.toml"
	defaultText           = "Welcome to Colored Text Generator!"

	// Discord rejects messages longer than this.
	defaultCharLimit = 2000
)

// Config holds every user-tunable setting.
type Config struct {
	Text          string        `toml:"text"`
	NotifyDelay   time.Duration `toml:"notify_delay"`
	Clipboard     string        `toml:"clipboard"`      // auto, system, osc52, memory
	DefaultTarget string        `toml:"default_target"` // fg or bg
	Mouse         bool          `toml:"mouse"`
	AltScreen     bool          `toml:"alt_screen"`
	CharLimit     int           `toml:"char_limit"`
	LogLevel      string        `toml:"log_level"`
	LogFile       string        `toml:"log_file"`
}

func DefaultConfig() Config {
	return Config{
		Text:          defaultText,
		NotifyDelay:   notify.DefaultDelay,
		Clipboard:     "auto",
		DefaultTarget: "fg",
		Mouse:         true,
		AltScreen:     true,
		CharLimit:     defaultCharLimit,
		LogLevel:      "info",
	}
}

// ParseFlags builds the configuration from the command line, the config file
// and the environment. The returned warnings name config keys that were
// ignored; the caller logs them once logging is set up.
func ParseFlags() (Config, []string, error) {
	return parseConfig(os.Args[1:], os.Getenv)
}

// parseConfig applies, in order: defaults, the TOML file, TINTYPE_*
// environment variables and explicitly set flags.
func parseConfig(args []string, getenv func(string) string) (Config, []string, error) {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configFile  = fs.String("config", "", "Path to TOML config file (default ~/.config/tintype/config.toml)")
		text        = fs.String("text", "", "Initial plain text")
		notifyDelay = fs.Duration("notify-delay", 0, "How long notifications stay visible")
		clip        = fs.String("clipboard", "", "Clipboard backend: auto, system, osc52, memory")
		target      = fs.String("target", "", "Palette row enter applies from: fg or bg")
		mouse       = fs.Bool("mouse", true, "Enable mouse hover and click on swatches")
		altScreen   = fs.Bool("alt-screen", true, "Run in the alternate screen buffer")
		charLimit   = fs.Int("char-limit", 0, "Maximum characters in the source text")
		logLevel    = fs.String("loglevel", "", "Log level (debug, info, warn, error)")
		logFile     = fs.String("logfile", "", "Path to write log file")
	)
	if err := fs.Parse(args); err != nil {
		return DefaultConfig(), nil, fmt.Errorf("parse flags: %w", err)
	}

	config := DefaultConfig()
	var warnings []string

	path := *configFile
	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		fileConfig, undecoded, err := loadConfigFromFile(path, config)
		switch {
		case err == nil:
			config = fileConfig
			for _, k := range undecoded {
				warnings = append(warnings, fmt.Sprintf("config %s: unrecognized key %q", path, k))
			}
		case *configFile != "" || !os.IsNotExist(err):
			return config, nil, err
		}
	}

	config = applyEnvOverrides(config, getenv)

	// Only flags that were actually given override the layers below.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			config.Text = *text
		case "notify-delay":
			config.NotifyDelay = *notifyDelay
		case "clipboard":
			config.Clipboard = *clip
		case "target":
			config.DefaultTarget = *target
		case "mouse":
			config.Mouse = *mouse
		case "alt-screen":
			config.AltScreen = *altScreen
		case "char-limit":
			config.CharLimit = *charLimit
		case "loglevel":
			config.LogLevel = *logLevel
		case "logfile":
			config.LogFile = *logFile
		}
	})

	config.validate()
	return config, warnings, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, defaultConfigFileName)
}

func applyEnvOverrides(config Config, getenv func(string) string) Config {
	if val := getenv("TINTYPE_TEXT"); val != "" {
		config.Text = val
	}
	if val := getenv("TINTYPE_NOTIFY_DELAY"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			config.NotifyDelay = d
		}
	}
	if val := getenv("TINTYPE_CLIPBOARD"); val != "" {
		config.Clipboard = val
	}
	if val := getenv("TINTYPE_DEFAULT_TARGET"); val != "" {
		config.DefaultTarget = val
	}
	if val := getenv("TINTYPE_MOUSE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			config.Mouse = b
		}
	}
	if val := getenv("TINTYPE_ALT_SCREEN"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			config.AltScreen = b
		}
	}
	if val := getenv("TINTYPE_CHAR_LIMIT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.CharLimit = n
		}
	}
	if val := getenv("TINTYPE_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}
	if val := getenv("TINTYPE_LOG_FILE"); val != "" {
		config.LogFile = val
	}
	return config
}

// loadConfigFromFile decodes filename on top of base, so keys missing from
// the file keep their base values. Keys the file sets but Config lacks are
// returned alongside.
func loadConfigFromFile(filename string, base Config) (Config, []string, error) {
	config := base
	meta, err := toml.DecodeFile(filename, &config)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil, err
		}
		return base, nil, fmt.Errorf("load config %s: %w", filename, err)
	}
	var undecoded []string
	for _, k := range meta.Undecoded() {
		undecoded = append(undecoded, k.String())
	}
	return config, undecoded, nil
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := DefaultConfig()
	if c.NotifyDelay <= 0 {
		c.NotifyDelay = defaults.NotifyDelay
	}
	if c.CharLimit <= 0 {
		c.CharLimit = defaults.CharLimit
	}
	if c.Clipboard == "" {
		c.Clipboard = defaults.Clipboard
	}
	if _, err := markup.ParseTarget(c.DefaultTarget); err != nil {
		c.DefaultTarget = defaults.DefaultTarget
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		c.LogLevel = defaults.LogLevel
	}
}
