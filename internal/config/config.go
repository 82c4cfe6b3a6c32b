package config

import (
	"fmt"
	"os"
	"path/filepath"

	"hopd/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Every field has a working
// default, so a missing config file is not an error.
type Config struct {
	Navigation struct {
		MaxHistory int  `yaml:"max_history"` // Directory history capacity
		Verbose    bool `yaml:"verbose"`     // Print a report after each change
		ListLimit  int  `yaml:"list_limit"`  // Entries shown per directory listing
	} `yaml:"navigation"`
	Report struct {
		GitStatus      bool `yaml:"git_status"`      // Include git status in verbose reports
		ProjectMarkers bool `yaml:"project_markers"` // Include project descriptors in verbose reports
	} `yaml:"report"`
	Archive struct {
		Tools      map[string]string `yaml:"tools"`       // Tool name -> binary override
		EntryLimit int               `yaml:"entry_limit"` // Entries shown per extraction report
	} `yaml:"archive"`
	Watch struct {
		Directories   []string `yaml:"directories"`    // Directories to watch for new archives
		ExtractTo     string   `yaml:"extract_to"`     // Destination directory ("" = alongside archive)
		RemoveArchive bool     `yaml:"remove_archive"` // Delete archives after successful extraction
		Settle        int      `yaml:"settle"`         // Seconds a file must be stable before extraction
		DryRun        bool     `yaml:"dry_run"`        // Report what would be extracted without doing it
	} `yaml:"watch"`
	Theme struct {
		Name     string `yaml:"name"`     // Theme name (default, dark, light, etc.)
		Primary  string `yaml:"primary"`  // Primary color for branding
		Success  string `yaml:"success"`  // Success message color
		Warning  string `yaml:"warning"`  // Warning message color
		Error    string `yaml:"error"`    // Error message color
		Info     string `yaml:"info"`     // Informational message color
		Emphasis string `yaml:"emphasis"` // Emphasis color for text that should stand out
		Border   string `yaml:"border"`   // Border color for frames
	} `yaml:"theme"`
}

// DefaultPath returns the default config file location,
// ~/.config/hopd/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hopd", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path. A
// missing file yields the defaults; keys absent from the file keep
// their default values.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "reading config file")
	}

	// Unmarshal over the defaults: absent keys leave them untouched,
	// present keys override them (including explicit false/zero, which
	// validation then judges)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
// Theme colors stay empty here; ThemeColors resolves them from the
// theme name so a config file can name a theme without spelling out
// its palette.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Navigation.MaxHistory = 20
	cfg.Navigation.Verbose = true
	cfg.Navigation.ListLimit = 10

	cfg.Report.GitStatus = true
	cfg.Report.ProjectMarkers = true

	cfg.Archive.Tools = map[string]string{}
	cfg.Archive.EntryLimit = 10

	cfg.Watch.Directories = []string{}
	cfg.Watch.ExtractTo = ""
	cfg.Watch.RemoveArchive = false
	cfg.Watch.Settle = 2
	cfg.Watch.DryRun = false

	cfg.Theme.Name = "default"

	return cfg
}

// SaveConfig saves the configuration to the specified file, creating
// parent directories as needed.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrInvalidConfig
	}

	if c.Navigation.MaxHistory < 1 {
		return errors.NewConfigError("max_history must be >= 1", "navigation.max_history", errors.InvalidConfig, nil)
	}
	if c.Navigation.ListLimit < 1 {
		return errors.NewConfigError("list_limit must be >= 1", "navigation.list_limit", errors.InvalidConfig, nil)
	}
	if c.Archive.EntryLimit < 1 {
		return errors.NewConfigError("entry_limit must be >= 1", "archive.entry_limit", errors.InvalidConfig, nil)
	}
	if c.Watch.Settle < 0 {
		return errors.NewConfigError("settle must be >= 0 seconds", "watch.settle", errors.InvalidConfig, nil)
	}

	for tool, path := range c.Archive.Tools {
		if tool == "" || path == "" {
			return errors.NewConfigError("tool overrides need both a name and a path", "archive.tools", errors.InvalidConfig, nil)
		}
	}

	for i, dir := range c.Watch.Directories {
		if dir == "" {
			return errors.NewConfigError(fmt.Sprintf("watch directory %d is empty", i), "watch.directories", errors.InvalidConfig, nil)
		}
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Navigation.Verbose = false
	cfg.Report.GitStatus = false
	cfg.Report.ProjectMarkers = false
	cfg.Watch.Settle = 0
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"success":  "114", // Green
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "39",  // Blue
			"emphasis": "212", // Light Pink
			"border":   "213", // Purple
		},
		"dark": {
			"primary":  "105", // Dark Blue
			"success":  "78",  // Dark Green
			"warning":  "214", // Dark Yellow
			"error":    "160", // Dark Red
			"info":     "33",  // Dark Blue
			"emphasis": "147", // Light Blue
			"border":   "105", // Dark Blue
		},
		"light": {
			"primary":  "135", // Light Purple
			"success":  "150", // Light Green
			"warning":  "222", // Light Yellow
			"error":    "210", // Light Red
			"info":     "117", // Light Blue
			"emphasis": "219", // Very Light Pink
			"border":   "135", // Light Purple
		},
		"monochrome": {
			"primary":  "245", // Light Grey
			"success":  "252", // White
			"warning":  "241", // Medium Grey
			"error":    "232", // Black
			"info":     "248", // Grey
			"emphasis": "255", // Bright White
			"border":   "245", // Light Grey
		},
		"ocean": {
			"primary":  "31",  // Teal
			"success":  "36",  // Green-Blue
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "33",  // Blue
			"emphasis": "51",  // Cyan
			"border":   "31",  // Teal
		},
		"sunset": {
			"primary":  "208", // Orange
			"success":  "154", // Green
			"warning":  "214", // Dark Yellow
			"error":    "196", // Red
			"info":     "69",  // Light Green
			"emphasis": "203", // Pink-Orange
			"border":   "208", // Orange
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ThemeColors resolves the effective palette: the named theme's colors,
// with any explicitly configured color overriding its palette entry.
func (c *Config) ThemeColors() map[string]string {
	colors := GetTheme(c.Theme.Name)

	override := func(key, value string) {
		if value != "" {
			colors[key] = value
		}
	}
	override("primary", c.Theme.Primary)
	override("success", c.Theme.Success)
	override("warning", c.Theme.Warning)
	override("error", c.Theme.Error)
	override("info", c.Theme.Info)
	override("emphasis", c.Theme.Emphasis)
	override("border", c.Theme.Border)

	return colors
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Warning = theme["warning"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Emphasis = theme["emphasis"]
	c.Theme.Border = theme["border"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "ocean", "sunset"}
}
