package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	AppName       = "lazysend"
	ConfigDirName = "lazysend"
	ConfigFile    = "config.yaml"
)

// Config holds application configuration
type Config struct {
	Relay    RelayConfig    `yaml:"relay"`
	Device   DeviceConfig   `yaml:"device"`
	Scan     ScanConfig     `yaml:"scan"`
	Security SecurityConfig `yaml:"security"`
	UI       UIConfig       `yaml:"ui"`
}

// RelayConfig holds relay connection settings
type RelayConfig struct {
	URL       string `yaml:"url"`
	CodeWords int    `yaml:"codeWords"`
}

// DeviceConfig identifies this device to peers
type DeviceConfig struct {
	Name        string `yaml:"name"`
	DownloadDir string `yaml:"downloadDir"`
}

// ScanConfig holds folder scanning settings
type ScanConfig struct {
	MaxDepth    int      `yaml:"maxDepth"`
	ExcludeDirs []string `yaml:"excludeDirs"`
}

// SecurityConfig holds passphrase lockout settings
type SecurityConfig struct {
	LockoutThreshold int `yaml:"lockoutThreshold"` // failures before locking
	LockoutBaseSecs  int `yaml:"lockoutBaseSecs"`  // first lockout duration
}

// UIConfig holds presentation settings
type UIConfig struct {
	ToastSecs int `yaml:"toastSecs"` // status toast auto-dismiss
}

// Default returns the default configuration
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Relay: RelayConfig{
			URL:       "wss://relay.lazysend.dev",
			CodeWords: 3,
		},
		Device: DeviceConfig{
			Name:        defaultDeviceName(),
			DownloadDir: filepath.Join(home, "Downloads"),
		},
		Scan: ScanConfig{
			MaxDepth:    10,
			ExcludeDirs: []string{},
		},
		Security: SecurityConfig{
			LockoutThreshold: 3,
			LockoutBaseSecs:  1,
		},
		UI: UIConfig{
			ToastSecs: 4,
		},
	}
}

func defaultDeviceName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "lazysend-device"
	}
	return host
}

// ToastDuration returns the toast auto-dismiss interval.
func (c *Config) ToastDuration() time.Duration {
	if c.UI.ToastSecs <= 0 {
		return 4 * time.Second
	}
	return time.Duration(c.UI.ToastSecs) * time.Second
}

// LockoutBase returns the first lockout duration.
func (c *Config) LockoutBase() time.Duration {
	if c.Security.LockoutBaseSecs <= 0 {
		return time.Second
	}
	return time.Duration(c.Security.LockoutBaseSecs) * time.Second
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", ConfigDirName), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// Load loads configuration from ~/.config/lazysend/config.yaml
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom loads configuration from an explicit path, falling back to
// defaults when the file is missing.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default() // Start with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to ~/.config/lazysend/config.yaml
func Save(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Write a nicely formatted default config
		defaultConfig := `# lazysend configuration
relay:
  # Relay server to exchange room codes through
  url: wss://relay.lazysend.dev
  # Words per room code (2-5)
  codeWords: 3
device:
  # Name shown to peers (defaults to hostname)
  # name: my-laptop
  # Where received files land
  # downloadDir: /home/me/Downloads
scan:
  # Maximum directory depth when scanning a folder to send (0 = unlimited)
  maxDepth: 10
  # Additional directories to exclude (node_modules etc. are always excluded)
  excludeDirs:
    # - /full/path/to/exclude
    # - dirname-to-exclude
security:
  # Failed passphrase attempts before the dialog locks
  lockoutThreshold: 3
  # First lockout duration in seconds; doubles per further failure
  lockoutBaseSecs: 1
ui:
  # Seconds a status toast stays visible
  toastSecs: 4
`
		return os.WriteFile(path, []byte(defaultConfig), 0644)
	}

	return nil
}
