// Package config provides functionality for managing persistent settings in JSON configuration files.
// It supports organizing settings into sections, similar to INI files, but using JSON as the storage
// format. Each section is a top-level key in the JSON object containing key-value pairs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ProjectFileName is the name of the per-project config file.
const ProjectFileName = ".countstat"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config manages application configuration, automatically storing values in either
// global or project-specific locations based on the key.
type Config struct {
	globalPath  string
	projectPath string
	global      map[string]map[string]string
	project     map[string]map[string]string
}

// Specify shared keys. These are stored in the global configuration file and are accessible
// to all projects.
var globalKeys = map[string]bool{
	"count.segmenter": true,
}

// New creates a new Config instance. If projectPath is empty, only global config
// is used. Global config is stored in ~/.config/countstat/config.json, while
// project config is stored in .countstat in the project directory.
func New(projectPath string) (*Config, error) {
	globalPath, err := getGlobalConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine global config path: %w", err)
	}

	config := &Config{
		globalPath: filepath.Join(globalPath, "config.json"),
		global:     make(map[string]map[string]string),
		project:    make(map[string]map[string]string),
	}
	if projectPath != "" {
		config.projectPath = filepath.Join(projectPath, ProjectFileName)
	}

	// Load global config
	if err := config.loadGlobal(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}

	// Load project config if path provided
	if config.projectPath != "" {
		if err := config.loadProject(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load project config: %w", err)
		}
	}

	return config, nil
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	section, subKey := splitKey(key)
	_, exists := c.store(key)[section][subKey]
	return exists
}

// Get retrieves a configuration value. Returns empty string if not found.
func (c *Config) Get(key string) string {
	section, subKey := splitKey(key)
	return c.store(key)[section][subKey]
}

// Set stores a configuration value and persists it to the appropriate location
func (c *Config) Set(key, value string) error {
	if !globalKeys[key] && c.projectPath == "" {
		return fmt.Errorf("no project directory for key %s", key)
	}

	section, subKey := splitKey(key)
	store := c.store(key)
	if _, exists := store[section]; !exists {
		store[section] = make(map[string]string)
	}
	store[section][subKey] = value
	return c.saveFor(key)
}

// Delete removes a configuration value
func (c *Config) Delete(key string) error {
	section, subKey := splitKey(key)
	store := c.store(key)
	if sectionData, exists := store[section]; exists {
		delete(sectionData, subKey)
		if len(sectionData) == 0 {
			delete(store, section)
		}
	}
	return c.saveFor(key)
}

// GetAllKeys returns all configuration keys as a sorted slice of strings
func (c *Config) GetAllKeys() []string {
	var keys []string

	for _, store := range []map[string]map[string]string{c.global, c.project} {
		for section, sectionData := range store {
			for subKey := range sectionData {
				keys = append(keys, section+"."+subKey)
			}
		}
	}

	sort.Strings(keys)
	return keys
}

// IsGlobalKey checks if a key is stored in global config
func (c *Config) IsGlobalKey(key string) bool {
	return globalKeys[key]
}

// MARK: Internal helper functions

func splitKey(key string) (section, subKey string) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return "", key
	}
	return parts[0], parts[1]
}

func (c *Config) store(key string) map[string]map[string]string {
	if globalKeys[key] {
		return c.global
	}
	return c.project
}

func (c *Config) saveFor(key string) error {
	if globalKeys[key] {
		return c.save(c.globalPath, c.global)
	}
	return c.save(c.projectPath, c.project)
}

func (c *Config) loadGlobal() error {
	return c.load(c.globalPath, c.global)
}

func (c *Config) loadProject() error {
	return c.load(c.projectPath, c.project)
}

func (c *Config) load(path string, data map[string]map[string]string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(content, &data)
}

func (c *Config) save(path string, data map[string]map[string]string) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func getGlobalConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin", "linux", "freebsd", "openbsd", "netbsd":
		// Check XDG_CONFIG_HOME first
		if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
			configDir = xdgHome
		} else {
			// Fall back to ~/.config
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}

	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}

	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return filepath.Join(configDir, "countstat"), nil
}
