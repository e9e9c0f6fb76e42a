// Package config loads the optional .vulcangen.yaml file that tunes the
// generators for a project.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-vulcan/internal/filesystem"
	"github.com/jakoblorz/go-vulcan/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the tool configuration file looked up at the project root.
	FileName = ".vulcangen.yaml"

	// EnvName selects the environment; "development" turns on debug logging.
	EnvName = "VULCAN_ENV"

	defaultPackagesDir    = "packages"
	defaultReactExtension = "jsx"
	defaultPackageManager = "npm"
)

// Config models .vulcangen.yaml.
type Config struct {
	PackagesDir      string   `yaml:"packagesDir"`
	ReactExtension   string   `yaml:"reactExtension"`
	PackageManager   string   `yaml:"packageManager"`
	ModuleParts      []string `yaml:"moduleParts"`
	DefaultResolvers []string `yaml:"defaultResolvers"`
	Debug            bool     `yaml:"debug"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	parts := make([]string, 0, len(models.AllModuleParts))
	for _, p := range models.AllModuleParts {
		parts = append(parts, string(p))
	}
	resolvers := make([]string, 0, len(models.AllResolvers))
	for _, r := range models.AllResolvers {
		resolvers = append(resolvers, string(r))
	}

	return &Config{
		PackagesDir:      defaultPackagesDir,
		ReactExtension:   defaultReactExtension,
		PackageManager:   defaultPackageManager,
		ModuleParts:      parts,
		DefaultResolvers: resolvers,
	}
}

// Load reads dir/.vulcangen.yaml on top of the defaults and applies the
// environment. A missing file is not an error.
func Load(fsys filesystem.FileSystem, dir string) (*Config, error) {
	cfg := Default()

	data, err := fsys.ReadFile(filepath.Join(dir, FileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
	}

	if strings.EqualFold(os.Getenv(EnvName), "development") {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PackagesDir) == "" {
		return fmt.Errorf("packagesDir cannot be empty")
	}
	if filepath.IsAbs(c.PackagesDir) {
		return fmt.Errorf("packagesDir must be relative to the project root: %s", c.PackagesDir)
	}
	switch c.ReactExtension {
	case "jsx", "js":
	default:
		return fmt.Errorf("reactExtension must be jsx or js, got %q", c.ReactExtension)
	}
	if _, err := models.ParsePartSet(c.ModuleParts); err != nil {
		return err
	}
	if _, err := models.ParseResolverSet(c.DefaultResolvers); err != nil {
		return err
	}
	return nil
}

// DefaultParts returns the module parts preselected in prompts.
func (c *Config) DefaultParts() models.PartSet {
	parts, _ := models.ParsePartSet(c.ModuleParts)
	return parts
}

// DefaultResolverSet returns the resolvers preselected in prompts.
func (c *Config) DefaultResolverSet() models.ResolverSet {
	resolvers, _ := models.ParseResolverSet(c.DefaultResolvers)
	return resolvers
}
