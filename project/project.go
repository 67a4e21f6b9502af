// Package project loads the stubber configuration of a native build.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/dhamidi/stubber/excluded"
)

// ConfigDir is the directory, relative to the project root, holding
// config.yaml (or config.toml).
const ConfigDir = ".stubber"

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "toml", "yaml"}

// Project is the configuration of one native build.
type Project struct {
	RootDir string `mapstructure:"-"`

	Excluded Excluded `mapstructure:"excluded"`
	Runtime  Runtime  `mapstructure:"runtime"`
	Output   Output   `mapstructure:"output"`
	Parse    Parse    `mapstructure:"parse"`
	Log      Log      `mapstructure:"log"`
}

// Excluded describes the classes left out of compilation.
type Excluded struct {
	Classes  []string `mapstructure:"classes"`
	Lists    []string `mapstructure:"lists"`
	Archives []string `mapstructure:"archives"`
	// Patterns restrict which archive entries count, e.g. java/awt/**.
	Patterns []string `mapstructure:"patterns"`
}

type Runtime struct {
	// Archive is the runtime library archive (libgcj.jar) the real
	// classes are taken from when stubs are generated.
	Archive string `mapstructure:"archive"`
}

type Output struct {
	Format string `mapstructure:"format"`
}

type Parse struct {
	Workers int `mapstructure:"workers"`
}

type Log struct {
	Verbosity int    `mapstructure:"verbosity"`
	File      string `mapstructure:"file"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Project {
	return &Project{
		Output: Output{Format: "text"},
		Parse:  Parse{Workers: 1},
	}
}

// Load reads the configuration of the project in the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom reads the configuration of the project rooted at rootDir.
// Priority, highest first: STUBBER_* environment variables, the config
// file, defaults. A missing config file is not an error.
func LoadFrom(rootDir string) (*Project, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(rootDir, ConfigDir))

	v.SetEnvPrefix("STUBBER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"excluded.classes",
		"excluded.lists",
		"excluded.archives",
		"excluded.patterns",
		"runtime.archive",
		"output.format",
		"parse.workers",
		"log.verbosity",
		"log.file",
	} {
		v.BindEnv(key)
	}

	defaults := Default()
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("parse.workers", defaults.Parse.Workers)
	v.SetDefault("log.verbosity", defaults.Log.Verbosity)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	proj := &Project{}
	if err := v.Unmarshal(proj); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	proj.RootDir = rootDir

	if err := proj.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return proj, nil
}

// Validate checks values that cannot be decoded into something useful.
func (p *Project) Validate() error {
	if !slices.Contains(Formats, p.Output.Format) {
		return fmt.Errorf("unknown output format %q (want one of %s)", p.Output.Format, strings.Join(Formats, ", "))
	}
	if p.Parse.Workers < 0 {
		return fmt.Errorf("parse.workers must not be negative, got %d", p.Parse.Workers)
	}
	for _, pattern := range p.Excluded.Patterns {
		if pattern == "" {
			return fmt.Errorf("empty exclusion pattern")
		}
	}
	return nil
}

// Path resolves a configured path against the project root.
func (p *Project) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.RootDir, name)
}

// ExcludedSet collects the configured excluded classes from explicit
// names, list files and archives.
func (p *Project) ExcludedSet() (*excluded.Set, error) {
	set := excluded.New(p.Excluded.Classes...)
	for _, list := range p.Excluded.Lists {
		if err := set.AddListFile(p.Path(list)); err != nil {
			return nil, err
		}
	}
	for _, archive := range p.Excluded.Archives {
		if _, err := set.AddArchive(p.Path(archive), p.Excluded.Patterns); err != nil {
			return nil, fmt.Errorf("read excluded archive: %w", err)
		}
	}
	return set, nil
}

// RuntimeArchive returns the resolved runtime library archive path.
func (p *Project) RuntimeArchive() string {
	return p.Path(p.Runtime.Archive)
}
