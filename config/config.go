package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ListingByName lists archive names ascending
	ListingByName = "name"
	// ListingByCreated lists archive metadata newest first
	ListingByCreated = "created"
)

// Config is the fully resolved process configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Repository RepositoryConfig `mapstructure:"repository"`
	Archive    ArchiveConfig    `mapstructure:"archive"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

// RepositoryConfig locates the directory holding the partners tree.
// Root wins when set; otherwise the root is Base joined with Subfolder.
type RepositoryConfig struct {
	Root      string `mapstructure:"root"`
	Base      string `mapstructure:"base"`
	Subfolder string `mapstructure:"subfolder"`
	// Watch is a cron spec for the availability check; empty disables it
	Watch string `mapstructure:"watch"`
}

// ArchiveConfig describes which files count as archives and how they are listed
type ArchiveConfig struct {
	Mime      string `mapstructure:"mime" validate:"required"`
	Extension string `mapstructure:"extension"`
	Listing   string `mapstructure:"listing" validate:"oneof=name created"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn warning error"`
}

// RootPath returns the configured repository root as an absolute path
func (c RepositoryConfig) RootPath() (string, error) {
	root := c.Root
	if root == "" {
		root = filepath.Join(c.Base, c.Subfolder)
	}
	if root == "" {
		return "", errors.New("repository root is not configured")
	}
	return filepath.Abs(root)
}

// Flags returns the command-line flags understood by Load
func Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("iis-host", pflag.ContinueOnError)
	flags.String("config", "", "path to a config file (yaml)")
	flags.Int("port", 0, "port to listen on")
	flags.String("root", "", "repository root containing the partners directory")
	flags.String("listing", "", "archive listing mode (name or created)")
	return flags
}

// Load reads defaults, config file, environment and flags, in increasing precedence.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	// Set default values
	v.SetDefault("server.port", 28080)
	v.SetDefault("repository.base", cwd)
	v.SetDefault("repository.subfolder", "")
	v.SetDefault("repository.watch", "@every 1m")
	v.SetDefault("archive.mime", "application/zip")
	v.SetDefault("archive.listing", ListingByName)
	v.SetDefault("log.level", "")

	// Environment variables
	v.AutomaticEnv()
	v.BindEnv("server.port", "PORT")
	v.BindEnv("repository.root", "REPOSITORY_ROOT")
	v.BindEnv("repository.base", "REPOSITORY_BASE")
	v.BindEnv("repository.subfolder", "REPOSITORY_SUBFOLDER")
	v.BindEnv("repository.watch", "REPOSITORY_WATCH")
	v.BindEnv("archive.mime", "ARCHIVE_MIME")
	v.BindEnv("archive.extension", "ARCHIVE_EXTENSION")
	v.BindEnv("archive.listing", "ARCHIVE_LISTING")
	v.BindEnv("log.level", "LOG_LEVEL")

	configFile := ""
	if flags != nil {
		v.BindPFlag("server.port", flags.Lookup("port"))
		v.BindPFlag("repository.root", flags.Lookup("root"))
		v.BindPFlag("archive.listing", flags.Lookup("listing"))
		configFile, _ = flags.GetString("config")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, path := range []string{".", "$HOME/.iis-host", "/etc/iis-host"} {
			v.AddConfigPath(os.ExpandEnv(path))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and environment apply
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	ext, err := archiveExtension(cfg.Archive)
	if err != nil {
		return nil, err
	}
	cfg.Archive.Extension = ext

	return cfg, nil
}

// archiveExtension returns the configured extension, or the one registered for the MIME type
func archiveExtension(c ArchiveConfig) (string, error) {
	ext := strings.TrimSpace(c.Extension)
	if ext == "" {
		m := mimetype.Lookup(c.Mime)
		if m == nil {
			return "", fmt.Errorf("unknown archive mime type %q; set archive.extension", c.Mime)
		}
		ext = m.Extension()
	}
	if ext == "" {
		return "", fmt.Errorf("no file extension known for %q; set archive.extension", c.Mime)
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext, nil
}
