package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gravitrone/cardlist/internal/api"
	"github.com/gravitrone/cardlist/internal/catalog"
	"github.com/gravitrone/cardlist/internal/config"
	"github.com/gravitrone/cardlist/internal/logging"
)

// Options are the persistent flags shared by every command.
type Options struct {
	Dataset string
	URL     string
	Timeout time.Duration
	LogFile string
	Verbose bool
}

// Settings is the config file with flag overrides applied.
type Settings struct {
	DatasetPath string
	SourceURL   string
	APIKey      string
	Timeout     time.Duration
	VimKeys     bool
	LogFile     string
	Verbose     bool
}

// Resolve merges flags over ~/.cardlist/config. A missing config file is
// fine as long as a flag names the dataset.
func Resolve(opts Options) (Settings, error) {
	if opts.Dataset != "" && opts.URL != "" {
		return Settings{}, fmt.Errorf("--dataset and --url cannot be used together")
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		if errors.Is(err, config.ErrNoSource) || errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("%w: pass --dataset or --url, or run 'cardlist config set-dataset <path>'", config.ErrNoSource)
		}
		return Settings{}, err
	}

	switch {
	case opts.Dataset != "":
		cfg.DatasetPath = opts.Dataset
		cfg.SourceURL = ""
	case opts.URL != "":
		cfg.SourceURL = opts.URL
		cfg.DatasetPath = ""
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}

	return Settings{
		DatasetPath: cfg.DatasetPath,
		SourceURL:   cfg.SourceURL,
		APIKey:      cfg.APIKey,
		Timeout:     cfg.Timeout,
		VimKeys:     cfg.VimKeys,
		LogFile:     cfg.LogFile,
		Verbose:     opts.Verbose,
	}, nil
}

// loadConfig requires a complete config unless a flag names the source.
func loadConfig(opts Options) (*config.Config, error) {
	if opts.Dataset == "" && opts.URL == "" {
		return config.Load()
	}
	cfg, err := config.Read()
	if errors.Is(err, os.ErrNotExist) {
		return &config.Config{}, nil
	}
	return cfg, err
}

// Client builds the catalog client for SourceURL.
func (s Settings) Client() *api.Client {
	client := api.NewClient(s.SourceURL, s.APIKey)
	if s.Timeout > 0 {
		client = client.WithTimeout(s.Timeout)
	}
	return client
}

// Source returns the dataset source. A local file wins over a URL.
func (s Settings) Source(logger *zap.Logger) catalog.Source {
	if s.DatasetPath != "" {
		return catalog.FileSource{Path: s.DatasetPath, Logger: logger}
	}
	return api.RecordSource{
		Client: s.Client(),
		Logger: logger,
	}
}

// Logger builds the file logger named by the settings. Every entry carries
// a fresh session id so runs can be told apart in a shared log file.
func (s Settings) Logger() (*zap.Logger, error) {
	logger, err := logging.New(s.LogFile, s.Verbose)
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("session", uuid.NewString())), nil
}
