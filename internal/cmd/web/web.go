// Package web parses web command configuration and runs the sheet server.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/password-sheet/internal/platform/cmd"
	"github.com/louisbranch/password-sheet/internal/services/web"
	"github.com/louisbranch/password-sheet/internal/sheet"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr       string `env:"HTTP_ADDR"       envDefault:"localhost:8080"`
	MaxConnections int    `env:"MAX_CONNECTIONS" envDefault:"64"`
	RepositoryURL  string `env:"REPOSITORY_URL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.IntVar(&cfg.MaxConnections, "max-connections", cfg.MaxConnections, "maximum concurrent client connections")
	fs.StringVar(&cfg.RepositoryURL, "repository-url", cfg.RepositoryURL, "source repository linked from the information page")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the sheet generator and serves it until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		generator, err := sheet.NewGenerator(sheet.Options{})
		if err != nil {
			return fmt.Errorf("init sheet generator: %w", err)
		}
		server, err := web.NewServer(web.Config{
			HTTPAddr:       cfg.HTTPAddr,
			MaxConnections: cfg.MaxConnections,
			RepositoryURL:  cfg.RepositoryURL,
		}, generator)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
