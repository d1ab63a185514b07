// Package avatargen parses avatar command flags and composes the HTTP server.
package avatargen

import (
	"context"
	"flag"
	"fmt"

	"github.com/louisbranch/avatargen/internal/avatar/grapheme"
	entrypoint "github.com/louisbranch/avatargen/internal/platform/cmd"
	server "github.com/louisbranch/avatargen/internal/services/avatar/app"
)

// Config holds avatar command configuration. Variables carry the
// AVATARGEN_ prefix, e.g. AVATARGEN_HTTP_ADDR.
type Config struct {
	HTTPAddr     string `env:"HTTP_ADDR"     envDefault:":8080"`
	PathPrefix   string `env:"PATH_PREFIX"   envDefault:"/avatar/"`
	Segmentation string `env:"SEGMENTATION"  envDefault:"unicode"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "avatar HTTP listen address")
	fs.StringVar(&cfg.PathPrefix, "path-prefix", cfg.PathPrefix, "path prefix that carries avatar text")
	fs.StringVar(&cfg.Segmentation, "segmentation", cfg.Segmentation, "grapheme segmentation: unicode or codepoint")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := grapheme.ByName(cfg.Segmentation); err != nil {
		return Config{}, fmt.Errorf("segmentation: %w", err)
	}
	return cfg, nil
}

// Run builds the avatar server and serves until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	extractor, err := grapheme.ByName(cfg.Segmentation)
	if err != nil {
		return fmt.Errorf("segmentation: %w", err)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAvatar, func(ctx context.Context) error {
		if err := server.Run(ctx, server.Config{
			HTTPAddr:   cfg.HTTPAddr,
			PathPrefix: cfg.PathPrefix,
			Extractor:  extractor,
		}); err != nil {
			return fmt.Errorf("serve avatargen: %w", err)
		}
		return nil
	})
}
