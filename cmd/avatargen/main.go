// Package main starts the avatar image service.
//
// This process answers every request with an SVG avatar for the text in
// its path, so it can sit directly behind a CDN.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/avatargen/internal/cmd/avatargen"
	"github.com/louisbranch/avatargen/internal/platform/config"
)

func main() {
	cfg, err := avatargen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[AVATARGEN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := avatargen.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
