package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/projnav/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override projnav config path (optional)")
	projectsPath := flag.String("projects", "", "read project names from this file instead of the configured one (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	opts := app.Options{
		ConfigPath:   *configPath,
		ProjectsPath: *projectsPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "projnav: %v\n", err)
		return 1
	}
	return 0
}
