// Command recordscreen records the desktop by constructing and launching an
// external ffmpeg/avconv capture process. It parses flags, resolves the
// capture region against the live desktop geometry, and either lists the
// codec registry (--codecs) or runs the capture pipeline.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/techtonik/recordscreen/internal/config"
	"github.com/techtonik/recordscreen/internal/display"
	"github.com/techtonik/recordscreen/internal/logging"
	"github.com/techtonik/recordscreen/internal/pipeline"
)

func main() {
	// 1. Load config from defaults and CLI flags; exit on parse or
	// validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "recordscreen: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "recordscreen: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(&cfg)

	// 2. If the user asked for the codec listing, print it and exit.
	if cfg.ListCodecs {
		display.PrintCodecs(os.Stdout)
		os.Exit(0)
	}

	// 3. Run the capture pipeline; it blocks until the launched capture
	// process exits.
	runner := pipeline.NewRunner(log)
	if err := runner.Run(context.Background(), &cfg); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
