package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"playlist-gen/internal/logging"
	"playlist-gen/internal/playlist"
	"playlist-gen/internal/startup"
	"playlist-gen/internal/watcher"
)

func main() {
	cfg, err := startup.ParseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(2)
	}

	if cfg.ShowVersion {
		fmt.Println(startup.VersionString())
		return
	}

	spec := playlist.Spec{
		OutputPath: cfg.OutputPath,
		SourceDirs: cfg.SourceDirs,
	}

	if err := playlist.Generate(spec); err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}

	if !cfg.Watch {
		return
	}

	w := watcher.New(spec, cfg.Debounce)

	// Stop watch mode on interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logging.Info("Received %v, shutting down...", sig)
		w.Stop()
	}()

	if err := w.Run(); err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}
}
