// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/chip8emu/internal/app"
	"github.com/retroenv/chip8emu/internal/cli"
	"github.com/retroenv/chip8emu/internal/config"
	"github.com/retroenv/chip8emu/internal/pipeline"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	app.PrintBanner(logger, opts, version, commit, date)

	if host := config.SelectHost(opts, os.Getenv); host != opts.Host {
		logger.Info("No display found, using terminal host")
		opts.Host = host
	}

	if opts.Input == "" {
		opts.Input, err = selectROM()
		if errors.Is(err, dialog.ErrCancelled) {
			return
		}
		if err != nil {
			logger.Fatal("Selecting ROM file failed", log.Err(err))
		}
	}

	if err := pipeline.New(logger).Execute(ctx, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

// selectROM asks the user for a ROM file using the native file dialog.
func selectROM() (string, error) {
	return dialog.File().
		Filter("CHIP-8 ROM", "ch8", "c8", "rom", "bin").
		Filter("Archive", "zip", "7z", "gz", "rar").
		Title("Open CHIP-8 ROM").
		Load()
}
