// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command bst builds binary search trees from int values
// and prints traversals, shapes and the JSON form.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string, stdout io.Writer) error {
	app := cli.App{
		Name:    "bst",
		Usage:   "play with unbalanced binary search trees",
		Version: versioninfo.Short(),
		Writer:  stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"BST_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			logger, err := configLogger(cctx.App.ErrWriter, cctx.String("log-level"))
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}

	app.Commands = []*cli.Command{
		cmdPrint,
		cmdDelete,
		cmdJSON,
		cmdBench,
	}

	return app.Run(args)
}

func configLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "error":
		lvl = slog.LevelError
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "info":
		lvl = slog.LevelInfo
	case "debug":
		lvl = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unknown log level: %q", level)
	}

	if w == nil {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
