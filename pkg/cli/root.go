/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wmgeolab/gbvalidate/pkg/serializer"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "yaml",
		Usage:   "output format (yaml, json, table)",
	}
)

// New builds the root gbvalidate command.
func New() *cli.Command {
	return &cli.Command{
		Name:                  "gbvalidate",
		Usage:                 "Quality-assurance validator for geoBoundaries submissions",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkCmd(),
			vocabCmd(),
		},
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string) error {
	return New().Run(ctx, args)
}

// parseOutputFormat resolves the --format flag into a serializer format
// for the result documents.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q: results can be rendered as %s",
			format, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return format, nil
}

func setupLogging(debug, logJSON bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if logJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
