/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/wmgeolab/gbvalidate/pkg/loader"
	"github.com/wmgeolab/gbvalidate/pkg/serializer"
	"github.com/wmgeolab/gbvalidate/pkg/validate"
	"github.com/wmgeolab/gbvalidate/pkg/vocab"
)

// vocabFetchTimeout bounds the startup download of the reference tables.
const vocabFetchTimeout = 30 * time.Second

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate one or more boundary submissions",
		ArgsUsage:             "SUBMISSION...",
		Description: `Runs the full battery of quality checks against each submission:
  - name and ISO attribute column detection
  - per-feature geometry extent and topological validity
  - EPSG:4326 projection requirement
  - meta.txt field validation against the reference vocabularies
  - license image presence (archive submissions)

A submission is a .zip bundle or a bare .geojson file (pair it with
--meta). Each submission gets its own engine instance; submissions are
validated in parallel up to --concurrency.

A submission passes when no CRITICAL finding is emitted. Use
--fail-on-error in CI to turn a failed submission into a non-zero exit.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "meta",
				Usage: "metadata file path for bare geometry inputs",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file overriding column candidates and vocabulary URLs",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: 4,
				Usage: "maximum submissions validated in parallel",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit non-zero when any submission fails validation",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return fmt.Errorf("at least one submission path is required")
			}

			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}

			provider, err := fetchVocab(ctx, cfg.sources())
			if err != nil {
				return err
			}

			var engineOpts []validate.Option
			if len(cfg.NameColumns) > 0 {
				engineOpts = append(engineOpts, validate.WithNameColumns(cfg.NameColumns))
			}
			if len(cfg.ISOColumns) > 0 {
				engineOpts = append(engineOpts, validate.WithISOColumns(cfg.ISOColumns))
			}

			results := make([]*validate.Result, len(paths))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(int(cmd.Int("concurrency")))

			for i, path := range paths {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					result, err := checkOne(provider, engineOpts, path, cmd.String("meta"))
					if err != nil {
						return fmt.Errorf("validating %s: %w", path, err)
					}
					results[i] = result
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			writer, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			if closer, ok := writer.(serializer.Closer); ok {
				defer closer.Close() //nolint:errcheck
			}

			var out any = results
			if len(results) == 1 {
				out = results[0]
			}
			if err := writer.Serialize(ctx, out); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") {
				for _, result := range results {
					if !result.Summary.Passed {
						return cli.Exit("validation failed: at least one submission emitted a CRITICAL finding", 1)
					}
				}
			}
			return nil
		},
	}
}

// checkOne opens one submission and runs a fresh engine over it.
func checkOne(provider *vocab.Provider, opts []validate.Option, path, metaPath string) (*validate.Result, error) {
	sub, err := loader.Open(path, loader.WithMetadataPath(metaPath))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := sub.Close(); err != nil {
			slog.Warn("submission cleanup failed", "path", path, "error", err)
		}
	}()

	engine := validate.New(provider, opts...)
	return engine.Run(&validate.Input{
		Collection:     sub.Collection,
		Metadata:       sub.Metadata,
		Archive:        sub.Archive,
		ArchiveEntries: sub.Entries,
		Submission:     path,
	})
}

// fetchVocab downloads the reference vocabularies once, before any
// submission is opened.
func fetchVocab(ctx context.Context, src vocab.Sources) (*vocab.Provider, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, vocabFetchTimeout)
	defer cancel()

	provider, err := vocab.Fetch(fetchCtx, http.DefaultClient, src)
	if err != nil {
		return nil, fmt.Errorf("loading reference vocabularies: %w", err)
	}
	return provider, nil
}
