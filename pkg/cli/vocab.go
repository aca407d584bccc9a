/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wmgeolab/gbvalidate/pkg/serializer"
)

// vocabDump is the document the vocab command prints.
type vocabDump struct {
	ISOCodes []string `json:"isoCodes" yaml:"isoCodes"`
	Licenses []string `json:"licenses" yaml:"licenses"`
}

func vocabCmd() *cli.Command {
	return &cli.Command{
		Name:                  "vocab",
		EnableShellCompletion: true,
		Usage:                 "Fetch and print the reference vocabularies",
		Description: `Downloads the ISO-3 country code and license name tables the check
command validates against, and prints them in the chosen format. Useful
for confirming what a submission will be judged against.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file overriding vocabulary URLs",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}

			provider, err := fetchVocab(ctx, cfg.sources())
			if err != nil {
				return err
			}

			writer, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			if closer, ok := writer.(serializer.Closer); ok {
				defer closer.Close() //nolint:errcheck
			}

			return writer.Serialize(ctx, vocabDump{
				ISOCodes: provider.ISOCodes(),
				Licenses: provider.Licenses(),
			})
		},
	}
}
