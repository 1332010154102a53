//nolint:wrapcheck
package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/epicweather/otagate"
	"github.com/epicweather/otagate/internal/profile"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a firmware project before OTA deployment",
		ArgsUsage: "[project-dir]",
		Description: `Runs the full validation pipeline: source checks, a real build, binary
and memory analysis, and static risk checks.

Exit codes:
  0 - all checks passed, safe to flash
  1 - critical failure, do not flash
  2 - warnings present, review before flashing`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Aliases: []string{"e"},
				Usage:   "Build environment to validate",
				Value:   otagate.DefaultEnvironment,
			},
			&cli.StringFlag{
				Name:  "device-profile",
				Usage: "Device profile YAML overriding the built-in memory envelope",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show per-check detail lines",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Treat warnings as failures",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			projectDir := "."
			if cmd.NArg() > 0 {
				projectDir = cmd.Args().First()
			}

			opts := otagate.DefaultOptions()
			opts.Environment = cmd.String("env")

			if path := cmd.String("device-profile"); path != "" {
				limits, err := profile.Load(path)
				if err != nil {
					return err
				}

				opts.Limits = limits
			}

			report, err := otagate.Validate(ctx, projectDir, opts)
			if err != nil {
				return fmt.Errorf("validation aborted: %w", err)
			}

			decision := otagate.Decide(report, cmd.Bool("strict"))

			if err := printReport(projectDir, report, decision, cmd.String("format"), cmd.Bool("verbose")); err != nil {
				return err
			}

			if code := decision.ExitCode(); code != 0 {
				return cli.Exit("", code)
			}

			return nil
		},
	}
}
