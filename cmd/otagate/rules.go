//nolint:wrapcheck
package main

import (
	"context"
	"os"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/epicweather/otagate/internal/audit"
)

func rulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List the source check table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			formatter, err := format.GetFormatter(cmd.String("format"))
			if err != nil {
				return err
			}

			rules := audit.Rules()
			data := make([]*format.Data, 0, len(rules))

			for _, rule := range rules {
				data = append(data, &format.Data{
					Object: rule.ID,
					Meta: map[string]any{
						"name":     rule.Name,
						"phase":    rule.Phase.String(),
						"severity": rule.Severity.String(),
					},
				})
			}

			return formatter.PrintAll(data, os.Stdout)
		},
	}
}
