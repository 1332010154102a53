//nolint:wrapcheck
package main

import (
	"os"

	"github.com/farcloser/primordium/format"

	"github.com/epicweather/otagate"
	"github.com/epicweather/otagate/internal/output"
)

func printReport(
	projectDir string,
	report *otagate.Report,
	decision otagate.Decision,
	formatName string,
	verbose bool,
) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	data := &format.Data{
		Object: projectDir,
		Meta:   output.ReportToMap(report, decision, verbose),
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}
