package pio

import (
	"fmt"
	"regexp"
	"strconv"
)

// The toolchain prints usage bars like:
//
//	RAM:   [====      ]  34.2% (used 28004 bytes from 81920 bytes)
//	Flash: [========  ]  78.9% (used 827092 bytes from 1048576 bytes)
var (
	ramUsageRe   = regexp.MustCompile(`RAM:\s+\[=*\s*\]\s+(\d+\.?\d*)%\s+\(used\s+(\d+)\s+bytes`)
	flashUsageRe = regexp.MustCompile(`Flash:\s+\[=*\s*\]\s+(\d+\.?\d*)%\s+\(used\s+(\d+)\s+bytes`)
	ramPctRe     = regexp.MustCompile(`RAM:\s+\[.*?\]\s+(\d+\.?\d*)%`)
)

// SizeInfo extracts human-readable memory usage lines from build output.
// Returns nil when neither pattern matches; an unrecognized report format
// is not an error.
func SizeInfo(output string) []string {
	var info []string

	if m := ramUsageRe.FindStringSubmatch(output); m != nil {
		pct, _ := strconv.ParseFloat(m[1], 64)
		used, _ := strconv.Atoi(m[2])
		info = append(info, fmt.Sprintf("RAM: %g%% (%d bytes)", pct, used))
	}

	if m := flashUsageRe.FindStringSubmatch(output); m != nil {
		pct, _ := strconv.ParseFloat(m[1], 64)
		used, _ := strconv.Atoi(m[2])
		info = append(info, fmt.Sprintf("Flash: %g%% (%d bytes)", pct, used))
	}

	return info
}

// RAMPercent extracts the compile-time RAM usage percentage. The second
// return is false on a parser miss, which callers must treat as "no data",
// never as a failure.
func RAMPercent(output string) (float64, bool) {
	m := ramPctRe.FindStringSubmatch(output)
	if m == nil {
		return 0, false
	}

	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	return pct, true
}
