package audit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

var stackArrayRe = regexp.MustCompile(`\b(?:char|uint8_t|byte)\s+\w+\[(\d+)\]`)

// checkAllocations flags risky memory use: fixed byte arrays too large for
// the stack, and a raw-allocation count that outruns deallocations by more
// than the tolerated slop. The token counting can over-count unrelated
// identifiers; that imprecision is accepted, the check biases toward
// flagging.
func checkAllocations(art Artifacts, limits profile.Limits) types.CheckResult {
	code := art[MainSource]

	var issues []string

	for _, loc := range stackArrayRe.FindAllStringSubmatchIndex(code, -1) {
		size, err := strconv.Atoi(code[loc[2]:loc[3]])
		if err != nil {
			continue
		}

		if size > limits.StackArrayMax {
			issues = append(issues, fmt.Sprintf(
				"Line ~%d: Large stack array (%d bytes)", lineAt(code, loc[0]), size))
		}
	}

	allocCount := strings.Count(code, "malloc(") + strings.Count(code, " new ")
	freeCount := strings.Count(code, "free(") + strings.Count(code, "delete ")

	if allocCount > freeCount+limits.AllocImbalanceSlop {
		issues = append(issues, fmt.Sprintf(
			"Potential memory leak: %d allocations vs %d frees", allocCount, freeCount))
	}

	if len(issues) > 0 {
		return types.CheckResult{
			Name:     "Memory Allocations",
			Passed:   false,
			Message:  fmt.Sprintf("%d memory concerns", len(issues)),
			Severity: types.SeverityWarning,
			Details:  capDetails(issues),
		}
	}

	return types.CheckResult{
		Name:     "Memory Allocations",
		Passed:   true,
		Message:  "Memory allocation patterns OK",
		Severity: types.SeverityInfo,
	}
}
