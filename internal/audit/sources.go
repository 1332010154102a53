package audit

import (
	"fmt"
	"strings"

	"github.com/epicweather/otagate/internal/profile"
	"github.com/epicweather/otagate/internal/types"
)

// checkSourceFiles verifies that every required project file is present.
// Artifact presence in the map is existence on disk.
func checkSourceFiles(art Artifacts, _ profile.Limits) types.CheckResult {
	required := RequiredArtifacts()

	var missing []string

	for _, path := range required {
		if _, ok := art[path]; !ok {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return types.CheckResult{
			Name:     "Source Files",
			Passed:   false,
			Message:  "Missing: " + strings.Join(missing, ", "),
			Severity: types.SeverityCritical,
		}
	}

	return types.CheckResult{
		Name:     "Source Files",
		Passed:   true,
		Message:  fmt.Sprintf("All %d required files present", len(required)),
		Severity: types.SeverityInfo,
	}
}
