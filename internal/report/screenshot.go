package report

import (
	"os"
	"path/filepath"
	"strings"

	"stv/internal/browser"
)

// idSanitizer maps characters that are unsafe in file names.
var idSanitizer = strings.NewReplacer("/", "_", "\\", "_", ":", "_")

// FileName returns the deterministic screenshot file name for a test ID.
func FileName(testID string) string {
	return idSanitizer.Replace(testID) + ".png"
}

// Screenshots captures per-case page screenshots under a results directory.
// They are audit trail only and never affect verdicts.
type Screenshots struct {
	dir     string
	enabled bool
}

// NewScreenshots creates a new Screenshots sink. When disabled, Capture is a
// no-op.
func NewScreenshots(dir string, enabled bool) *Screenshots {
	return &Screenshots{dir: dir, enabled: enabled}
}

// Capture saves a full-page screenshot named after the test ID. Failures are
// ignored: the capture is best-effort.
func (s *Screenshots) Capture(p browser.Page, testID string) {
	if !s.enabled {
		return
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return
	}
	_ = p.Screenshot(filepath.Join(s.dir, FileName(testID)))
}
