package export

import (
	"strings"
	"time"

	"portico-hq/portico/pkg/document"
)

// resolveFilename determines the output name for a run. An explicit
// OutputName wins; otherwise the name is generated from the type tags and
// the current date, with "custom" standing in for the tags when the custom
// query override is active.
func resolveFilename(req *document.ExportRequest, now time.Time) string {
	ext := req.Format.Extension()

	if name := strings.TrimSpace(req.OutputName); name != "" {
		return name + "." + ext
	}

	selector := "custom"
	if !req.UseCustomQuery && len(req.Types) > 0 {
		selector = strings.Join(req.Types, "-")
	}

	return "export-" + selector + "-" + now.Format("2006-01-02") + "." + ext
}
