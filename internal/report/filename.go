package report

import (
	"strings"
	"time"

	"rentinspect/internal/inspection"
	"rentinspect/pkg/types"
)

// Filename builds "{property} {unit} {initial}{last} {MM} {DD} {YYYY}" from the
// inspection metadata alone. Empty parts are skipped.
func Filename(data types.InspectionData) string {
	parts := []string{
		strings.TrimSpace(data.EffectivePropertyName()),
		strings.TrimSpace(data.UnitNumber),
		strings.TrimSpace(data.TenantInitial + data.TenantLastName),
		filenameDate(data.InspectionDate),
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, " ")
}

func filenameDate(v string) string {
	v = strings.TrimSpace(v)
	d, err := time.Parse(inspection.DateLayout, v)
	if err != nil {
		return v
	}
	return d.Format("01 02 2006")
}

var unsafeFilenameChars = strings.NewReplacer("/", "-", "\\", "-", ":", "-", "\"", "", "\n", " ", "\r", "")

// SafeFilename makes a Filename usable as a path or download name.
func SafeFilename(name string) string {
	name = strings.TrimSpace(unsafeFilenameChars.Replace(name))
	if name == "" {
		return "inspection-report"
	}
	return name
}
