package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/moodtrack/internal/models"
)

// ExportFormat is a download format of the mood history.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
)

var exportHeader = []string{"date", "mood", "intensity", "activities", "note"}

// ParseExportFormat accepts "csv" and "json", defaulting to csv when empty.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", ExportCSV:
		return ExportCSV, nil
	case ExportJSON:
		return ExportJSON, nil
	default:
		return "", &ValidationError{Message: fmt.Sprintf("unsupported export format %q", s)}
	}
}

// ContentType returns the MIME type of the format.
func (f ExportFormat) ContentType() string {
	if f == ExportJSON {
		return "application/json"
	}
	return "text/csv; charset=utf-8"
}

// ExportFilename names the download, e.g. moodtrack-export-2024-05-01.csv.
func ExportFilename(f ExportFormat, now time.Time) string {
	return fmt.Sprintf("moodtrack-export-%s.%s", now.Format("2006-01-02"), f)
}

// ExportMoods encodes moods in the given format.
func ExportMoods(moods []models.Mood, f ExportFormat) ([]byte, error) {
	var buf bytes.Buffer

	if f == ExportJSON {
		if moods == nil {
			moods = []models.Mood{}
		}
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(moods); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, m := range moods {
		record := []string{
			m.FormattedDate(),
			m.Mood,
			strconv.Itoa(m.Intensity),
			strings.Join(m.Activities, ";"),
			m.Note,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
