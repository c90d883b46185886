// Package export renders batch results to their output artifacts:
// per-project JSON files, a combined dataset, an extraction summary,
// TypeScript data modules, and an XLSX workbook.
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/propintel/brochure-extractor/internal/entity"
)

// SummaryEntry is one project's identity line in the batch summary.
type SummaryEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// Summary is the extraction_summary.json payload.
type Summary struct {
	TotalProjects  int            `json:"total_projects"`
	ExtractionDate string         `json:"extraction_date"`
	Projects       []SummaryEntry `json:"projects"`
}

// Summarize builds the batch summary for the given records.
func Summarize(records []entity.ProjectRecord, at time.Time) Summary {
	s := Summary{
		TotalProjects:  len(records),
		ExtractionDate: at.Format(time.RFC3339),
		Projects:       make([]SummaryEntry, 0, len(records)),
	}
	for _, r := range records {
		s.Projects = append(s.Projects, SummaryEntry{
			ID:       r.ID,
			Name:     r.Project.Name,
			Type:     string(r.Project.Type),
			Location: r.Project.Location,
		})
	}
	return s
}

// Writer renders batch artifacts into one output directory.
type Writer struct {
	OutDir string
	Logger *slog.Logger
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{OutDir: dir, Logger: logger}
}

// WriteJSON writes one <id>.json per record, the combined
// projects_data.json, and extraction_summary.json.
func (w *Writer) WriteJSON(records []entity.ProjectRecord, at time.Time) error {
	if err := os.MkdirAll(w.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", w.OutDir, err)
	}

	if err := w.writeIndented("projects_data.json", records); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.writeIndented(r.ID+".json", r); err != nil {
			return err
		}
	}
	if err := w.writeIndented("extraction_summary.json", Summarize(records, at)); err != nil {
		return err
	}

	w.Logger.Info("export.json.ok", "dir", w.OutDir, "projects", len(records))
	return nil
}

func (w *Writer) writeIndented(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(w.OutDir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
