package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/propintel/brochure-extractor/internal/entity"
	"github.com/propintel/brochure-extractor/internal/extract"
	"github.com/propintel/brochure-extractor/internal/scan"
)

// Processor coordinates extraction then analysis for one document at a
// time. Extraction failures are absorbed at the document boundary: the
// partial record is returned with its error field set, and the batch
// moves on.
type Processor struct {
	Logger    *slog.Logger
	Extractor extract.Service
	Engine    *Engine
}

// NewProcessor creates a Processor.
func NewProcessor(logger *slog.Logger, svc extract.Service, engine *Engine) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extractor: svc, Engine: engine}
}

// ProcessPath extracts and analyzes one document. The returned record
// is always usable; when err is non-nil the record carries the same
// message in its Error field and whatever identity could be derived
// from the filename.
func (p *Processor) ProcessPath(ctx context.Context, path string) (entity.ProjectRecord, error) {
	res, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		p.Logger.Error("processor.extract.failed", "path", path, "err", err)
		return p.failedRecord(path, err), err
	}

	rec := p.Engine.Analyze(res.Document)
	p.Logger.Info("processor.ok",
		"path", path,
		"id", rec.ID,
		"format", string(res.Format),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return rec, nil
}

// failedRecord builds the partial record for an unreadable document:
// filename-derived identity, everything else absent.
func (p *Processor) failedRecord(path string, err error) entity.ProjectRecord {
	filename := filepath.Base(path)
	return entity.ProjectRecord{
		ID: extract.DocumentID(filename),
		Project: entity.ProjectInfo{
			Name:      scan.NameFromFilename(filename),
			Type:      scan.ProjectType(filename, "", p.Engine.Profile),
			Location:  p.Engine.Catalog.DefaultLocation,
			Developer: p.Engine.Catalog.Developer,
		},
		Amenities: []string{},
		Contact:   entity.ContactInfo{Phones: []string{}, Emails: []string{}},
		Error:     err.Error(),
	}
}
