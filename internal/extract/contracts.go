// Package extract turns source files into Documents: concatenated page
// text plus table cell grids. It is the extraction-service boundary;
// everything downstream treats its output as immutable.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/propintel/brochure-extractor/internal/entity"
)

// Format identifies a source document type.
type Format string

const (
	FormatPDF Format = "PDF"
	FormatTXT Format = "TXT"
)

// Result carries extraction metadata alongside the document.
type Result struct {
	Document entity.Document
	Format   Format
	Duration time.Duration
	Warnings []string
}

// Service is the two-operation contract the engine depends on: page
// text (concatenated in page order) and per-page table grids.
type Service interface {
	Extract(ctx context.Context, path string) (Result, error)
}

// Config configures the extractor.
type Config struct {
	// MaxFileSize is the largest file the extractor will open (default 100 MB).
	MaxFileSize int64
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
}

// Extractor dispatches extraction by file extension.
type Extractor struct {
	cfg    Config
	logger *slog.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, logger: logger}
}

// Detect returns the document format based on file extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".txt", ".text":
		return FormatTXT, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", filepath.Ext(path))
	}
}

// Extract opens the file, extracts page text and tables, and assembles
// the Document. Failures here are document-access errors for the caller.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > e.cfg.MaxFileSize {
		return Result{}, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), e.cfg.MaxFileSize)
	}

	format, err := Detect(path)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	e.logger.Debug("extract.start", "path", path, "format", format)

	var pages []string
	switch format {
	case FormatPDF:
		pages, err = extractPDFPages(path)
	case FormatTXT:
		pages, err = extractTextPages(path)
	default:
		err = fmt.Errorf("no parser for format: %s", format)
	}
	if err != nil {
		return Result{}, fmt.Errorf("extract %s (%s): %w", path, format, err)
	}

	filename := filepath.Base(path)
	doc := entity.Document{
		Identifier: DocumentID(filename),
		Filename:   filename,
		Pages:      len(pages),
	}

	var sb strings.Builder
	for i, pageText := range pages {
		sb.WriteString(pageText)
		doc.Tables = append(doc.Tables, DetectTables(pageText, i+1)...)
	}
	doc.RawText = sb.String()

	e.logger.Debug("extract.ok",
		"path", path,
		"pages", doc.Pages,
		"tables", len(doc.Tables),
		"text_bytes", len(doc.RawText),
	)

	return Result{
		Document: doc,
		Format:   format,
		Duration: time.Since(start),
	}, nil
}

// DocumentID derives the stable record identifier from a filename:
// extension stripped, spaces replaced with underscores, lower-cased.
func DocumentID(filename string) string {
	id := strings.TrimSuffix(filename, filepath.Ext(filename))
	id = strings.ReplaceAll(id, " ", "_")
	return strings.ToLower(id)
}
