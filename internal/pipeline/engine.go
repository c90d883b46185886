// Package pipeline runs the per-document transform: classify tables,
// map rows to fragments, scan text for facts, and merge everything into
// one canonical ProjectRecord.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/catalog"
	"github.com/propintel/brochure-extractor/internal/classify"
	"github.com/propintel/brochure-extractor/internal/entity"
	"github.com/propintel/brochure-extractor/internal/scan"
)

const (
	// Unit-table derived prices use a stricter band than text prices.
	unitPriceMin = 1000000
	unitPriceMax = 100000000

	rawTextSampleLen = 500
	rawTablePreviewN = 5
	rawTableRowLimit = 10
	brochurePathBase = "/projectFiles/"
)

// Engine merges table- and text-derived facts for one extraction
// profile. It holds no per-document state; Analyze is a pure function
// of the document.
type Engine struct {
	Logger  *slog.Logger
	Catalog *catalog.Catalog
	Profile scan.Profile
}

// NewEngine creates an engine for the named profile. A nil catalog uses
// the built-in defaults.
func NewEngine(profile constants.ExtractionProfile, cat *catalog.Catalog, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	return &Engine{
		Logger:  logger,
		Catalog: cat,
		Profile: scan.ProfileFor(profile),
	}
}

// Analyze builds the canonical record for one document. Text facts and
// table fragments are derived independently and then merged: the
// text-derived price range is the authoritative summary, table-derived
// schedules sit alongside text-derived plan parameters, and unit
// fragments keep table-then-row encounter order with no dedup.
func (e *Engine) Analyze(doc entity.Document) entity.ProjectRecord {
	p := e.Profile
	diagnostic := p.Name == constants.ProfileDiagnostic

	rec := entity.ProjectRecord{
		ID:          doc.Identifier,
		TablesFound: len(doc.Tables),
		TextLength:  len(doc.RawText),
		Pages:       doc.Pages,
	}

	// Table stream.
	for _, t := range doc.Tables {
		if !classify.Classifiable(t) {
			continue
		}
		switch classify.Table(t, e.Catalog) {
		case constants.TablePaymentSchedule:
			if st, ok := e.mapSchedule(t); ok {
				rec.ScheduleTables = append(rec.ScheduleTables, st)
			}
		case constants.TableUnitSpec:
			rec.UnitTypes = append(rec.UnitTypes, e.mapUnits(t, diagnostic)...)
		}
	}

	// Text stream.
	prices := scan.Prices(doc.RawText, p)
	rec.PriceRange = scan.Range(prices, p)
	rec.PaymentPlan = scan.PaymentParams(doc.RawText, p)
	rec.Amenities = scan.Amenities(doc.RawText, p, e.Catalog)
	rec.Contact = scan.Contacts(doc.RawText)

	location := scan.Location(doc.RawText, p, e.Catalog)
	rec.Project = entity.ProjectInfo{
		Name:      scan.ProjectName(doc.Filename, doc.RawText, p, e.Catalog),
		Type:      scan.ProjectType(doc.Filename, doc.RawText, p),
		Location:  location,
		Developer: e.Catalog.Developer,
	}

	if diagnostic {
		rec.PricesFound = prices
		rec.SpecialOffers = scan.Offers(doc.RawText, e.Catalog)
		rec.RawTables = previewTables(doc.Tables)
	} else {
		rec.UnitPrices = classify.TablePrices(doc.Tables, unitPriceMin, unitPriceMax)
		rec.UnitMentions = scan.UnitMentions(doc.RawText)
		rec.Description = fmt.Sprintf("Premium %s project in %s", rec.Project.Type, location)
		rec.Status = string(constants.StatusConstruction)
		rec.Brochure = brochurePathBase + doc.Filename
		rec.RawTextSample = sample(doc.RawText, rawTextSampleLen)
	}

	e.Logger.Info("analyze.ok",
		"id", rec.ID,
		"profile", string(p.Name),
		"name", rec.Project.Name,
		"type", string(rec.Project.Type),
		"tables", rec.TablesFound,
		"units", len(rec.UnitTypes),
		"schedules", len(rec.ScheduleTables),
	)
	return rec
}

func (e *Engine) mapSchedule(t entity.Table) (entity.ScheduleTable, bool) {
	st := entity.ScheduleTable{Page: t.PageNumber}
	for _, row := range t.DataRows() {
		if inst, ok := classify.MapInstallmentRow(row); ok {
			st.Schedule = append(st.Schedule, inst)
		}
	}
	if len(st.Schedule) == 0 {
		return st, false
	}
	return st, true
}

func (e *Engine) mapUnits(t entity.Table, diagnostic bool) []entity.UnitType {
	var units []entity.UnitType
	header := t.Header()
	for _, row := range t.DataRows() {
		var unit entity.UnitType
		var ok bool
		if diagnostic {
			unit, ok = classify.MapUnitRowRaw(row, header, t.PageNumber)
		} else {
			unit, ok = classify.MapUnitRowTyped(row, t.PageNumber)
		}
		if ok {
			units = append(units, unit)
		}
	}
	return units
}

// previewTables keeps the first tables and rows for diagnostic output
// only; nothing downstream consumes the preview.
func previewTables(tables []entity.Table) []entity.TablePreview {
	var previews []entity.TablePreview
	for i, t := range tables {
		if i >= rawTablePreviewN {
			break
		}
		p := entity.TablePreview{
			TableNumber: i + 1,
			Page:        t.PageNumber,
			Rows:        len(t.Rows),
			Cols:        t.Cols(),
		}
		for j, row := range t.Rows {
			if j >= rawTableRowLimit {
				break
			}
			p.Data = append(p.Data, row)
		}
		previews = append(previews, p)
	}
	return previews
}

func sample(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
