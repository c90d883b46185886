package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/entity"
)

// Caps on repeated sub-objects in the generated data modules. The
// frontend only renders a handful of entries per project.
const (
	tsUnitCapProjects = 5
	tsUnitCapDetailed = 10
	tsInstallmentCap  = 10
)

// ProjectsTS renders the extracted_projects.ts data module: one entry
// per record with camelCase keys matching the frontend Property shape.
func ProjectsTS(records []entity.ProjectRecord, at time.Time) string {
	var b strings.Builder
	b.WriteString("// Auto-generated from PDF extraction\n")
	b.WriteString("// Generated on: " + at.Format("2006-01-02 15:04:05") + "\n\n")
	b.WriteString("export const extractedProjects = [\n")

	for i, r := range records {
		b.WriteString("  {\n")
		fmt.Fprintf(&b, "    id: %s,\n", tsStr(r.ID))
		fmt.Fprintf(&b, "    name: %s,\n", tsStr(r.Project.Name))
		fmt.Fprintf(&b, "    location: %s,\n", tsStr(r.Project.Location))
		fmt.Fprintf(&b, "    developer: %s,\n", tsStr(r.Project.Developer))
		fmt.Fprintf(&b, "    type: %s,\n", tsStr(string(r.Project.Type)))
		if r.PriceRange.Min != nil {
			fmt.Fprintf(&b, "    minPrice: %d,\n", *r.PriceRange.Min)
		}
		if r.PriceRange.Max != nil {
			fmt.Fprintf(&b, "    maxPrice: %d,\n", *r.PriceRange.Max)
		}
		fmt.Fprintf(&b, "    status: %s as const,\n", tsStr(r.Status))
		fmt.Fprintf(&b, "    description: %s,\n", tsStr(r.Description))
		fmt.Fprintf(&b, "    brochure: %s,\n", tsStr(r.Brochure))

		if len(r.Amenities) > 0 {
			b.WriteString("    amenities: [\n")
			for _, a := range r.Amenities {
				fmt.Fprintf(&b, "      %s,\n", tsStr(a))
			}
			b.WriteString("    ],\n")
		}

		if len(r.UnitTypes) > 0 {
			b.WriteString("    unitTypes: [\n")
			writeUnitEntries(&b, r.UnitTypes, tsUnitCapProjects)
			b.WriteString("    ],\n")
		}

		if r.PaymentPlan.DownPaymentPercent != nil {
			b.WriteString("    paymentPlan: {\n")
			fmt.Fprintf(&b, "      downPayment: %d,\n", *r.PaymentPlan.DownPaymentPercent)
			if r.PaymentPlan.DurationMonths != nil {
				fmt.Fprintf(&b, "      durationMonths: %d,\n", *r.PaymentPlan.DurationMonths)
			}
			b.WriteString("    },\n")
		}

		b.WriteString("    images: [],\n")
		b.WriteString("  }")
		if i < len(records)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	b.WriteString("];\n")
	return b.String()
}

// WriteTypeScript renders both data modules into the output directory:
// extracted_projects.ts and extractedMockData.ts.
func (w *Writer) WriteTypeScript(records []entity.ProjectRecord, at time.Time) error {
	if err := os.MkdirAll(w.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", w.OutDir, err)
	}
	files := map[string]string{
		"extracted_projects.ts": ProjectsTS(records, at),
		"extractedMockData.ts":  MockDataTS(records, at),
	}
	for name, content := range files {
		path := filepath.Join(w.OutDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Logger.Info("export.typescript.ok", "dir", w.OutDir, "projects", len(records))
	return nil
}

// MockDataTS renders the extractedMockData.ts module: frontend-ready
// property entries plus detailed projects, payment plans, and offers.
func MockDataTS(records []entity.ProjectRecord, at time.Time) string {
	var b strings.Builder
	writePropertiesSection(&b, records, at)
	writeDetailedSection(&b, records)
	writePaymentPlansSection(&b, records)
	writeOffersSection(&b, records)
	return b.String()
}

func writePropertiesSection(b *strings.Builder, records []entity.ProjectRecord, at time.Time) {
	b.WriteString("// Auto-generated mockup properties from PDF extraction\n")
	fmt.Fprintf(b, "// Generated: %s\n\n", at.Format("2006-01-02 15:04:05"))
	b.WriteString("import { Property } from '@/types';\n\n")
	b.WriteString("export const extractedProperties: Property[] = [\n")

	for i, r := range records {
		// Entry ids start at 10 to avoid colliding with the
		// hand-written seed data in the frontend.
		status := string(constants.InferProjectStatus(r.Description))
		completion := at.AddDate(0, 0, 365+i*90)
		price := 5000000
		if r.PriceRange.Min != nil {
			price = *r.PriceRange.Min
		}

		b.WriteString("  {\n")
		fmt.Fprintf(b, "    id: %s,\n", tsStr(fmt.Sprintf("%d", i+10)))
		fmt.Fprintf(b, "    name: %s,\n", tsStr(r.Project.Name))
		fmt.Fprintf(b, "    location: %s,\n", tsStr(r.Project.Location))
		fmt.Fprintf(b, "    developer: %s,\n", tsStr(r.Project.Developer))
		fmt.Fprintf(b, "    price: %d,\n", price)
		fmt.Fprintf(b, "    completionDate: new Date('%s'),\n", completion.Format("2006-01-02"))
		b.WriteString("    images: [],\n")
		fmt.Fprintf(b, "    status: %s,\n", tsStr(status))
		b.WriteString("  },\n")
	}
	b.WriteString("];\n")
}

func writeDetailedSection(b *strings.Builder, records []entity.ProjectRecord) {
	b.WriteString("\n// Detailed project information from PDFs\n")
	b.WriteString("export const detailedProjects = [\n")

	for _, r := range records {
		b.WriteString("  {\n")
		fmt.Fprintf(b, "    id: %s,\n", tsStr(r.ID))
		fmt.Fprintf(b, "    name: %s,\n", tsStr(r.Project.Name))
		fmt.Fprintf(b, "    type: %s,\n", tsStr(string(r.Project.Type)))
		fmt.Fprintf(b, "    location: %s,\n", tsStr(r.Project.Location))
		fmt.Fprintf(b, "    developer: %s,\n", tsStr(r.Project.Developer))
		fmt.Fprintf(b, "    description: %s,\n", tsStr(r.Description))
		fmt.Fprintf(b, "    status: %s,\n", tsStr(r.Status))
		fmt.Fprintf(b, "    brochure: %s,\n", tsStr(r.Brochure))

		b.WriteString("    priceRange: {\n")
		if r.PriceRange.Min != nil {
			fmt.Fprintf(b, "      min: %d,\n", *r.PriceRange.Min)
		} else {
			b.WriteString("      min: null,\n")
		}
		if r.PriceRange.Max != nil {
			fmt.Fprintf(b, "      max: %d,\n", *r.PriceRange.Max)
		} else {
			b.WriteString("      max: null,\n")
		}
		b.WriteString("    },\n")

		if len(r.Amenities) > 0 {
			b.WriteString("    amenities: [\n")
			for _, a := range r.Amenities {
				fmt.Fprintf(b, "      %s,\n", tsStr(a))
			}
			b.WriteString("    ],\n")
		} else {
			b.WriteString("    amenities: [],\n")
		}

		if len(r.UnitTypes) > 0 {
			b.WriteString("    unitTypes: [\n")
			writeUnitEntries(b, r.UnitTypes, tsUnitCapDetailed)
			b.WriteString("    ],\n")
		} else {
			b.WriteString("    unitTypes: [],\n")
		}

		installments := flattenInstallments(r.ScheduleTables)
		b.WriteString("    paymentPlan: {\n")
		if r.PaymentPlan.DownPaymentPercent != nil {
			fmt.Fprintf(b, "      downPaymentPercentage: %d,\n", *r.PaymentPlan.DownPaymentPercent)
		}
		if r.PaymentPlan.DurationMonths != nil {
			fmt.Fprintf(b, "      durationMonths: %d,\n", *r.PaymentPlan.DurationMonths)
		}
		if len(installments) > 0 {
			fmt.Fprintf(b, "      totalInstallments: %d,\n", len(installments))
		}
		b.WriteString("    },\n")

		b.WriteString("  },\n")
	}
	b.WriteString("];\n")
}

func writePaymentPlansSection(b *strings.Builder, records []entity.ProjectRecord) {
	b.WriteString("\n// Payment plans extracted from PDFs\n")
	b.WriteString("export const extractedPaymentPlans = [\n")

	for _, r := range records {
		installments := flattenInstallments(r.ScheduleTables)
		if r.PaymentPlan.DownPaymentPercent == nil && len(installments) == 0 {
			continue
		}
		b.WriteString("  {\n")
		fmt.Fprintf(b, "    projectId: %s,\n", tsStr(r.ID))
		fmt.Fprintf(b, "    projectName: %s,\n", tsStr(r.Project.Name))
		if r.PaymentPlan.DownPaymentPercent != nil {
			fmt.Fprintf(b, "    downPayment: %d,\n", *r.PaymentPlan.DownPaymentPercent)
		}
		if r.PaymentPlan.DurationMonths != nil {
			fmt.Fprintf(b, "    durationMonths: %d,\n", *r.PaymentPlan.DurationMonths)
		}
		if len(installments) > 0 {
			b.WriteString("    installments: [\n")
			for j, inst := range installments {
				if j >= tsInstallmentCap {
					break
				}
				b.WriteString("      {\n")
				if inst.Number != nil {
					fmt.Fprintf(b, "        number: %d,\n", *inst.Number)
				}
				if inst.Amount != nil {
					fmt.Fprintf(b, "        amount: %d,\n", *inst.Amount)
				}
				if inst.Percentage != nil {
					fmt.Fprintf(b, "        percentage: %d,\n", *inst.Percentage)
				}
				b.WriteString("      },\n")
			}
			b.WriteString("    ],\n")
		}
		b.WriteString("  },\n")
	}
	b.WriteString("];\n")
}

func writeOffersSection(b *strings.Builder, records []entity.ProjectRecord) {
	b.WriteString("\n// Special offers and deals from PDFs\n")
	b.WriteString("export const projectOffers = [\n")

	for _, r := range records {
		b.WriteString("  {\n")
		fmt.Fprintf(b, "    id: %s,\n", tsStr(r.ID+"_offer"))
		fmt.Fprintf(b, "    projectId: %s,\n", tsStr(r.ID))
		fmt.Fprintf(b, "    projectName: %s,\n", tsStr(r.Project.Name))
		fmt.Fprintf(b, "    offerType: %s,\n", tsStr(offerType(r.Project.Name)))
		fmt.Fprintf(b, "    brochure: %s,\n", tsStr(r.Brochure))
		b.WriteString("    validUntil: new Date('2025-12-31'),\n")
		b.WriteString("  },\n")
	}
	b.WriteString("];\n")
}

func writeUnitEntries(b *strings.Builder, units []entity.UnitType, limit int) {
	for i, u := range units {
		if i >= limit {
			break
		}
		b.WriteString("      {\n")
		if u.Type != "" {
			fmt.Fprintf(b, "        type: %s,\n", tsStr(u.Type))
		}
		if u.Bedrooms != nil {
			fmt.Fprintf(b, "        bedrooms: %d,\n", *u.Bedrooms)
		}
		if u.Area != "" {
			fmt.Fprintf(b, "        area: %s,\n", tsStr(u.Area))
		}
		if u.Price != nil {
			fmt.Fprintf(b, "        price: %d,\n", *u.Price)
		}
		b.WriteString("      },\n")
	}
}

// offerType derives a named promotion from the project name.
func offerType(name string) string {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, "ASAAN GHAR"):
		return "Asaan Ghar Offer 2025"
	case strings.Contains(upper, "DEVELOPMENT DEAL"):
		return "Development Deal"
	case strings.Contains(upper, "ASAAN KAROBAR"):
		return "Asaan Karobar Deal 2025"
	default:
		return "Standard"
	}
}

func flattenInstallments(tables []entity.ScheduleTable) []entity.Installment {
	var out []entity.Installment
	for _, t := range tables {
		out = append(out, t.Schedule...)
	}
	return out
}

// tsStr renders a single-quoted TypeScript string literal.
func tsStr(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}
