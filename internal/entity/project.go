package entity

import (
	"github.com/propintel/brochure-extractor/constants"
)

// Installment is one row of a payment schedule table. All fields are
// optional; a fragment is only retained when at least one is populated.
type Installment struct {
	Number      *int   `json:"number,omitempty"`
	Amount      *int   `json:"amount,omitempty"`
	Percentage  *int   `json:"percentage,omitempty"`
	Description string `json:"description,omitempty"`
}

// Empty reports whether no field of the installment was populated.
func (i Installment) Empty() bool {
	return i.Number == nil && i.Amount == nil && i.Percentage == nil && i.Description == ""
}

// ScheduleTable is the installment list derived from one classified
// payment-schedule table, kept verbatim with its source page.
type ScheduleTable struct {
	Page     int           `json:"page"`
	Schedule []Installment `json:"schedule"`
}

// PaymentPlan carries the text-derived summary parameters. Table-derived
// schedules live alongside in ProjectRecord.ScheduleTables; the two are
// independent sub-objects of the same record.
type PaymentPlan struct {
	DownPaymentPercent    *int `json:"down_payment_percent,omitempty"`
	DurationMonths        *int `json:"duration_months,omitempty"`
	MonthlyInstallments   *int `json:"monthly_installments,omitempty"`
	QuarterlyInstallments *int `json:"quarterly_installments,omitempty"`
}

// UnitType is one unit fragment from a unit-spec table row. The typed
// fields are populated by the basic mapping; RawData holds the
// positional header->value mapping produced by the diagnostic mapping.
type UnitType struct {
	Type     string            `json:"type,omitempty"`
	Bedrooms *int              `json:"bedrooms,omitempty"`
	Area     string            `json:"area,omitempty"`
	Price    *int              `json:"price,omitempty"`
	Page     int               `json:"page,omitempty"`
	RawData  map[string]string `json:"raw_data,omitempty"`
}

// Empty reports whether the fragment carries no extracted value.
func (u UnitType) Empty() bool {
	return u.Type == "" && u.Bedrooms == nil && u.Area == "" && u.Price == nil && len(u.RawData) == 0
}

// PriceRange summarizes a bag of candidate prices. All fields are absent
// when the bag is empty; Average is integer floor division of sum over
// count and only the diagnostic profile computes it.
type PriceRange struct {
	Min     *int `json:"min,omitempty"`
	Max     *int `json:"max,omitempty"`
	Average *int `json:"average,omitempty"`
}

// ProjectInfo is the project identity block.
type ProjectInfo struct {
	Name      string                `json:"name"`
	Type      constants.ProjectType `json:"type"`
	Location  string                `json:"location"`
	Developer string                `json:"developer"`
}

// ContactInfo holds deduplicated contact details. Phones and emails are
// kept verbatim (no case normalization) and sorted at the aggregation
// boundary for deterministic output.
type ContactInfo struct {
	Phones  []string `json:"phones"`
	Emails  []string `json:"emails"`
	Website string   `json:"website,omitempty"`
}

// TablePreview is a truncated table rendering retained purely for
// diagnostic output; nothing else consumes it.
type TablePreview struct {
	TableNumber int        `json:"table_number"`
	Page        int        `json:"page"`
	Rows        int        `json:"rows"`
	Cols        int        `json:"cols"`
	Data        [][]string `json:"data"`
}

// ProjectRecord is the canonical, merged structured output for one
// document. Constructed once per document and immutable afterwards; it
// may be serialized any number of times.
type ProjectRecord struct {
	ID      string      `json:"id"`
	Project ProjectInfo `json:"project"`

	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Brochure    string `json:"brochure,omitempty"`

	PriceRange  PriceRange `json:"price_range"`
	PricesFound []int      `json:"prices_found,omitempty"`
	UnitPrices  []int      `json:"unit_prices,omitempty"`

	UnitTypes    []UnitType `json:"unit_types,omitempty"`
	UnitMentions []string   `json:"unit_mentions,omitempty"`

	PaymentPlan    PaymentPlan     `json:"payment_plan"`
	ScheduleTables []ScheduleTable `json:"schedule_tables,omitempty"`

	Amenities     []string    `json:"amenities"`
	SpecialOffers []string    `json:"special_offers,omitempty"`
	Contact       ContactInfo `json:"contact_info"`

	RawTables []TablePreview `json:"raw_tables,omitempty"`

	RawTextSample string `json:"raw_text_sample,omitempty"`
	TablesFound   int    `json:"tables_found"`
	TextLength    int    `json:"text_length"`
	Pages         int    `json:"pages"`

	Error string `json:"error,omitempty"`
}

// IntPtr returns a pointer to v. Convenience for the optional int fields.
func IntPtr(v int) *int { return &v }
