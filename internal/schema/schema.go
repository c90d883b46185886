// Package schema declares the JSON-Schema for project records and
// validates serialized records against it.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/propintel/brochure-extractor/internal/entity"
)

// BuildProjectRecordSchema returns a JSON-Schema (draft 2020-12 subset)
// for the canonical record as a generic map.
func BuildProjectRecordSchema() map[string]any {
	optionalInt := map[string]any{"type": "integer"}

	installment := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"number":      optionalInt,
			"amount":      optionalInt,
			"percentage":  optionalInt,
			"description": map[string]any{"type": "string"},
		},
	}

	scheduleTable := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"page":     map[string]any{"type": "integer"},
			"schedule": map[string]any{"type": "array", "items": installment},
		},
		"required": []string{"page", "schedule"},
	}

	unitType := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"type":     map[string]any{"type": "string"},
			"bedrooms": optionalInt,
			"area":     map[string]any{"type": "string"},
			"price":    optionalInt,
			"page":     map[string]any{"type": "integer"},
			"raw_data": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
	}

	tablePreview := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"table_number": map[string]any{"type": "integer"},
			"page":         map[string]any{"type": "integer"},
			"rows":         map[string]any{"type": "integer"},
			"cols":         map[string]any{"type": "integer"},
			"data": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
		"required": []string{"table_number", "page", "rows", "cols"},
	}

	stringArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	intArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "integer"},
	}

	props := map[string]any{
		"id": map[string]any{"type": "string", "minLength": 1},
		"project": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"name": map[string]any{"type": "string", "minLength": 1},
				"type": map[string]any{
					"type": "string",
					"enum": []string{"residential", "commercial", "mixed-use"},
				},
				"location":  map[string]any{"type": "string"},
				"developer": map[string]any{"type": "string"},
			},
			"required": []string{"name", "type", "location", "developer"},
		},
		"description": map[string]any{"type": "string"},
		"status":      map[string]any{"type": "string"},
		"brochure":    map[string]any{"type": "string"},
		"price_range": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"min":     optionalInt,
				"max":     optionalInt,
				"average": optionalInt,
			},
		},
		"prices_found":  intArray,
		"unit_prices":   intArray,
		"unit_types":    map[string]any{"type": "array", "items": unitType},
		"unit_mentions": stringArray,
		"payment_plan": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"down_payment_percent":   optionalInt,
				"duration_months":        optionalInt,
				"monthly_installments":   optionalInt,
				"quarterly_installments": optionalInt,
			},
		},
		"schedule_tables": map[string]any{"type": "array", "items": scheduleTable},
		"amenities":       stringArray,
		"special_offers":  stringArray,
		"contact_info": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"phones":  stringArray,
				"emails":  stringArray,
				"website": map[string]any{"type": "string"},
			},
			"required": []string{"phones", "emails"},
		},
		"raw_tables":      map[string]any{"type": "array", "items": tablePreview},
		"raw_text_sample": map[string]any{"type": "string"},
		"tables_found":    map[string]any{"type": "integer", "minimum": 0},
		"text_length":     map[string]any{"type": "integer", "minimum": 0},
		"pages":           map[string]any{"type": "integer", "minimum": 0},
		"error":           map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"id", "project", "price_range", "payment_plan", "amenities", "contact_info", "tables_found", "text_length", "pages"},
	}
}

var (
	once     sync.Once
	compiled *jsonschema.Schema
	loadErr  error
)

func load() {
	c := jsonschema.NewCompiler()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(BuildProjectRecordSchema()); err != nil {
		loadErr = err
		return
	}
	if err := c.AddResource("schema://project_record.json", &buf); err != nil {
		loadErr = err
		return
	}
	s, err := c.Compile("schema://project_record.json")
	if err != nil {
		loadErr = err
		return
	}
	compiled = s
}

// ValidateRecord serializes the record and validates the result against
// the canonical schema.
func ValidateRecord(rec entity.ProjectRecord) error {
	once.Do(load)
	if loadErr != nil {
		return fmt.Errorf("compile record schema: %w", loadErr)
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return compiled.Validate(v)
}
