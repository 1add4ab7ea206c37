package model

import "fmt"

// Transform is a per-field transform tag applied during CSV import.
// The set is closed; unknown tags are rejected before the pipeline runs.
type Transform string

const (
	TransformNone        Transform = "none"
	TransformUppercase   Transform = "uppercase"
	TransformLowercase   Transform = "lowercase"
	TransformTrim        Transform = "trim"
	TransformCurrencyUSD Transform = "currency_usd"
	TransformRoundNumber Transform = "round_number"
)

// Valid reports whether the tag is one of the known transforms.
func (t Transform) Valid() bool {
	switch t {
	case TransformNone, TransformUppercase, TransformLowercase,
		TransformTrim, TransformCurrencyUSD, TransformRoundNumber:
		return true
	}
	return false
}

// TransformRule maps one source column to a target product field,
// optionally passing the raw value through a transform first.
type TransformRule struct {
	SourceField string    `json:"sourceField" yaml:"sourceField"`
	TargetField string    `json:"targetField" yaml:"targetField"`
	Transform   Transform `json:"transform" yaml:"transform"`
}

// Validate checks the rule against the fixed target schema.
func (r TransformRule) Validate() error {
	if r.Transform != "" && !r.Transform.Valid() {
		return fmt.Errorf("unknown transform %q for column %q", r.Transform, r.SourceField)
	}
	switch r.TargetField {
	case "", "name", "price", "category", "stock", "description", "image":
		return nil
	}
	return fmt.Errorf("unknown target field %q for column %q", r.TargetField, r.SourceField)
}
