package domain

import (
	"strconv"
	"strings"
)

// ValueKind identifies the closed set of cell value variants.
type ValueKind int

const (
	KindBlank ValueKind = iota
	KindString
	KindNumber
	KindBool
)

// FieldType names the primitive type a validation rule can require.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

// Value is one cell of tabular data. The zero value is blank.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

func BlankValue() Value {
	return Value{Kind: KindBlank}
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// ParseValue infers the variant from raw cell text. Numbers and booleans are
// recognized the way spreadsheet readers surface them; everything else stays a
// trimmed string.
func ParseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return BlankValue()
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return NumberValue(f)
	}
	return StringValue(trimmed)
}

// IsBlank reports whether the value is missing or whitespace-only.
func (v Value) IsBlank() bool {
	if v.Kind == KindBlank {
		return true
	}
	return v.Kind == KindString && strings.TrimSpace(v.Str) == ""
}

// Display renders the value the way it appears in a cell.
func (v Value) Display() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}

// Normalize returns the comparison form used by default-value and fixed-value
// checks: booleans become their uppercase string form, everything else is
// trimmed and uppercased. The second return is false for blank values, which
// are never compared.
func (v Value) Normalize() (string, bool) {
	if v.IsBlank() {
		return "", false
	}
	if v.Kind == KindBool {
		if v.Bool {
			return "TRUE", true
		}
		return "FALSE", true
	}
	return strings.ToUpper(strings.TrimSpace(v.Display())), true
}

// NormalizeString applies the same normalization to a configured literal.
func NormalizeString(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Matches reports whether a non-blank value satisfies the rule type.
func (v Value) Matches(t FieldType) bool {
	switch t {
	case FieldTypeString:
		return v.Kind == KindString
	case FieldTypeNumber:
		return v.Kind == KindNumber
	case FieldTypeBoolean:
		return v.Kind == KindBool
	default:
		return true
	}
}

// Cell returns the native representation handed to the workbook writer, or
// nil for blanks so existing cell content is left alone.
func (v Value) Cell() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	default:
		return nil
	}
}
