package domain

import "fmt"

// TemplateType enumerates the supported DLT templates.
type TemplateType string

const (
	TemplateServiceContractDLT      TemplateType = "Service Contract DLT"
	TemplateCoveredProduct          TemplateType = "Covered Product_Service Contract"
	TemplateWarrantyServiceContract TemplateType = "Warranty Service Contract"
	TemplateWarrantyCoveredProduct  TemplateType = "Warranty Covered Product_Service Contract"
	TemplateServicePlan             TemplateType = "Service Plan"
	TemplateServiceOffering         TemplateType = "Service Offering"
	TemplatePartsPricing            TemplateType = "Parts Pricing"
	TemplateLaborPricing            TemplateType = "Labor Pricing"
)

// AllTemplateTypes lists the enumeration in its fixed order.
func AllTemplateTypes() []TemplateType {
	return []TemplateType{
		TemplateServiceContractDLT,
		TemplateCoveredProduct,
		TemplateWarrantyServiceContract,
		TemplateWarrantyCoveredProduct,
		TemplateServicePlan,
		TemplateServiceOffering,
		TemplatePartsPricing,
		TemplateLaborPricing,
	}
}

// ParseTemplateType resolves a template type name.
func ParseTemplateType(name string) (TemplateType, error) {
	for _, t := range AllTemplateTypes() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown template type %q", name)
}

// MappingKind selects one of the cross-reference operations.
type MappingKind string

const (
	MappingAccountLocation MappingKind = "account_location"
	MappingInstallProduct  MappingKind = "install_product"
)

// ParseMappingKind resolves a mapping kind name.
func ParseMappingKind(name string) (MappingKind, error) {
	switch MappingKind(name) {
	case MappingAccountLocation, MappingInstallProduct:
		return MappingKind(name), nil
	}
	return "", fmt.Errorf("unknown mapping kind %q", name)
}

// TemplateConfig carries the population rules for one template type.
type TemplateConfig struct {
	// ColumnMapping maps a template column to the source column it is
	// populated from.
	ColumnMapping map[string]string
	// DefaultValues maps a template column to its fixed value.
	DefaultValues map[string]string
}

// RuleSet carries the validation rules for one template type.
type RuleSet struct {
	Required []string
	Unique   []string
	Types    map[string]FieldType
	Values   map[string]string
}

// IsZero reports whether no rules are defined.
func (r RuleSet) IsZero() bool {
	return len(r.Required) == 0 && len(r.Unique) == 0 && len(r.Types) == 0 && len(r.Values) == 0
}

// Workbook layout shared by every template: a banner row, the column headers
// on row 2, and data from row 3 down.
const (
	TemplateHeaderRow = 2
	TemplateDataRow   = 3

	DefaultSheetName = "INSERT"
	SummarySheetName = "Validation_Summary"

	TempIDColumn = "Temp ID"
	TempIDSeed   = 5001
)
