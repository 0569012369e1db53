// Package registry holds the static per-template configuration: which source
// columns feed which template columns, the fixed default values, and the
// declarative validation rules. Pure data, resolved by exhaustive matching so
// a new template type is a compile-visible addition.
package registry

import (
	"sort"

	"github.com/sureshguna14/template-automation/internal/domain"
)

// Config returns the column mapping and default values for a template type.
// Unrecognized types yield an empty config.
func Config(t domain.TemplateType) domain.TemplateConfig {
	switch t {
	case domain.TemplateServiceContractDLT:
		return domain.TemplateConfig{
			ColumnMapping: map[string]string{
				"Agreement_ID__c":   "Temp ID",
				"SVMXC__Company__c": "UCM__Id__c",
			},
			DefaultValues: map[string]string{
				"SVMXC__Active__c":  "TRUE",
				"HCS_Status__c":     "Draft",
				"HCS_Related_To__c": "Service Contract",
			},
		}
	case domain.TemplateCoveredProduct:
		return domain.TemplateConfig{
			ColumnMapping: map[string]string{
				"SVMXC__Installed_Product__c": "Asset#",
			},
			DefaultValues: map[string]string{
				"PM_Creation_Status__c": "BATCH",
			},
		}
	case domain.TemplateWarrantyServiceContract:
		return domain.TemplateConfig{
			ColumnMapping: map[string]string{
				"Agreement_ID__c": "Temp ID",
			},
			DefaultValues: map[string]string{
				"SVMXC__Active__c":  "TRUE",
				"HCS_Status__c":     "Draft",
				"HCS_Related_To__c": "Service Contract",
			},
		}
	case domain.TemplateWarrantyCoveredProduct:
		return domain.TemplateConfig{
			ColumnMapping: map[string]string{
				"SVMXC__Installed_Product__c": "Asset#",
			},
			DefaultValues: map[string]string{
				"PM_Creation_Status__c": "BATCH",
			},
		}
	case domain.TemplateServicePlan:
		return domain.TemplateConfig{
			DefaultValues: map[string]string{
				"SVMXC__Active__c":               "TRUE",
				"Business_Unit__c":               "HCS",
				"HCS_Related_To__c":              "Service Contract",
				"GS_Rev_Rec_Method__c":           "Straight Line",
				"Extend_to_End_of_Month__c":      "FALSE",
				"SVMXC__Labor_Rounding_Type__c":  "Actuals",
				"SVMXC__Travel_Rounding_Type__c": "Actuals",
			},
		}
	case domain.TemplateServiceOffering:
		return domain.TemplateConfig{
			ColumnMapping: map[string]string{
				"SVMXC__Service_Plan__c": "Temp ID",
			},
			DefaultValues: map[string]string{
				"Billing_Type__c":    "Non-Billable",
				"Business_Unit__c":   "HCS",
				"Work_Order_Type__c": "Field Service; Remote Service; Vendor; Depot Repair; Service Task",
			},
		}
	case domain.TemplatePartsPricing:
		return domain.TemplateConfig{
			ColumnMapping: map[string]string{
				"Pricing_Type__c":     "Coverage_Type__c",
				"Service_Offering__c": "SVMXC__Available_Services__c (Name)",
				"Unit_Type__c":        "GEHCS_Unit_Type__c",
			},
			DefaultValues: map[string]string{
				"Display_Entitlement__c": "TRUE",
			},
		}
	case domain.TemplateLaborPricing:
		return domain.TemplateConfig{
			ColumnMapping: map[string]string{
				"Service_Offering__c": "SVMXC__Available_Services__c (Name)",
				"Unit_Type__c":        "GEHCS_Unit_Type__c",
			},
			DefaultValues: map[string]string{},
		}
	default:
		return domain.TemplateConfig{}
	}
}

// Rules returns the validation rule set for a template type. Types without
// rules yield an empty set.
func Rules(t domain.TemplateType) domain.RuleSet {
	switch t {
	case domain.TemplateServiceContractDLT:
		return domain.RuleSet{
			Required: []string{"Temp ID", "SVMXC__End_Date__c", "SVMXC__Start_Date__c"},
			Unique:   []string{"Temp ID"},
			Types:    map[string]domain.FieldType{"Temp ID": domain.FieldTypeString},
			Values: map[string]string{
				"SVMXC__Active__c":  "TRUE",
				"HCS_Status__c":     "Draft",
				"HCS_Related_To__c": "Service Contract",
			},
		}
	case domain.TemplateServicePlan:
		return domain.RuleSet{
			Required: []string{"Name"},
			Unique:   []string{"Name"},
			Types:    map[string]domain.FieldType{"Name": domain.FieldTypeString},
			Values:   map[string]string{"SVMXC__Active__c": "TRUE"},
		}
	case domain.TemplateServiceOffering:
		return domain.RuleSet{
			Required: []string{"Temp ID"},
			Unique:   []string{"Temp ID"},
			Types:    map[string]domain.FieldType{"Temp ID": domain.FieldTypeString},
			Values:   map[string]string{"Billing_Type__c": "Non-Billable"},
		}
	case domain.TemplatePartsPricing:
		return domain.RuleSet{
			Required: []string{"Service_Offering__c", "Pricing_Type__c"},
			Unique:   []string{"Service_Offering__c"},
			Types: map[string]domain.FieldType{
				"Service_Offering__c": domain.FieldTypeString,
				"Pricing_Type__c":     domain.FieldTypeString,
			},
			Values: map[string]string{"Display_Entitlement__c": "TRUE"},
		}
	case domain.TemplateLaborPricing:
		return domain.RuleSet{
			Required: []string{"Service_Offering__c"},
			Unique:   []string{"Service_Offering__c"},
			Types:    map[string]domain.FieldType{"Service_Offering__c": domain.FieldTypeString},
		}
	default:
		return domain.RuleSet{}
	}
}

// RuleBearingTypes lists the template types that have validation rules, in
// enumeration order.
func RuleBearingTypes() []domain.TemplateType {
	var out []domain.TemplateType
	for _, t := range domain.AllTemplateTypes() {
		if !Rules(t).IsZero() {
			out = append(out, t)
		}
	}
	return out
}

// PicklistColumns lists the default-value columns of a template type, the
// candidates for a bulk picklist overwrite, in stable order.
func PicklistColumns(t domain.TemplateType) []string {
	cfg := Config(t)
	cols := make([]string, 0, len(cfg.DefaultValues))
	for col := range cfg.DefaultValues {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
