package registry

import (
	"testing"

	"github.com/sureshguna14/template-automation/internal/domain"
)

func TestConfigCoversEveryTemplateType(t *testing.T) {
	for _, tt := range domain.AllTemplateTypes() {
		cfg := Config(tt)
		if len(cfg.ColumnMapping) == 0 && len(cfg.DefaultValues) == 0 {
			t.Fatalf("template %q has no configuration", tt)
		}
	}
}

func TestConfigUnknownTypeIsEmpty(t *testing.T) {
	cfg := Config(domain.TemplateType("bogus"))
	if len(cfg.ColumnMapping) != 0 || len(cfg.DefaultValues) != 0 {
		t.Fatalf("unknown template type should yield an empty config, got %+v", cfg)
	}
	if !Rules(domain.TemplateType("bogus")).IsZero() {
		t.Fatalf("unknown template type should yield an empty rule set")
	}
}

func TestRuleBearingTypes(t *testing.T) {
	types := RuleBearingTypes()
	want := []domain.TemplateType{
		domain.TemplateServiceContractDLT,
		domain.TemplateServicePlan,
		domain.TemplateServiceOffering,
		domain.TemplatePartsPricing,
		domain.TemplateLaborPricing,
	}
	if len(types) != len(want) {
		t.Fatalf("expected %d rule-bearing types, got %d", len(want), len(types))
	}
	for i, tt := range want {
		if types[i] != tt {
			t.Fatalf("rule-bearing type %d = %q, want %q", i, types[i], tt)
		}
	}
}

func TestRulesReferenceConfiguredDefaults(t *testing.T) {
	for _, tt := range RuleBearingTypes() {
		cfg := Config(tt)
		for col, expected := range Rules(tt).Values {
			dv, ok := cfg.DefaultValues[col]
			if !ok {
				continue
			}
			if dv != expected {
				t.Fatalf("template %q: rule value for %s (%q) disagrees with default (%q)", tt, col, expected, dv)
			}
		}
	}
}

func TestPicklistColumnsAreSorted(t *testing.T) {
	cols := PicklistColumns(domain.TemplateServicePlan)
	if len(cols) != 7 {
		t.Fatalf("expected 7 picklist columns, got %d", len(cols))
	}
	for i := 1; i < len(cols); i++ {
		if cols[i-1] >= cols[i] {
			t.Fatalf("picklist columns not sorted: %v", cols)
		}
	}
}
