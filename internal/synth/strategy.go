package synth

import (
	"errors"
	"strings"

	"github.com/sureshguna14/template-automation/internal/domain"
)

var (
	// ErrMissingNameColumn is returned when the deduplicating variant is fed
	// source data without a Name column. It is the one synthesis error that
	// surfaces to the caller instead of folding into a failed result.
	ErrMissingNameColumn = errors.New("source data must contain a Name column")

	// ErrNoQualifyingRecords is returned when a filtering variant retains no
	// rows; the operation is a no-op, not a fault.
	ErrNoQualifyingRecords = errors.New("no records qualify for this template")
)

const (
	nameColumn      = "Name"
	laborTypeColumn = "Labor_Type__c"

	partsPricingFlag = "Need parts pricing"
	laborPricingFlag = "Need labor pricing"
)

// fillContext carries what a strategy needs to fill one output record.
type fillContext struct {
	cfg    domain.TemplateConfig
	source domain.Table
	ref    *domain.Table
	rowIdx int
}

func (fc fillContext) refValue(rowIdx int, col string) domain.Value {
	if fc.ref == nil || !fc.ref.HasColumn(col) {
		return domain.BlankValue()
	}
	if rowIdx >= len(fc.ref.Rows) {
		return domain.BlankValue()
	}
	return fc.ref.Rows[rowIdx].Get(col)
}

// Strategy is one template variant's row selection, expansion, and column-fill
// precedence. Each implementation keeps its fill order explicit; validation
// depends on the exact order, so it is never shared.
type Strategy interface {
	// Filter selects the source rows to synthesize from.
	Filter(source domain.Table) ([]domain.Record, error)
	// Expand turns one retained row into one or more output rows.
	Expand(row domain.Record) []domain.Record
	// Fill shapes one expanded row to the template schema.
	Fill(headers []string, row domain.Record, fc fillContext) domain.Record
}

// StrategyFor selects the variant for a template type.
func StrategyFor(t domain.TemplateType) Strategy {
	switch t {
	case domain.TemplateServicePlan:
		return servicePlanStrategy{}
	case domain.TemplateServiceOffering:
		return serviceOfferingStrategy{}
	case domain.TemplatePartsPricing:
		return pricingStrategy{flag: partsPricingFlag}
	case domain.TemplateLaborPricing:
		return laborPricingStrategy{pricingStrategy{flag: laborPricingFlag}}
	default:
		return genericStrategy{}
	}
}

// genericStrategy maps and copies source columns first, then lets configured
// defaults overwrite any column they cover.
type genericStrategy struct{}

func (genericStrategy) Filter(source domain.Table) ([]domain.Record, error) {
	return source.Rows, nil
}

func (genericStrategy) Expand(row domain.Record) []domain.Record {
	return []domain.Record{row}
}

func (genericStrategy) Fill(headers []string, row domain.Record, fc fillContext) domain.Record {
	out := make(domain.Record, len(headers))
	for _, col := range headers {
		if src, ok := fc.cfg.ColumnMapping[col]; ok && src != "" {
			if fc.source.HasColumn(src) {
				out[col] = row.Get(src)
				continue
			}
			if fc.ref != nil && fc.ref.HasColumn(src) {
				out[col] = fc.refValue(fc.rowIdx, src)
				continue
			}
		}
		if fc.source.HasColumn(col) {
			out[col] = row.Get(col)
			continue
		}
		if fc.ref != nil && fc.ref.HasColumn(col) {
			out[col] = fc.refValue(fc.rowIdx, col)
		}
	}
	// Defaults win over anything the source provided.
	for _, col := range headers {
		if dv, ok := fc.cfg.DefaultValues[col]; ok {
			out[col] = domain.ParseValue(dv)
		}
	}
	return out
}

// servicePlanStrategy deduplicates by Name and applies per-record default
// overrides; defaults beat same-named source columns.
type servicePlanStrategy struct{}

func (servicePlanStrategy) Filter(source domain.Table) ([]domain.Record, error) {
	if !source.HasColumn(nameColumn) {
		return nil, ErrMissingNameColumn
	}
	seen := make(map[string]struct{}, len(source.Rows))
	var kept []domain.Record
	for _, row := range source.Rows {
		key := row.Get(nameColumn).Display()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	return kept, nil
}

func (servicePlanStrategy) Expand(row domain.Record) []domain.Record {
	return []domain.Record{row}
}

func (servicePlanStrategy) Fill(headers []string, row domain.Record, fc fillContext) domain.Record {
	defaults := recordDefaults(fc.cfg.DefaultValues, row)
	out := make(domain.Record, len(headers))
	for _, col := range headers {
		if dv, ok := defaults[col]; ok {
			out[col] = domain.ParseValue(dv)
			continue
		}
		if fc.source.HasColumn(col) {
			out[col] = row.Get(col)
		}
	}
	return out
}

// recordDefaults copies the configured defaults and layers the warranty
// override set on top when the record's Name contains "warranty".
func recordDefaults(configured map[string]string, row domain.Record) map[string]string {
	defaults := make(map[string]string, len(configured)+5)
	for k, v := range configured {
		defaults[k] = v
	}
	name := row.Get(nameColumn).Display()
	if strings.Contains(strings.ToLower(name), "warranty") {
		defaults["GS_Rev_Rec_Method__c"] = "Warranty"
		defaults["HCS_Related_To__c"] = "Warranty"
		defaults["Account_Type__c"] = "Customer"
		defaults["Duration_months__c"] = "12"
		defaults["Start_Date__c"] = "eOM Warranty Start Date"
	}
	return defaults
}

// serviceOfferingStrategy fills mapped source columns first, then direct
// source columns, then defaults, then reference columns aligned by row index.
type serviceOfferingStrategy struct{}

func (serviceOfferingStrategy) Filter(source domain.Table) ([]domain.Record, error) {
	return source.Rows, nil
}

func (serviceOfferingStrategy) Expand(row domain.Record) []domain.Record {
	return []domain.Record{row}
}

func (serviceOfferingStrategy) Fill(headers []string, row domain.Record, fc fillContext) domain.Record {
	out := make(domain.Record, len(headers))
	for _, col := range headers {
		if src, ok := fc.cfg.ColumnMapping[col]; ok && fc.source.HasColumn(src) {
			out[col] = row.Get(src)
			continue
		}
		if fc.source.HasColumn(col) {
			out[col] = row.Get(col)
			continue
		}
		if dv, ok := fc.cfg.DefaultValues[col]; ok {
			out[col] = domain.ParseValue(dv)
			continue
		}
		if fc.ref != nil && fc.ref.HasColumn(col) {
			out[col] = fc.refValue(fc.rowIdx, col)
		}
	}
	return out
}

// pricingStrategy retains rows whose flag column equals "yes" and fills direct
// source columns first, then mapped columns, then defaults.
type pricingStrategy struct {
	flag string
}

func (p pricingStrategy) Filter(source domain.Table) ([]domain.Record, error) {
	var kept []domain.Record
	if source.HasColumn(p.flag) {
		for _, row := range source.Rows {
			if strings.EqualFold(strings.TrimSpace(row.Get(p.flag).Display()), "yes") {
				kept = append(kept, row)
			}
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoQualifyingRecords
	}
	return kept, nil
}

func (pricingStrategy) Expand(row domain.Record) []domain.Record {
	return []domain.Record{row}
}

func (pricingStrategy) Fill(headers []string, row domain.Record, fc fillContext) domain.Record {
	out := make(domain.Record, len(headers))
	for _, col := range headers {
		if fc.source.HasColumn(col) {
			out[col] = row.Get(col)
			continue
		}
		if src, ok := fc.cfg.ColumnMapping[col]; ok && fc.source.HasColumn(src) {
			out[col] = row.Get(src)
			continue
		}
		if dv, ok := fc.cfg.DefaultValues[col]; ok {
			out[col] = domain.ParseValue(dv)
		}
	}
	return out
}

// laborPricingStrategy expands each retained row into a Labor and a Travel
// record; the injected labor type wins over every other fill source.
type laborPricingStrategy struct {
	pricingStrategy
}

func (laborPricingStrategy) Expand(row domain.Record) []domain.Record {
	labor := row.Clone()
	labor[laborTypeColumn] = domain.StringValue("Labor")
	travel := row.Clone()
	travel[laborTypeColumn] = domain.StringValue("Travel")
	return []domain.Record{labor, travel}
}

func (l laborPricingStrategy) Fill(headers []string, row domain.Record, fc fillContext) domain.Record {
	out := make(domain.Record, len(headers))
	for _, col := range headers {
		if col == laborTypeColumn {
			out[col] = row.Get(col)
			continue
		}
		if fc.source.HasColumn(col) {
			out[col] = row.Get(col)
			continue
		}
		if src, ok := fc.cfg.ColumnMapping[col]; ok && fc.source.HasColumn(src) {
			out[col] = row.Get(src)
			continue
		}
		if dv, ok := fc.cfg.DefaultValues[col]; ok {
			out[col] = domain.ParseValue(dv)
		}
	}
	return out
}
