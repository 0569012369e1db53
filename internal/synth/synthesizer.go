// Package synth builds template output records from source data: one shared
// column-fill and Temp ID backfill driver composed with per-template
// strategies for filtering, expansion, and fill precedence.
package synth

import (
	"github.com/sureshguna14/template-automation/internal/domain"
)

// Output is the synthesized batch for one template update.
type Output struct {
	// Records are the rows to write into the template's data region.
	Records []domain.Record
	// SourceCount is the number of retained source rows that produced
	// Records; expansion can make len(Records) larger.
	SourceCount int
}

// Synthesize shapes source rows to the template schema using the strategy's
// precedence, then backfills Temp IDs from the sequence seed.
func Synthesize(headers []string, source domain.Table, cfg domain.TemplateConfig, ref *domain.Table, strat Strategy) (Output, error) {
	retained, err := strat.Filter(source)
	if err != nil {
		return Output{}, err
	}

	out := Output{SourceCount: len(retained)}
	for i, row := range retained {
		fc := fillContext{cfg: cfg, source: source, ref: ref, rowIdx: i}
		for _, variant := range strat.Expand(row) {
			out.Records = append(out.Records, strat.Fill(headers, variant, fc))
		}
	}

	backfillTempIDs(out.Records, headers, source.HasColumn(domain.TempIDColumn))
	return out, nil
}

// backfillTempIDs assigns sequential identifiers starting at the seed. When
// the source batch has no identifier column every record is assigned; when it
// does, only blank positions are filled and existing identifiers survive.
func backfillTempIDs(records []domain.Record, headers []string, sourceHasID bool) {
	if !containsColumn(headers, domain.TempIDColumn) {
		return
	}
	next := domain.TempIDSeed
	for _, record := range records {
		if sourceHasID && !record.Get(domain.TempIDColumn).IsBlank() {
			continue
		}
		record[domain.TempIDColumn] = domain.NumberValue(float64(next))
		next++
	}
}

func containsColumn(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}
