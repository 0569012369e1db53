// Package mapping cross-references a source dataset against a mapping dataset
// and tags rows with an availability status, with count-only validators for
// the same checks.
package mapping

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/tabular"
)

const (
	shipToCheckColumn   = "Ship_to_check"
	billToCheckColumn   = "Bill_to_check"
	shipToStatusColumn  = "Ship_to_validate"
	billToStatusColumn  = "Bill_to_validate"
	assetColumn         = "Asset#"
	externalIDColumn    = "SVMXC__SM_External_ID__c"
	installStatusColumn = "Install_Product_Status"
	statusAvailable     = "Available"
	statusNotAvailable  = "Not Available"
)

// Service runs mapping updates and validations.
type Service struct {
	logger *zap.Logger
}

// NewService creates a mapping service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Update annotates the source workbook for the given kind and writes it back
// in place, replacing the data sheet. Returns false on any failure.
func (s *Service) Update(ctx context.Context, kind domain.MappingKind, sourcePath, mappingPath string) bool {
	var err error
	switch kind {
	case domain.MappingAccountLocation:
		err = s.updateAccountLocation(sourcePath, mappingPath)
	case domain.MappingInstallProduct:
		err = s.updateInstallProduct(sourcePath, mappingPath)
	default:
		err = fmt.Errorf("unknown mapping kind %q", kind)
	}
	if err != nil {
		s.logger.Error("mapping update failed", zap.String("kind", string(kind)), zap.Error(err))
		return false
	}
	s.logger.Info("mapping updated", zap.String("kind", string(kind)), zap.String("source", sourcePath))
	return true
}

func (s *Service) updateAccountLocation(sourcePath, mappingPath string) error {
	if _, err := tabular.ReadSource(mappingPath); err != nil {
		return fmt.Errorf("read mapping file: %w", err)
	}
	source, sheet, err := tabular.ReadWorkbookTable(sourcePath)
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}
	if !source.HasColumn(shipToCheckColumn) || !source.HasColumn(billToCheckColumn) {
		return fmt.Errorf("source file missing %s or %s column", shipToCheckColumn, billToCheckColumn)
	}

	annotated := appendColumns(source, shipToStatusColumn, billToStatusColumn)
	for _, row := range annotated.Rows {
		row[shipToStatusColumn] = availability(acceptedToken(row.Get(shipToCheckColumn)))
		row[billToStatusColumn] = availability(acceptedToken(row.Get(billToCheckColumn)))
	}
	return tabular.ReplaceSheet(sourcePath, sheet, annotated)
}

func (s *Service) updateInstallProduct(sourcePath, mappingPath string) error {
	mappingTable, err := tabular.ReadSource(mappingPath)
	if err != nil {
		return fmt.Errorf("read mapping file: %w", err)
	}
	source, sheet, err := tabular.ReadWorkbookTable(sourcePath)
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}
	if !source.HasColumn(assetColumn) {
		return fmt.Errorf("source file missing %s column", assetColumn)
	}

	valid := validProducts(mappingTable)
	annotated := appendColumns(source, installStatusColumn)
	for _, row := range annotated.Rows {
		_, member := valid[row.Get(assetColumn).Display()]
		row[installStatusColumn] = availability(member)
	}
	return tabular.ReplaceSheet(sourcePath, sheet, annotated)
}

// ValidateAccountLocation reports the categorical check counts without
// mutating the source file.
func (s *Service) ValidateAccountLocation(ctx context.Context, sourcePath, mappingPath string) domain.AccountLocationSummary {
	summary := domain.AccountLocationSummary{}
	if _, err := tabular.ReadSource(mappingPath); err != nil {
		summary.Message = fmt.Sprintf("Validation error: %v", err)
		s.logger.Error("account/location validation failed", zap.Error(err))
		return summary
	}
	source, err := tabular.ReadSource(sourcePath)
	if err != nil {
		summary.Message = fmt.Sprintf("Validation error: %v", err)
		s.logger.Error("account/location validation failed", zap.Error(err))
		return summary
	}
	if !source.HasColumn(shipToCheckColumn) || !source.HasColumn(billToCheckColumn) {
		summary.Message = fmt.Sprintf("Validation error: source file missing %s or %s column", shipToCheckColumn, billToCheckColumn)
		s.logger.Error("account/location validation failed", zap.String("message", summary.Message))
		return summary
	}

	summary.SourceRecords = len(source.Rows)
	for _, row := range source.Rows {
		if acceptedToken(row.Get(billToCheckColumn)) {
			summary.BillToValid++
		}
		if strings.EqualFold(strings.TrimSpace(row.Get(billToCheckColumn).Display()), "no") {
			summary.BillToNotValid++
		}
		if acceptedToken(row.Get(shipToCheckColumn)) {
			summary.ShipToValid++
		}
		if strings.EqualFold(strings.TrimSpace(row.Get(shipToCheckColumn).Display()), "no") {
			summary.ShipToNotValid++
		}
	}
	summary.Status = true
	summary.Message = "Validation completed."
	s.logger.Info("account/location validation completed",
		zap.Int("source_records", summary.SourceRecords),
		zap.Int("ship_to_valid", summary.ShipToValid),
		zap.Int("bill_to_valid", summary.BillToValid),
	)
	return summary
}

// ValidateInstallProduct reports identifier membership counts without
// mutating the source file.
func (s *Service) ValidateInstallProduct(ctx context.Context, sourcePath, mappingPath string) domain.InstallProductSummary {
	summary := domain.InstallProductSummary{}
	mappingTable, err := tabular.ReadSource(mappingPath)
	if err != nil {
		summary.Message = fmt.Sprintf("Validation error: %v", err)
		s.logger.Error("install product validation failed", zap.Error(err))
		return summary
	}
	source, err := tabular.ReadSource(sourcePath)
	if err != nil {
		summary.Message = fmt.Sprintf("Validation error: %v", err)
		s.logger.Error("install product validation failed", zap.Error(err))
		return summary
	}
	if !source.HasColumn(assetColumn) {
		summary.Message = fmt.Sprintf("Validation error: source file missing %s column", assetColumn)
		s.logger.Error("install product validation failed", zap.String("message", summary.Message))
		return summary
	}

	valid := validProducts(mappingTable)
	summary.SourceRecords = len(source.Rows)
	for _, row := range source.Rows {
		if _, ok := valid[row.Get(assetColumn).Display()]; ok {
			summary.Matched++
		}
	}
	summary.Unmatched = summary.SourceRecords - summary.Matched
	summary.UpdatedRecords = summary.Matched
	summary.Status = true
	summary.Message = "Install product mapping validation completed."
	s.logger.Info("install product validation completed",
		zap.Int("source_records", summary.SourceRecords),
		zap.Int("matched", summary.Matched),
	)
	return summary
}

// acceptedToken reports whether a check cell counts as available.
func acceptedToken(v domain.Value) bool {
	token := strings.ToLower(strings.TrimSpace(v.Display()))
	return token == "yes" || token == "primary"
}

func availability(ok bool) domain.Value {
	if ok {
		return domain.StringValue(statusAvailable)
	}
	return domain.StringValue(statusNotAvailable)
}

func validProducts(mappingTable domain.Table) map[string]struct{} {
	valid := make(map[string]struct{}, len(mappingTable.Rows))
	for _, row := range mappingTable.Rows {
		v := row.Get(externalIDColumn)
		if !v.IsBlank() {
			valid[v.Display()] = struct{}{}
		}
	}
	return valid
}

func appendColumns(t domain.Table, names ...string) domain.Table {
	out := domain.Table{Columns: append(append([]string{}, t.Columns...), names...)}
	out.Rows = make([]domain.Record, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = row.Clone()
	}
	return out
}
