package synth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/registry"
	"github.com/sureshguna14/template-automation/internal/tabular"
)

// Service runs template update operations against workbook files.
type Service struct {
	logger *zap.Logger
}

// NewService creates a template update service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Request describes one template update.
type Request struct {
	TemplateType domain.TemplateType
	TemplatePath string
	SheetName    string
	Source       domain.Table
	Reference    *domain.Table
}

// UpdateTemplate synthesizes output rows and overlays them into the
// template's data region. Faults fold into a failed result; only
// ErrMissingNameColumn is returned as an error.
func (s *Service) UpdateTemplate(ctx context.Context, req Request) (domain.UpdateResult, error) {
	runID := uuid.New()
	result := domain.UpdateResult{RunID: runID}

	sheet := req.SheetName
	if sheet == "" {
		sheet = domain.DefaultSheetName
	}

	logger := s.logger.With(
		zap.String("run_id", runID.String()),
		zap.String("template_type", string(req.TemplateType)),
		zap.String("sheet", sheet),
	)

	cells, err := tabular.ReadHeaderCells(req.TemplatePath, sheet, domain.TemplateHeaderRow)
	if err != nil {
		logger.Error("read template schema", zap.Error(err))
		result.Error = err.Error()
		return result, nil
	}
	headers := tabular.HeaderNames(cells)

	cfg := registry.Config(req.TemplateType)
	strat := StrategyFor(req.TemplateType)

	out, err := Synthesize(headers, req.Source, cfg, req.Reference, strat)
	if err != nil {
		if errors.Is(err, ErrMissingNameColumn) {
			logger.Error("source data missing Name column")
			result.Error = err.Error()
			return result, err
		}
		if errors.Is(err, ErrNoQualifyingRecords) {
			logger.Warn("no qualifying records, skipping update")
		} else {
			logger.Error("synthesize records", zap.Error(err))
		}
		result.Error = err.Error()
		return result, nil
	}

	if err := tabular.OverlayRows(req.TemplatePath, sheet, domain.TemplateDataRow, cells, out.Records); err != nil {
		logger.Error("write template rows", zap.Error(err))
		result.Error = err.Error()
		return result, nil
	}

	logger.Info("template updated", zap.Int("records", out.SourceCount), zap.Int("rows_written", len(out.Records)))
	result.Status = true
	result.RecordCount = out.SourceCount
	return result, nil
}
