package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/synth"
	"github.com/sureshguna14/template-automation/internal/tabular"
)

var (
	updateType      string
	updateTemplate  string
	updateSource    string
	updateReference string
	updateSheet     string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Populate a template workbook from exported source data",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateType, "type", "", "template type name")
	updateCmd.Flags().StringVar(&updateTemplate, "template", "", "path to the template workbook (modified in place)")
	updateCmd.Flags().StringVar(&updateSource, "source", "", "path to the source data file (.csv or .xlsx)")
	updateCmd.Flags().StringVar(&updateReference, "reference", "", "path to an optional reference data file")
	updateCmd.Flags().StringVar(&updateSheet, "sheet", "", "template sheet name (defaults to the configured sheet)")
	updateCmd.MarkFlagRequired("type")
	updateCmd.MarkFlagRequired("template")
	updateCmd.MarkFlagRequired("source")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	templateType, err := domain.ParseTemplateType(updateType)
	if err != nil {
		return err
	}

	source, err := tabular.ReadSource(updateSource)
	if err != nil {
		return fmt.Errorf("read source data: %w", err)
	}

	var reference *domain.Table
	if updateReference != "" {
		ref, err := tabular.ReadSource(updateReference)
		if err != nil {
			return fmt.Errorf("read reference data: %w", err)
		}
		reference = &ref
	}

	sheet := updateSheet
	if sheet == "" {
		sheet = cfg.DefaultSheet
	}

	result, err := synth.NewService(logger).UpdateTemplate(context.Background(), synth.Request{
		TemplateType: templateType,
		TemplatePath: updateTemplate,
		SheetName:    sheet,
		Source:       source,
		Reference:    reference,
	})
	if err != nil {
		return err
	}

	return printJSON(result)
}

func printJSON(payload any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
