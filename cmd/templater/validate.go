package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/tabular"
	"github.com/sureshguna14/template-automation/internal/validation"
)

var (
	validateTemplate string
	validateTypes    []string
	validateSource   string
	validateSheet    string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a populated template and write its summary sheet",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateTemplate, "template", "", "path to the populated template workbook")
	validateCmd.Flags().StringSliceVar(&validateTypes, "type", nil, "template types to validate (defaults to all rule-bearing types)")
	validateCmd.Flags().StringVar(&validateSource, "source", "", "optional source data file for default cross-checks")
	validateCmd.Flags().StringVar(&validateSheet, "sheet", "", "template sheet name (defaults to the configured sheet)")
	validateCmd.MarkFlagRequired("template")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var templates []domain.TemplateType
	for _, raw := range validateTypes {
		t, err := domain.ParseTemplateType(raw)
		if err != nil {
			return err
		}
		templates = append(templates, t)
	}

	req := validation.Request{
		TemplatePath: validateTemplate,
		SheetName:    validateSheet,
		Templates:    templates,
	}
	if req.SheetName == "" {
		req.SheetName = cfg.DefaultSheet
	}

	if validateSource != "" {
		source, err := tabular.ReadSource(validateSource)
		if err != nil {
			return fmt.Errorf("read source data: %w", err)
		}
		req.Source = &source
	}

	summary := validation.NewEngine(logger).Validate(context.Background(), req)
	return printJSON(summary)
}
