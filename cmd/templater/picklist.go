package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/picklist"
	"github.com/sureshguna14/template-automation/internal/registry"
)

var (
	picklistTemplate string
	picklistSheet    string
	picklistValues   string
	picklistType     string
	picklistList     bool
)

var picklistCmd = &cobra.Command{
	Use:   "picklist",
	Short: "Overwrite picklist columns across all data rows",
	Long: `Overwrites every data-row cell of the named columns with a single
value each. With --list the candidate columns for a template type are
printed instead and no workbook is touched.`,
	RunE: runPicklist,
}

func init() {
	picklistCmd.Flags().StringVar(&picklistTemplate, "template", "", "path to the template workbook (modified in place)")
	picklistCmd.Flags().StringVar(&picklistSheet, "sheet", "", "template sheet name (defaults to the configured sheet)")
	picklistCmd.Flags().StringVar(&picklistValues, "values", "", `column-to-value JSON object, e.g. '{"SVMXC__Active__c":"TRUE"}'`)
	picklistCmd.Flags().StringVar(&picklistType, "type", "", "template type whose candidate columns to list")
	picklistCmd.Flags().BoolVar(&picklistList, "list", false, "print the picklist candidate columns for --type")
}

func runPicklist(cmd *cobra.Command, args []string) error {
	if picklistList {
		templateType, err := domain.ParseTemplateType(picklistType)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"templateType": string(templateType),
			"columns":      registry.PicklistColumns(templateType),
		})
	}

	if picklistTemplate == "" || picklistValues == "" {
		return fmt.Errorf("--template and --values are required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var values map[string]string
	if err := json.Unmarshal([]byte(picklistValues), &values); err != nil {
		return fmt.Errorf("parse picklist values: %w", err)
	}

	sheet := picklistSheet
	if sheet == "" {
		sheet = cfg.DefaultSheet
	}

	if !picklist.NewService(logger).Apply(picklistTemplate, sheet, values) {
		return fmt.Errorf("picklist update failed for %s", picklistTemplate)
	}
	return printJSON(map[string]any{"status": true, "template": picklistTemplate})
}
