package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/mapping"
)

var (
	mapKind    string
	mapSource  string
	mapMapping string
	mapCheck   bool
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Cross-reference source records against a mapping workbook",
	Long: `Annotates the source workbook with availability or install-product
status columns. With --check the workbook is left untouched and only
the match counts are printed.`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVar(&mapKind, "kind", "", "mapping kind: account_location or install_product")
	mapCmd.Flags().StringVar(&mapSource, "source", "", "path to the source workbook (annotated in place)")
	mapCmd.Flags().StringVar(&mapMapping, "mapping", "", "path to the mapping workbook")
	mapCmd.Flags().BoolVar(&mapCheck, "check", false, "print match counts without modifying the source")
	mapCmd.MarkFlagRequired("kind")
	mapCmd.MarkFlagRequired("source")
	mapCmd.MarkFlagRequired("mapping")
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	kind, err := domain.ParseMappingKind(mapKind)
	if err != nil {
		return err
	}

	service := mapping.NewService(logger)
	ctx := context.Background()

	if mapCheck {
		switch kind {
		case domain.MappingAccountLocation:
			return printJSON(service.ValidateAccountLocation(ctx, mapSource, mapMapping))
		case domain.MappingInstallProduct:
			return printJSON(service.ValidateInstallProduct(ctx, mapSource, mapMapping))
		}
		return nil
	}

	if !service.Update(ctx, kind, mapSource, mapMapping) {
		return fmt.Errorf("mapping update failed for %s", mapSource)
	}
	return printJSON(map[string]any{"status": true, "source": mapSource})
}
