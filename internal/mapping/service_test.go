package mapping

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/tabular"
)

func writeSheet(t *testing.T, name string, headers []string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for c, col := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, col))
	}
	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", name, cell))
		}
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestUpdateAccountLocationAnnotatesStatuses(t *testing.T) {
	sourcePath := writeSheet(t, "source.xlsx",
		[]string{"Account", "Ship_to_check", "Bill_to_check"},
		[][]string{
			{"Acme", "yes", "no"},
			{"Globex", "Primary", "YES"},
			{"Initech", "no", "maybe"},
		})
	mappingPath := writeSheet(t, "mapping.xlsx",
		[]string{"Account"},
		[][]string{{"Acme"}})

	service := NewService(nil)
	require.True(t, service.Update(context.Background(), domain.MappingAccountLocation, sourcePath, mappingPath))

	annotated, _, err := tabular.ReadWorkbookTable(sourcePath)
	require.NoError(t, err)
	require.True(t, annotated.HasColumn("Ship_to_validate"))
	require.True(t, annotated.HasColumn("Bill_to_validate"))
	require.Len(t, annotated.Rows, 3)

	require.Equal(t, "Available", annotated.Rows[0].Get("Ship_to_validate").Display())
	require.Equal(t, "Not Available", annotated.Rows[0].Get("Bill_to_validate").Display())
	require.Equal(t, "Available", annotated.Rows[1].Get("Ship_to_validate").Display())
	require.Equal(t, "Available", annotated.Rows[1].Get("Bill_to_validate").Display())
	require.Equal(t, "Not Available", annotated.Rows[2].Get("Ship_to_validate").Display())
	require.Equal(t, "Not Available", annotated.Rows[2].Get("Bill_to_validate").Display())
}

func TestUpdateAccountLocationMissingCheckColumns(t *testing.T) {
	sourcePath := writeSheet(t, "source.xlsx",
		[]string{"Account"},
		[][]string{{"Acme"}})
	mappingPath := writeSheet(t, "mapping.xlsx",
		[]string{"Account"},
		[][]string{{"Acme"}})

	service := NewService(nil)
	require.False(t, service.Update(context.Background(), domain.MappingAccountLocation, sourcePath, mappingPath))
}

func TestUpdateInstallProductTagsMembership(t *testing.T) {
	sourcePath := writeSheet(t, "source.xlsx",
		[]string{"Asset#", "Site"},
		[][]string{
			{"A-1", "North"},
			{"A-2", "South"},
		})
	mappingPath := writeSheet(t, "mapping.xlsx",
		[]string{"SVMXC__SM_External_ID__c"},
		[][]string{{"A-1"}, {"A-9"}})

	service := NewService(nil)
	require.True(t, service.Update(context.Background(), domain.MappingInstallProduct, sourcePath, mappingPath))

	annotated, _, err := tabular.ReadWorkbookTable(sourcePath)
	require.NoError(t, err)
	require.Equal(t, "Available", annotated.Rows[0].Get("Install_Product_Status").Display())
	require.Equal(t, "Not Available", annotated.Rows[1].Get("Install_Product_Status").Display())
}

func TestValidateAccountLocationCounts(t *testing.T) {
	sourcePath := writeSheet(t, "source.xlsx",
		[]string{"Ship_to_check", "Bill_to_check"},
		[][]string{
			{"yes", "no"},
			{"primary", "yes"},
			{"no", "unknown"},
		})
	mappingPath := writeSheet(t, "mapping.xlsx",
		[]string{"Account"},
		[][]string{{"Acme"}})

	service := NewService(nil)
	summary := service.ValidateAccountLocation(context.Background(), sourcePath, mappingPath)

	require.True(t, summary.Status)
	require.Equal(t, 3, summary.SourceRecords)
	require.Equal(t, 2, summary.ShipToValid)
	require.Equal(t, 1, summary.ShipToNotValid)
	require.Equal(t, 1, summary.BillToValid)
	require.Equal(t, 1, summary.BillToNotValid)
}

func TestValidateInstallProductCounts(t *testing.T) {
	sourcePath := writeSheet(t, "source.xlsx",
		[]string{"Asset#"},
		[][]string{{"A-1"}, {"A-2"}, {"A-3"}})
	mappingPath := writeSheet(t, "mapping.xlsx",
		[]string{"SVMXC__SM_External_ID__c"},
		[][]string{{"A-1"}, {"A-3"}})

	service := NewService(nil)
	summary := service.ValidateInstallProduct(context.Background(), sourcePath, mappingPath)

	require.True(t, summary.Status)
	require.Equal(t, 3, summary.SourceRecords)
	require.Equal(t, 2, summary.Matched)
	require.Equal(t, 1, summary.Unmatched)
	require.Equal(t, 2, summary.UpdatedRecords)
}

func TestValidateInstallProductMissingAssetColumn(t *testing.T) {
	sourcePath := writeSheet(t, "source.xlsx",
		[]string{"Other"},
		[][]string{{"x"}})
	mappingPath := writeSheet(t, "mapping.xlsx",
		[]string{"SVMXC__SM_External_ID__c"},
		[][]string{{"A-1"}})

	service := NewService(nil)
	summary := service.ValidateInstallProduct(context.Background(), sourcePath, mappingPath)
	require.False(t, summary.Status)
	require.Contains(t, summary.Message, "Asset#")
}
