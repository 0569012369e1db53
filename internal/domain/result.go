package domain

import "github.com/google/uuid"

// UpdateResult reports the outcome of one template update operation.
type UpdateResult struct {
	RunID       uuid.UUID `json:"runId"`
	Status      bool      `json:"status"`
	RecordCount int       `json:"recordCount"`
	Error       string    `json:"error,omitempty"`
}

// Issue is a single validation finding attributed to one row and column.
type Issue struct {
	TemplateName string `json:"templateName"`
	RowIndex     int    `json:"rowIndex"`
	TempID       string `json:"tempId"`
	ColumnName   string `json:"columnName"`
	Message      string `json:"message"`
}

// ValidationSummary aggregates one validation run.
type ValidationSummary struct {
	RunID                uuid.UUID `json:"runId"`
	TotalRecords         int       `json:"totalRecords"`
	DuplicateTempIDCount int       `json:"duplicateTempIdCount"`
	DefaultMismatchCount int       `json:"defaultMismatchCount"`
	ValidationPassed     bool      `json:"validationPassed"`
	Issues               []Issue   `json:"issues"`
}

// AccountLocationSummary reports the count-only account/location checks.
type AccountLocationSummary struct {
	Status         bool   `json:"status"`
	Message        string `json:"message"`
	SourceRecords  int    `json:"sourceRecords"`
	BillToValid    int    `json:"billToValidCount"`
	BillToNotValid int    `json:"billToNotValidCount"`
	ShipToValid    int    `json:"shipToValidCount"`
	ShipToNotValid int    `json:"shipToNotValidCount"`
	UpdatedRecords int    `json:"updatedRecords"`
}

// InstallProductSummary reports the count-only install-product checks.
type InstallProductSummary struct {
	Status         bool   `json:"status"`
	Message        string `json:"message"`
	SourceRecords  int    `json:"sourceRecords"`
	Matched        int    `json:"matchedProducts"`
	Unmatched      int    `json:"unmatchedProducts"`
	UpdatedRecords int    `json:"updatedRecords"`
}
