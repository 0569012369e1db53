package main

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestPicklistListPrintsCandidateColumns(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"picklist", "--list", "--type", "Service Plan"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("picklist --list returned error: %v", err)
	}

	var payload struct {
		TemplateType string   `json:"templateType"`
		Columns      []string `json:"columns"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if payload.TemplateType != "Service Plan" {
		t.Fatalf("templateType = %q, want Service Plan", payload.TemplateType)
	}
	if len(payload.Columns) != 7 {
		t.Fatalf("expected 7 candidate columns, got %d: %v", len(payload.Columns), payload.Columns)
	}
	found := false
	for _, col := range payload.Columns {
		if col == "SVMXC__Active__c" {
			found = true
		}
	}
	if !found {
		t.Fatalf("candidate columns missing SVMXC__Active__c: %v", payload.Columns)
	}
}

func TestPicklistListRejectsUnknownType(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"picklist", "--list", "--type", "bogus"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected an error for an unknown template type")
	}
}
