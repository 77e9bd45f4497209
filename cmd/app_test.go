package cmd

import (
	"testing"

	finances "github.com/Gu-Fernandes/finances-sub000"
)

func TestParseKind(t *testing.T) {
	if _, err := parseKind("stocks"); err != nil {
		t.Errorf("parseKind(stocks): %v", err)
	}
	if _, err := parseKind("bonds"); err == nil {
		t.Error("parseKind(bonds): expected an error")
	}
}

func TestMonthOrSelected(t *testing.T) {
	store := finances.Open(finances.NewMemStorage())
	store.SetSelectedMonth(finances.MustParseMonthKey("2025-03"))

	key, err := monthOrSelected(store, "")
	if err != nil || key.String() != "2025-03" {
		t.Errorf("monthOrSelected(\"\") = %v, %v", key, err)
	}

	key, err = monthOrSelected(store, "2024-12")
	if err != nil || key.String() != "2024-12" {
		t.Errorf("monthOrSelected(2024-12) = %v, %v", key, err)
	}

	if _, err := monthOrSelected(store, "not-a-month"); err == nil {
		t.Error("expected an error for a malformed month")
	}
}
