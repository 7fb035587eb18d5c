package table_test

import (
	"testing"

	"github.com/go-drift/fomantic/pkg/table"
)

func TestSortTokenDefaulting(t *testing.T) {
	for i := -1; i < 5; i++ {
		if got := table.SortToken(i, nil); got != "" {
			t.Errorf("SortToken(%d, nil) = %q, want empty", i, got)
		}
	}

	selection := []table.SortingAlgorithm{table.Float}
	if got := table.SortToken(0, selection); got != "float" {
		t.Errorf("SortToken(0) = %q, want float", got)
	}
	for i := 1; i < 5; i++ {
		if got := table.SortToken(i, selection); got != "" {
			t.Errorf("SortToken(%d) = %q, want empty", i, got)
		}
	}
}

func TestSortingAlgorithmTokens(t *testing.T) {
	tests := []struct {
		algo  table.SortingAlgorithm
		token string
		name  string
	}{
		{table.Default, "", "default"},
		{table.Float, "float", "float"},
		{table.Integer, "integer", "integer"},
		{table.Date, "date", "date"},
		{table.SortingAlgorithm(42), "", ""},
	}
	for _, tt := range tests {
		if got := tt.algo.Token(); got != tt.token {
			t.Errorf("%d.Token() = %q, want %q", int(tt.algo), got, tt.token)
		}
		if tt.name == "" {
			continue
		}
		parsed, err := table.ParseSortingAlgorithm(tt.name)
		if err != nil || parsed != tt.algo {
			t.Errorf("ParseSortingAlgorithm(%q) = %v, %v", tt.name, parsed, err)
		}
	}
	if _, err := table.ParseSortingAlgorithm("natural"); err == nil {
		t.Error("ParseSortingAlgorithm(natural) succeeded")
	}
}
