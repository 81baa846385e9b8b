package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/tirasundara/dsa-reconciliation/internal/repository"
)

func TestCSVTableRepository_Load(t *testing.T) {
	repo := repository.NewCSVTableRepository("../../test/testdata/deposit.csv", domain.RoleDeposit, nil)

	table, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if table.Name != "deposit" {
		t.Errorf("Expected table name 'deposit', got '%s'", table.Name)
	}

	if table.Len() != 1 {
		t.Fatalf("Expected 1 row, got %d", table.Len())
	}

	if got := table.Value(table.Rows[0], "Amount"); got != "1,000" {
		t.Errorf("Expected quoted amount '1,000', got '%s'", got)
	}

	if got := table.Value(table.Rows[0], "Created By"); got != "7777777" {
		t.Errorf("Expected Created By '7777777', got '%s'", got)
	}
}

func TestCSVTableRepository_RaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.csv")
	content := " Created By ,Amount,Amount\n7771234\n7771235,10,20,30\n\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	table, err := repository.NewCSVTableRepository(path, domain.RoleScan, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expectedColumns := []string{"Created By", "Amount", "Amount.1"}
	for i, c := range expectedColumns {
		if table.Columns[i] != c {
			t.Errorf("Expected column %d to be '%s', got '%s'", i, c, table.Columns[i])
		}
	}

	if table.Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", table.Len())
	}

	for i, row := range table.Rows {
		if len(row) != 3 {
			t.Errorf("Expected row %d to have 3 cells, got %d", i, len(row))
		}
	}

	if got := table.Value(table.Rows[1], "Amount.1"); got != "20" {
		t.Errorf("Expected second amount '20', got '%s'", got)
	}
}

func TestLoadInputs(t *testing.T) {
	paths := map[domain.Role]string{
		domain.RoleOnboarding: "../../test/testdata/onboarding.csv",
		domain.RoleDeposit:    "../../test/testdata/deposit.csv",
		domain.RoleTicket:     "../../test/testdata/ticket.csv",
		domain.RoleScan:       "../../test/testdata/scan.csv",
	}

	inputs, err := repository.LoadInputs(context.Background(), repository.NewRepositories(paths)...)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := inputs.Validate(); err != nil {
		t.Errorf("Expected all mandatory inputs, got %v", err)
	}

	if inputs.Conversion != nil {
		t.Errorf("Expected no conversion table")
	}

	if inputs.Scan.Len() != 0 {
		t.Errorf("Expected empty scan table, got %d rows", inputs.Scan.Len())
	}
}

func TestLoadInputs_MissingFile(t *testing.T) {
	paths := map[domain.Role]string{
		domain.RoleOnboarding: "../../test/testdata/onboarding.csv",
		domain.RoleDeposit:    "../../test/testdata/does-not-exist.csv",
	}

	_, err := repository.LoadInputs(context.Background(), repository.NewRepositories(paths)...)
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}
