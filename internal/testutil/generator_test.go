package testutil

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Hariharan-afk/bankledger/internal/bank"
	"github.com/Hariharan-afk/bankledger/internal/batch"
	"github.com/Hariharan-afk/bankledger/internal/csvio"
)

func TestOwnerName_UniquePerIndex(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := OwnerName(i)
		if seen[name] {
			t.Errorf("OwnerName(%d) = %q repeats an earlier name", i, name)
		}
		seen[name] = true
	}
}

func TestGenerateAccountsCSV_ProducesLoadableAccounts(t *testing.T) {
	content := GenerateAccountsCSV(25)
	if !strings.HasPrefix(content, "owner,opening_balance\n") {
		t.Error("Generated accounts file is missing its header")
	}

	accounts, err := csvio.LoadAccounts(strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 25 {
		t.Errorf("Expected 25 accounts, got %d", len(accounts))
	}
}

func TestGenerateTransactionsCSV_ReplaysCleanly(t *testing.T) {
	accounts, err := csvio.LoadAccounts(strings.NewReader(GenerateAccountsCSV(10)))
	if err != nil {
		t.Fatal(err)
	}
	byOwner, err := bank.ByOwner(accounts)
	if err != nil {
		t.Fatal(err)
	}

	records, err := csvio.ReadRecords(strings.NewReader(GenerateTransactionsCSV(10, 200)))
	if err != nil {
		t.Fatal(err)
	}
	if err := batch.Apply(byOwner, records); err != nil {
		t.Fatal(err)
	}

	// Each cycle nets to zero, so every balance ends at its opening value.
	for i, account := range accounts {
		opening := decimal.NewFromInt(int64(1000 + (i%10)*250))
		if !account.Balance().Equal(opening) {
			t.Errorf("%s: balance %s, want %s", account.Owner(), account.Balance(), opening)
		}
	}
}
