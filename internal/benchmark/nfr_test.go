package benchmark

import (
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/Hariharan-afk/bankledger/internal/bank"
	"github.com/Hariharan-afk/bankledger/internal/batch"
	"github.com/Hariharan-afk/bankledger/internal/csvio"
	"github.com/Hariharan-afk/bankledger/internal/testutil"
)

func loadFixtures(t *testing.T, numAccounts, cycles int) ([]*bank.Account, map[string]*bank.Account, []batch.Record) {
	t.Helper()

	accounts, err := csvio.LoadAccounts(strings.NewReader(testutil.GenerateAccountsCSV(numAccounts)))
	if err != nil {
		t.Fatal(err)
	}
	byOwner, err := bank.ByOwner(accounts)
	if err != nil {
		t.Fatal(err)
	}
	records, err := csvio.ReadRecords(strings.NewReader(testutil.GenerateTransactionsCSV(numAccounts, cycles)))
	if err != nil {
		t.Fatal(err)
	}
	return accounts, byOwner, records
}

func TestNFR_1_1_ReadLatency(t *testing.T) {
	content := testutil.GenerateTransactionsCSV(10, 2500)

	start := time.Now()
	records, err := csvio.ReadRecords(strings.NewReader(content))
	duration := time.Since(start)
	if err != nil {
		t.Fatal(err)
	}

	if duration >= 500*time.Millisecond {
		t.Errorf("NFR-1.1: Reading %d records should be < 500ms, got %v", len(records), duration)
	} else {
		t.Logf("NFR-1.1 PASS: Reading %d records took %v (target: < 500ms)", len(records), duration)
	}
}

func TestNFR_1_2_ApplyLatency(t *testing.T) {
	_, byOwner, records := loadFixtures(t, 10, 2500)

	start := time.Now()
	err := batch.Apply(byOwner, records)
	duration := time.Since(start)
	if err != nil {
		t.Fatal(err)
	}

	if duration >= 500*time.Millisecond {
		t.Errorf("NFR-1.2: Applying %d records should be < 500ms, got %v", len(records), duration)
	} else {
		t.Logf("NFR-1.2 PASS: Applying %d records took %v (target: < 500ms)", len(records), duration)
	}
}

func TestNFR_1_3_ExportLatency(t *testing.T) {
	accounts, byOwner, records := loadFixtures(t, 10, 2500)
	if err := batch.Apply(byOwner, records); err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	err := csvio.WriteTransactions(io.Discard, accounts)
	duration := time.Since(start)
	if err != nil {
		t.Fatal(err)
	}

	if duration >= 500*time.Millisecond {
		t.Errorf("NFR-1.3: Exporting should be < 500ms, got %v", duration)
	} else {
		t.Logf("NFR-1.3 PASS: Exporting took %v (target: < 500ms)", duration)
	}
}

func TestNFR_1_4_MemoryUsage(t *testing.T) {
	runtime.GC()
	var m1 runtime.MemStats
	runtime.ReadMemStats(&m1)

	accounts, byOwner, records := loadFixtures(t, 100, 25000)
	if err := batch.Apply(byOwner, records); err != nil {
		t.Fatal(err)
	}

	entries := 0
	for _, account := range accounts {
		entries += len(account.Statement())
	}

	var m2 runtime.MemStats
	runtime.ReadMemStats(&m2)

	usedBytes := m2.HeapAlloc - m1.HeapAlloc
	usedMB := usedBytes / (1024 * 1024)

	t.Logf("Heap: before=%dMB, after=%dMB, delta=%dMB (%d bytes)",
		m1.HeapAlloc/(1024*1024), m2.HeapAlloc/(1024*1024), usedMB, usedBytes)
	t.Logf("Accounts: %d, Records: %d, Ledger entries: %d",
		len(accounts), len(records), entries)

	if usedMB >= 200 {
		t.Errorf("NFR-1.4: Memory usage should be < 200MB, got %dMB", usedMB)
	} else {
		t.Logf("NFR-1.4 PASS: Memory usage is %dMB (target: < 200MB)", usedMB)
	}
}
