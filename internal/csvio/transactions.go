package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Hariharan-afk/bankledger/internal/bank"
	"github.com/Hariharan-afk/bankledger/internal/batch"
)

// ReadRecords reads the transaction file (owner, event, amount, other) into
// batch records, preserving file order. Fields stay text; domain validation
// happens at apply time.
func ReadRecords(src io.Reader) ([]batch.Record, error) {
	return ReadRecordsWithDelimiter(src, 0)
}

// ReadRecordsWithDelimiter is ReadRecords with a forced delimiter instead of
// sniffing.
func ReadRecordsWithDelimiter(src io.Reader, comma rune) ([]batch.Record, error) {
	t, err := readTable(src, comma)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumns(colOwner, colEvent, colAmount, colOther); err != nil {
		return nil, err
	}

	records := make([]batch.Record, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, batch.Record{
			Owner:  t.cell(row, colOwner),
			Event:  t.cell(row, colEvent),
			Amount: t.cell(row, colAmount),
			Other:  t.cell(row, colOther),
		})
	}
	return records, nil
}

// ReadRecordsFile opens path and reads batch records from it. A zero comma
// means sniff.
func ReadRecordsFile(path string, comma rune) ([]batch.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadRecordsWithDelimiter(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// WriteTransactions writes the combined non-opening ledger rows of all
// accounts (owner, event, amount, other), grouped per account in the order
// given, each account's rows in ledger order. Replaying the output against
// freshly opened accounts reproduces the balances.
func WriteTransactions(dst io.Writer, accounts []*bank.Account) error {
	w := csv.NewWriter(dst)
	if err := w.Write([]string{colOwner, colEvent, colAmount, colOther}); err != nil {
		return err
	}
	for _, account := range accounts {
		for _, entry := range account.Statement() {
			if entry.Kind == bank.KindOpen {
				continue
			}
			row := []string{account.Owner(), string(entry.Kind), entry.Amount.String(), entry.Other}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

// WriteTransactionsFile writes the combined transaction export to path.
func WriteTransactionsFile(path string, accounts []*bank.Account) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteTransactions(w, accounts)
	})
}

// WriteLedger writes one account's non-opening ledger rows (event, amount,
// other). The opening balance lives in the account file, not here.
func WriteLedger(dst io.Writer, account *bank.Account) error {
	w := csv.NewWriter(dst)
	if err := w.Write([]string{colEvent, colAmount, colOther}); err != nil {
		return err
	}
	for _, entry := range account.Statement() {
		if entry.Kind == bank.KindOpen {
			continue
		}
		if err := w.Write([]string{string(entry.Kind), entry.Amount.String(), entry.Other}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteLedgerFile writes one account's ledger export to path.
func WriteLedgerFile(path string, account *bank.Account) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteLedger(w, account)
	})
}
