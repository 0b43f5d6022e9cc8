package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/Hariharan-afk/bankledger/internal/bank"
)

// LoadAccounts reads the account file (owner, opening_balance) and opens one
// account per row, preserving file order. Owners must be unique.
func LoadAccounts(src io.Reader) ([]*bank.Account, error) {
	return LoadAccountsWithDelimiter(src, 0)
}

// LoadAccountsWithDelimiter is LoadAccounts with a forced delimiter instead
// of sniffing.
func LoadAccountsWithDelimiter(src io.Reader, comma rune) ([]*bank.Account, error) {
	t, err := readTable(src, comma)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumns(colOwner, colOpening); err != nil {
		return nil, err
	}

	var accounts []*bank.Account
	seen := make(map[string]bool)
	for _, row := range t.rows {
		owner := t.cell(row, colOwner)
		if seen[owner] {
			return nil, fmt.Errorf("duplicate owner %q", owner)
		}

		opening, err := decimal.NewFromString(t.cell(row, colOpening))
		if err != nil {
			return nil, fmt.Errorf("owner %q: bad opening balance: %w", owner, err)
		}

		account, err := bank.Open(owner, opening)
		if err != nil {
			return nil, fmt.Errorf("owner %q: %w", owner, err)
		}

		accounts = append(accounts, account)
		seen[owner] = true
	}
	return accounts, nil
}

// LoadAccountsFile opens path and loads accounts from it. A zero comma
// means sniff.
func LoadAccountsFile(path string, comma rune) ([]*bank.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	accounts, err := LoadAccountsWithDelimiter(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return accounts, nil
}

// WriteBalances writes one owner,balance row per account, balances fixed to
// two decimal places, in the order given.
func WriteBalances(dst io.Writer, accounts []*bank.Account) error {
	w := csv.NewWriter(dst)
	if err := w.Write([]string{colOwner, colBalance}); err != nil {
		return err
	}
	for _, account := range accounts {
		if err := w.Write([]string{account.Owner(), account.Balance().StringFixed(2)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteBalancesFile writes the balance export to path.
func WriteBalancesFile(path string, accounts []*bank.Account) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteBalances(w, accounts)
	})
}
