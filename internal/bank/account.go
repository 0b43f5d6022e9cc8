// Package bank holds the account and ledger domain model: named money
// accounts whose every balance change is recorded in an append-only ledger.
package bank

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a named money account with a cached balance and an append-only
// ledger of every balance-affecting event. The first ledger entry is always
// the OPEN record fixing the starting balance; history is never rewritten.
type Account struct {
	owner   string
	balance decimal.Decimal
	ledger  []Entry
}

// Open creates an account for owner with the given opening balance and
// records the opening entry.
func Open(owner string, opening decimal.Decimal) (*Account, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrInvalidOwner
	}
	if opening.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance %s", ErrInvalidAmount, opening)
	}
	return &Account{
		owner:   owner,
		balance: opening,
		ledger:  []Entry{{Kind: KindOpen, Amount: opening}},
	}, nil
}

// Owner returns the immutable owner name.
func (a *Account) Owner() string {
	return a.owner
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit adds amount to the balance and records a DEPOSIT entry.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	a.credit(amount)
	a.ledger = append(a.ledger, Entry{Kind: KindDeposit, Amount: amount})
	return nil
}

// Withdraw removes amount from the balance and records a WITHDRAW entry.
// The balance can never go negative; an over-large amount fails with
// ErrInsufficientFunds and leaves the account untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.debit(amount); err != nil {
		return err
	}
	a.ledger = append(a.ledger, Entry{Kind: KindWithdraw, Amount: amount})
	return nil
}

// TransferTo moves amount from a to other as one unit: both balances change
// and exactly two mirror entries are recorded, TRANSFER_OUT on the sender
// and TRANSFER_IN on the receiver. Validation failures (bad amount,
// insufficient funds, nil receiver) leave both accounts untouched.
func (a *Account) TransferTo(other *Account, amount decimal.Decimal) error {
	if other == nil {
		return fmt.Errorf("%w: transfer needs a receiving account", ErrInvalidCounterparty)
	}
	if err := a.debit(amount); err != nil {
		return err
	}
	other.credit(amount)
	a.ledger = append(a.ledger, Entry{Kind: KindTransferOut, Amount: amount, Other: other.owner})
	other.ledger = append(other.ledger, Entry{Kind: KindTransferIn, Amount: amount, Other: a.owner})
	return nil
}

// Statement returns the full ledger in append order. The result is a copy;
// mutating it does not affect the account history.
func (a *Account) Statement() []Entry {
	out := make([]Entry, len(a.ledger))
	copy(out, a.ledger)
	return out
}

// ByOwner builds the owner-to-account mapping the applier consumes.
// Owner names must be unique; a duplicate is an error.
func ByOwner(accounts []*Account) (map[string]*Account, error) {
	m := make(map[string]*Account, len(accounts))
	for _, a := range accounts {
		if _, ok := m[a.owner]; ok {
			return nil, fmt.Errorf("duplicate owner %q", a.owner)
		}
		m[a.owner] = a
	}
	return m, nil
}

func (a *Account) credit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

func (a *Account) debit(amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: %s exceeds balance %s of %s", ErrInsufficientFunds, amount, a.balance, a.owner)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	return nil
}
