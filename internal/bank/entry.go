package bank

import "github.com/shopspring/decimal"

// EntryKind identifies one of the closed set of ledger event kinds. The
// values double as the event names used by the tabular import/export format.
type EntryKind string

const (
	KindOpen        EntryKind = "OPEN"
	KindDeposit     EntryKind = "DEPOSIT"
	KindWithdraw    EntryKind = "WITHDRAW"
	KindTransferOut EntryKind = "TRANSFER_OUT"
	KindTransferIn  EntryKind = "TRANSFER_IN"
)

// Entry is a single immutable ledger record. Other carries the counterparty
// owner for transfer entries and is empty otherwise.
type Entry struct {
	Kind   EntryKind
	Amount decimal.Decimal
	Other  string
}

// Signed returns the entry amount with the sign it contributes to the
// balance: positive for OPEN, DEPOSIT and TRANSFER_IN, negative for
// WITHDRAW and TRANSFER_OUT. Folding Signed over a full ledger yields the
// account balance.
func (e Entry) Signed() decimal.Decimal {
	switch e.Kind {
	case KindWithdraw, KindTransferOut:
		return e.Amount.Neg()
	default:
		return e.Amount
	}
}
