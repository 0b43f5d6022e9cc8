// Package batch replays ordered operation records against a set of accounts.
package batch

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Hariharan-afk/bankledger/internal/bank"
)

// Record is one external operation row. All fields arrive as text; Apply
// performs the domain validation and the numeric parse.
type Record struct {
	Owner  string
	Event  string
	Amount string
	Other  string
}

// transferKey identifies one logical transfer independent of which side's
// record carried it. Amount is the canonical decimal string, so equal values
// match however the source wrote them ("40", "40.0", "40.00").
type transferKey struct {
	sender   string
	receiver string
	amount   string
}

// Apply replays records against accounts in order, exactly once each.
// Per record the owner must be known, the event must be one of DEPOSIT,
// WITHDRAW, TRANSFER_OUT or TRANSFER_IN (case-insensitive), and the amount
// must parse; an empty amount reads as zero and is left to the account
// operation to reject.
//
// Batches normally carry both sides of every transfer. The first side seen,
// in either direction, applies the transfer; the mirrored record is then
// skipped, so replay never double-charges. A consequence worth knowing: two
// genuinely independent transfers with the same sender, receiver and amount
// in one batch collapse into one, since nothing in the record distinguishes
// them.
//
// Processing stops at the first invalid record. Accounts mutated by earlier
// records keep their changes; callers wanting all-or-nothing must snapshot
// beforehand.
func Apply(accounts map[string]*bank.Account, records []Record) error {
	applied := make(map[transferKey]bool)

	for i, rec := range records {
		if err := applyRecord(accounts, applied, rec); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return nil
}

func applyRecord(accounts map[string]*bank.Account, applied map[transferKey]bool, rec Record) error {
	acct, ok := accounts[rec.Owner]
	if !ok {
		return fmt.Errorf("%w: %q", bank.ErrUnknownAccount, rec.Owner)
	}

	event := bank.EntryKind(strings.ToUpper(rec.Event))
	switch event {
	case bank.KindDeposit, bank.KindWithdraw, bank.KindTransferOut, bank.KindTransferIn:
	default:
		return fmt.Errorf("%w: %q", bank.ErrUnknownEvent, rec.Event)
	}

	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return err
	}

	switch event {
	case bank.KindDeposit:
		return acct.Deposit(amount)
	case bank.KindWithdraw:
		return acct.Withdraw(amount)
	case bank.KindTransferOut:
		return applyTransfer(accounts, applied, acct, rec.Other, amount, false)
	default:
		return applyTransfer(accounts, applied, acct, rec.Other, amount, true)
	}
}

// applyTransfer handles both transfer record directions. incoming flags a
// TRANSFER_IN record, whose owner is the receiver.
func applyTransfer(accounts map[string]*bank.Account, applied map[transferKey]bool, acct *bank.Account, other string, amount decimal.Decimal, incoming bool) error {
	sender, receiver := acct.Owner(), other
	if incoming {
		sender, receiver = other, acct.Owner()
	}

	key := transferKey{sender: sender, receiver: receiver, amount: amount.String()}
	if applied[key] {
		// Mirror of a transfer this batch already materialized.
		return nil
	}

	counterparty, ok := accounts[other]
	if !ok {
		return fmt.Errorf("%w: %q", bank.ErrInvalidCounterparty, other)
	}

	from, to := acct, counterparty
	if incoming {
		from, to = counterparty, acct
	}
	if err := from.TransferTo(to, amount); err != nil {
		return err
	}
	applied[key] = true
	return nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", bank.ErrInvalidAmount, raw)
	}
	return amount, nil
}
