package bank

import "errors"

var (
	// ErrInvalidOwner indicates an empty or blank owner name.
	ErrInvalidOwner = errors.New("owner must not be empty")
	// ErrInvalidAmount indicates an amount that is not a positive number.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds indicates a debit larger than the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownAccount indicates an owner missing from the account mapping.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrUnknownEvent indicates an operation kind outside the supported set.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrInvalidCounterparty indicates a transfer whose other side is missing
	// or cannot be resolved.
	ErrInvalidCounterparty = errors.New("invalid counterparty")
)
