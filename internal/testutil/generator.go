// Package testutil generates account and transaction fixtures for tests and
// benchmarks.
package testutil

import (
	"fmt"
	"strings"
)

var owners = []string{
	"Alice", "Bob", "Carol", "Dave", "Erin",
	"Frank", "Grace", "Heidi", "Ivan", "Judy",
}

// OwnerName returns a unique owner for any index: the base pool first, then
// the pool with a numeric suffix.
func OwnerName(i int) string {
	if i < len(owners) {
		return owners[i]
	}
	return fmt.Sprintf("%s%d", owners[i%len(owners)], i/len(owners))
}

// GenerateAccountsCSV builds an accounts file with numAccounts rows. Every
// balance is at least 1000 so generated batches never overdraw.
func GenerateAccountsCSV(numAccounts int) string {
	var sb strings.Builder
	sb.WriteString("owner,opening_balance\n")

	for i := 0; i < numAccounts; i++ {
		fmt.Fprintf(&sb, "%s,%d\n", OwnerName(i), 1000+(i%10)*250)
	}

	return sb.String()
}

// GenerateTransactionsCSV builds a transactions file of valid record cycles
// against GenerateAccountsCSV(numAccounts). Each cycle holds a deposit and
// withdrawal of the same amount plus one transfer in each direction, so a
// full replay returns every balance to its opening value. Every fifth cycle
// repeats its transfer's mirror record, exercising the duplicate-skip path.
func GenerateTransactionsCSV(numAccounts, cycles int) string {
	var sb strings.Builder
	sb.WriteString("owner,event,amount,other\n")

	for c := 0; c < cycles; c++ {
		owner := OwnerName(c % numAccounts)
		next := OwnerName((c + 1) % numAccounts)
		// Modulus co-prime to the owner pool keeps transfer triples distinct
		// for thousands of cycles, and below the smallest opening balance.
		amount := c%997 + 1

		fmt.Fprintf(&sb, "%s,DEPOSIT,%d,\n", owner, amount)
		fmt.Fprintf(&sb, "%s,WITHDRAW,%d,\n", owner, amount)
		fmt.Fprintf(&sb, "%s,TRANSFER_OUT,%d,%s\n", owner, amount, next)
		fmt.Fprintf(&sb, "%s,TRANSFER_OUT,%d,%s\n", next, amount, owner)

		if c%5 == 0 {
			fmt.Fprintf(&sb, "%s,TRANSFER_IN,%d,%s\n", next, amount, owner)
		}
	}

	return sb.String()
}
