package batch

import (
	"strconv"
	"testing"

	"github.com/Hariharan-afk/bankledger/internal/bank"
)

// generateBatch builds cycles of four records (deposit, withdraw, transfer
// out, transfer in) with a distinct amount per cycle so no transfer pair
// collapses into an earlier one.
func generateBatch(cycles int) []Record {
	records := make([]Record, 0, cycles*4)
	for i := 0; i < cycles; i++ {
		amount := strconv.Itoa(i + 1)
		records = append(records,
			Record{Owner: "Alice", Event: "DEPOSIT", Amount: amount},
			Record{Owner: "Alice", Event: "WITHDRAW", Amount: amount},
			Record{Owner: "Alice", Event: "TRANSFER_OUT", Amount: amount, Other: "Bob"},
			Record{Owner: "Bob", Event: "TRANSFER_OUT", Amount: amount, Other: "Alice"},
		)
	}
	return records
}

func benchAccounts() map[string]*bank.Account {
	alice, _ := bank.Open("Alice", mustDecimal("1000000"))
	bob, _ := bank.Open("Bob", mustDecimal("1000000"))
	return map[string]*bank.Account{"Alice": alice, "Bob": bob}
}

func BenchmarkApply_Small(b *testing.B) {
	records := generateBatch(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Apply(benchAccounts(), records); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApply_Medium(b *testing.B) {
	records := generateBatch(25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Apply(benchAccounts(), records); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApply_Large(b *testing.B) {
	records := generateBatch(250)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Apply(benchAccounts(), records); err != nil {
			b.Fatal(err)
		}
	}
}
