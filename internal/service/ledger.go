package service

import "github.com/noah-isme/campus-admin-api/internal/models"

// loanBalance folds a single (student, book) pair's slice of the transaction
// log in append order: +1 per BORROW, -1 per RETURN. Under accepted actions
// the result never goes negative.
func loanBalance(txns []models.LibraryTransaction) int {
	balance := 0
	for _, txn := range txns {
		if txn.Action == models.ActionBorrow {
			balance++
		} else {
			balance--
		}
	}
	return balance
}

// openLoanTotal sums, over every distinct (student, book) pair in the full
// log, the pair's net balance clamped at zero. This is the books-out metric.
func openLoanTotal(txns []models.LibraryTransaction) int {
	balances := make(map[string]int)
	for _, txn := range txns {
		key := txn.StudentCode + "|" + txn.BookID
		if txn.Action == models.ActionBorrow {
			balances[key]++
		} else {
			balances[key]--
		}
	}

	total := 0
	for _, balance := range balances {
		if balance > 0 {
			total += balance
		}
	}
	return total
}
