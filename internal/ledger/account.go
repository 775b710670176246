package ledger

import "github.com/shopspring/decimal"

// Account bundles the identity and current balance of one bank account.
// The ledger keeps the only mutable instance; every operation hands out
// value copies, so callers can never change a balance behind the ledger's
// back.
type Account struct {
	ID      int64
	Holder  string
	Address string
	Balance decimal.Decimal
}

// TransferResult captures the outcome of a transfer between two accounts.
type TransferResult struct {
	Reference   string
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
}
