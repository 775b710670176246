// Package customer binds a holder's identity to a bank ledger so accounts
// can be opened on their behalf.
package customer

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/brookbank/brookbank/internal/ledger"
)

// AccountCreator is the slice of the ledger a customer needs.
type AccountCreator interface {
	CreateAccount(ctx context.Context, holder, address string, initial decimal.Decimal) (ledger.Account, error)
}

// Customer is a convenience facade over one shared ledger. It keeps no
// record of the accounts it opens; the ledger remains the single owner of
// all account state.
type Customer struct {
	name    string
	address string
	bank    AccountCreator
}

// New builds a customer bound to the given ledger.
func New(name, address string, bank AccountCreator) *Customer {
	return &Customer{name: name, address: address, bank: bank}
}

// OpenAccount asks the ledger to create an account held by this customer.
func (c *Customer) OpenAccount(ctx context.Context, initial decimal.Decimal) (ledger.Account, error) {
	return c.bank.CreateAccount(ctx, c.name, c.address, initial)
}

// Name returns the customer's name.
func (c *Customer) Name() string { return c.name }

// Address returns the customer's postal address.
func (c *Customer) Address() string { return c.address }
