package ledger

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound occurs when the given account id was never issued
	// by this ledger. Callers hitting it hold a stale or invalid id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds occurs when a withdrawal or transfer asks for
	// more than the source account's available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount occurs when an operation is given a negative amount,
	// or a transfer a non-positive one.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrSameAccount occurs when a transfer names the same account on both
	// sides.
	ErrSameAccount = errors.New("transfer source and destination are the same account")

	// ErrIDSpaceExhausted occurs when the ledger cannot draw an unused
	// account id within the attempt cap.
	ErrIDSpaceExhausted = errors.New("account id space exhausted")
)

const (
	// idRange bounds the identifiers drawn for new accounts.
	idRange = 1_000_000

	// maxIDAttempts caps the draw-and-check loop. The id range is far
	// larger than any realistic account count, so the cap is never reached
	// in practice; it turns a pathological near-full ledger into a clean
	// error instead of an unbounded spin.
	maxIDAttempts = 100
)

// Ledger is the sole authority over account existence and balances. A
// single lock guards the account map, making the ledger safe for
// concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[int64]*Account
	drawID   func() int64
}

// New creates an empty in-memory ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[int64]*Account),
		drawID:   func() int64 { return rand.Int63n(idRange) },
	}
}

// newID draws candidate ids until one is unused. Caller must hold mu.
func (l *Ledger) newID() (int64, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := l.drawID()
		if _, taken := l.accounts[id]; !taken {
			return id, nil
		}
	}
	return 0, ErrIDSpaceExhausted
}

// CreateAccount opens an account for the given holder with the given
// starting balance and returns a copy of the stored record. The starting
// balance must not be negative.
func (l *Ledger) CreateAccount(_ context.Context, holder, address string, initial decimal.Decimal) (Account, error) {
	if initial.IsNegative() {
		return Account{}, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id, err := l.newID()
	if err != nil {
		return Account{}, err
	}

	account := &Account{ID: id, Holder: holder, Address: address, Balance: initial}
	l.accounts[id] = account
	return *account, nil
}

// GetAccount returns a copy of the account with the given id.
func (l *Ledger) GetAccount(_ context.Context, id int64) (Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.accounts[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return *account, nil
}

// Accounts returns a snapshot copy of every account, in no particular
// order.
func (l *Ledger) Accounts(_ context.Context) []Account {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Account, 0, len(l.accounts))
	for _, account := range l.accounts {
		out = append(out, *account)
	}
	return out
}

// Deposit increases the balance of the account with the given id. Negative
// amounts are rejected; a zero deposit is permitted and leaves the balance
// unchanged.
func (l *Ledger) Deposit(_ context.Context, id int64, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	account.Balance = account.Balance.Add(amount)
	return nil
}

// Withdraw decreases the balance of the account with the given id. The
// amount must not exceed the balance; a failed withdrawal changes nothing.
func (l *Ledger) Withdraw(_ context.Context, id int64, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	if account.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	account.Balance = account.Balance.Sub(amount)
	return nil
}

// Transfer atomically moves a positive amount between two distinct
// accounts. Either both balances change or neither does.
func (l *Ledger) Transfer(_ context.Context, fromID, toID int64, amount decimal.Decimal) (TransferResult, error) {
	if !amount.IsPositive() {
		return TransferResult{}, ErrInvalidAmount
	}
	if fromID == toID {
		return TransferResult{}, ErrSameAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	from, ok := l.accounts[fromID]
	if !ok {
		return TransferResult{}, ErrAccountNotFound
	}
	to, ok := l.accounts[toID]
	if !ok {
		return TransferResult{}, ErrAccountNotFound
	}
	if from.Balance.LessThan(amount) {
		return TransferResult{}, ErrInsufficientFunds
	}

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)

	return TransferResult{
		Reference:   uuid.NewString(),
		FromBalance: from.Balance,
		ToBalance:   to.Balance,
	}, nil
}
