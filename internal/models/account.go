package models

import (
	"github.com/shopspring/decimal"
)

// Account holds one client's balances. Total == Available + Held after every
// successful mutation. Once Locked, deposits and withdrawals are rejected;
// the dispute family remains processable.
type Account struct {
	ClientID  uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// NewAccount creates an account from a client's first deposit.
func NewAccount(clientID uint16, amount decimal.Decimal) *Account {
	return &Account{
		ClientID:  clientID,
		Available: amount,
		Held:      decimal.Zero,
		Total:     amount,
		Locked:    false,
	}
}
