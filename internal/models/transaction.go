package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind is the transaction type tag from the input stream.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// ParseKind maps a raw type tag to a Kind. Unknown tags are rejected here,
// at parse time, so the dispatcher only ever sees the five known kinds.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// Monetary reports whether transactions of this kind carry their own amount.
// Dispute-family transactions reference a prior deposit/withdrawal instead.
func (k Kind) Monetary() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Transaction is one record of the input ledger stream. Only deposits and
// withdrawals are retained in the Ledger; Disputed and Locked track the
// dispute lifecycle of a retained record.
type Transaction struct {
	ID       uint32
	Kind     Kind
	ClientID uint16
	Amount   decimal.Decimal
	Disputed bool
	Locked   bool // set once a chargeback has been issued; terminal
}
