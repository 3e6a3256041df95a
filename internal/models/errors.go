package models

import "errors"

// Rejection reasons for semantically invalid transactions. These are
// recoverable: the run loop reports them and moves on to the next record.
var (
	ErrUnknownTransaction = errors.New("transaction does not exist")
	ErrUnknownClient      = errors.New("client does not exist")
	ErrClientMismatch     = errors.New("client does not match transaction")
	ErrNotDisputable      = errors.New("transaction type cannot be disputed")
	ErrAlreadyDisputed    = errors.New("transaction is already disputed or charged back")
	ErrNotDisputed        = errors.New("transaction is not being disputed")
	ErrInsufficientFunds  = errors.New("insufficient funds for withdrawal")
	ErrAccountLocked      = errors.New("account is locked")
)
