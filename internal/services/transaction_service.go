package services

import (
	"go.uber.org/zap"

	"github.com/ruralpay/txengine/internal/ledger"
	"github.com/ruralpay/txengine/internal/models"
)

// TransactionService replays the input stream against the Ledger and the
// AccountBook. Each record is routed to one handler by kind; handlers either
// mutate state or return a rejection reason. Rejections are reported and
// skipped, they never abort the run.
type TransactionService struct {
	ledger *ledger.Ledger
	book   *ledger.AccountBook
	logger *zap.Logger

	applied  int
	rejected int
}

// Stats summarizes one replay run.
type Stats struct {
	Applied  int
	Rejected int
}

func NewTransactionService(l *ledger.Ledger, b *ledger.AccountBook, logger *zap.Logger) *TransactionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionService{
		ledger: l,
		book:   b,
		logger: logger,
	}
}

// Apply processes one transaction in stream order. Deposits and withdrawals
// are recorded into the Ledger before dispatch so later disputes can find
// them, even when the operation itself is rejected. The returned error is one
// of the models.Err* rejection reasons, or nil.
func (s *TransactionService) Apply(tx *models.Transaction) error {
	if tx.Kind.Monetary() {
		s.ledger.Record(tx)
	}

	var err error
	switch tx.Kind {
	case models.KindDeposit:
		err = s.deposit(tx)
	case models.KindWithdrawal:
		err = s.withdraw(tx)
	case models.KindDispute:
		err = s.dispute(tx)
	case models.KindResolve:
		err = s.resolve(tx)
	case models.KindChargeback:
		err = s.chargeback(tx)
	}

	if err != nil {
		s.rejected++
		s.logger.Warn("transaction rejected",
			zap.Uint32("tx", tx.ID),
			zap.Uint16("client", tx.ClientID),
			zap.String("type", string(tx.Kind)),
			zap.Error(err),
		)
		return err
	}

	s.applied++
	return nil
}

// Stats reports how many transactions were applied and rejected so far.
func (s *TransactionService) Stats() Stats {
	return Stats{Applied: s.applied, Rejected: s.rejected}
}

// deposit credits the client's account, creating it on first contact. A
// locked account keeps its balances untouched; the record stays in the
// Ledger either way.
func (s *TransactionService) deposit(tx *models.Transaction) error {
	acc := s.book.GetOrCreate(tx.ClientID)
	if acc.Locked {
		return models.ErrAccountLocked
	}
	acc.Available = acc.Available.Add(tx.Amount)
	acc.Total = acc.Total.Add(tx.Amount)
	return nil
}

// withdraw debits the client's account. The comparison is strictly greater
// than: withdrawing the exact available balance fails. Any failed withdrawal
// on an existing account locks it.
func (s *TransactionService) withdraw(tx *models.Transaction) error {
	acc, ok := s.book.Get(tx.ClientID)
	if !ok {
		return models.ErrUnknownClient
	}
	if acc.Locked {
		return models.ErrAccountLocked
	}
	if !acc.Available.GreaterThan(tx.Amount) {
		acc.Locked = true
		return models.ErrInsufficientFunds
	}
	acc.Available = acc.Available.Sub(tx.Amount)
	acc.Total = acc.Total.Sub(tx.Amount)
	return nil
}

// disputeTarget resolves and gates the record a dispute-family transaction
// references: the id must exist, the client must own it, only deposits are
// dispute-eligible, and the owning account must exist.
func (s *TransactionService) disputeTarget(tx *models.Transaction) (*models.Transaction, *models.Account, error) {
	rec, ok := s.ledger.Lookup(tx.ID)
	if !ok {
		return nil, nil, models.ErrUnknownTransaction
	}
	if rec.ClientID != tx.ClientID {
		return nil, nil, models.ErrClientMismatch
	}
	if rec.Kind != models.KindDeposit {
		return nil, nil, models.ErrNotDisputable
	}
	acc, ok := s.book.Get(rec.ClientID)
	if !ok {
		return nil, nil, models.ErrUnknownClient
	}
	return rec, acc, nil
}

// dispute freezes the referenced deposit's amount: available -> held.
func (s *TransactionService) dispute(tx *models.Transaction) error {
	rec, acc, err := s.disputeTarget(tx)
	if err != nil {
		return err
	}
	if rec.Disputed || rec.Locked {
		return models.ErrAlreadyDisputed
	}
	acc.Available = acc.Available.Sub(rec.Amount)
	acc.Held = acc.Held.Add(rec.Amount)
	rec.Disputed = true
	return nil
}

// resolve releases a disputed deposit's amount: held -> available.
func (s *TransactionService) resolve(tx *models.Transaction) error {
	rec, acc, err := s.disputeTarget(tx)
	if err != nil {
		return err
	}
	if !rec.Disputed {
		return models.ErrNotDisputed
	}
	acc.Available = acc.Available.Add(rec.Amount)
	acc.Held = acc.Held.Sub(rec.Amount)
	rec.Disputed = false
	return nil
}

// chargeback reverses a disputed deposit: the amount leaves held and total,
// the account locks permanently, and the record can never be disputed again.
func (s *TransactionService) chargeback(tx *models.Transaction) error {
	rec, acc, err := s.disputeTarget(tx)
	if err != nil {
		return err
	}
	if !rec.Disputed {
		return models.ErrNotDisputed
	}
	acc.Held = acc.Held.Sub(rec.Amount)
	acc.Total = acc.Total.Sub(rec.Amount)
	acc.Locked = true
	rec.Disputed = false
	rec.Locked = true
	return nil
}
