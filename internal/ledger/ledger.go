package ledger

import (
	"github.com/ruralpay/txengine/internal/models"
)

// Ledger is the append-only history of deposit and withdrawal records, keyed
// by transaction id. Dispute-family transactions reference entries here to
// validate themselves and to flip the Disputed/Locked flags. Entries are
// never deleted; chargebacks must stay checkable for the whole run.
type Ledger struct {
	records map[uint32]*models.Transaction
}

func NewLedger() *Ledger {
	return &Ledger{records: make(map[uint32]*models.Transaction)}
}

// Record inserts or overwrites the entry for tx.ID. Duplicate ids are not
// guarded against; the last write wins.
func (l *Ledger) Record(tx *models.Transaction) {
	l.records[tx.ID] = tx
}

// Lookup returns the mutable record for id, if any.
func (l *Ledger) Lookup(id uint32) (*models.Transaction, bool) {
	tx, ok := l.records[id]
	return tx, ok
}

// Len reports the number of retained records.
func (l *Ledger) Len() int {
	return len(l.records)
}
