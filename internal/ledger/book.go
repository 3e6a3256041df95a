package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ruralpay/txengine/internal/models"
)

// AccountBook is the per-client balance store. Accounts are created lazily on
// a client's first deposit and never deleted.
type AccountBook struct {
	accounts map[uint16]*models.Account
}

func NewAccountBook() *AccountBook {
	return &AccountBook{accounts: make(map[uint16]*models.Account)}
}

// GetOrCreate returns the account for clientID, creating an empty one if the
// client is new. Only the deposit handler may create accounts.
func (b *AccountBook) GetOrCreate(clientID uint16) *models.Account {
	if acc, ok := b.accounts[clientID]; ok {
		return acc
	}
	acc := models.NewAccount(clientID, decimal.Zero)
	b.accounts[clientID] = acc
	return acc
}

// Get returns the account for clientID, if any. Handlers that must not create
// an account as a side effect go through here.
func (b *AccountBook) Get(clientID uint16) (*models.Account, bool) {
	acc, ok := b.accounts[clientID]
	return acc, ok
}

// Accounts returns every account ever created, sorted by client id so the
// output projection is deterministic.
func (b *AccountBook) Accounts() []*models.Account {
	out := make([]*models.Account, 0, len(b.accounts))
	for _, acc := range b.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClientID < out[j].ClientID })
	return out
}
