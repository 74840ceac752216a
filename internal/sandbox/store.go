package sandbox

import (
	"slices"
	"time"

	"github.com/benx421/privacy-go/models"
)

// store keeps cards and transactions in insertion order. It does no locking;
// Service serializes access.
type store struct {
	cards        map[string]*models.Card
	cardOrder    []string
	cardsByPAN   map[string]string
	transactions map[string]*models.Transaction
	txnOrder     []string
}

func newStore() *store {
	return &store{
		cards:        make(map[string]*models.Card),
		cardsByPAN:   make(map[string]string),
		transactions: make(map[string]*models.Transaction),
	}
}

func (s *store) insertCard(card *models.Card) {
	s.cards[card.Token] = card
	s.cardOrder = append(s.cardOrder, card.Token)
	s.cardsByPAN[card.PAN] = card.Token
}

func (s *store) card(token string) *models.Card {
	return s.cards[token]
}

func (s *store) cardByPAN(pan string) *models.Card {
	token, ok := s.cardsByPAN[pan]
	if !ok {
		return nil
	}
	return s.cards[token]
}

func (s *store) insertTransaction(txn *models.Transaction) {
	s.transactions[txn.Token] = txn
	s.txnOrder = append(s.txnOrder, txn.Token)
}

func (s *store) transaction(token string) *models.Transaction {
	return s.transactions[token]
}

// cardTransactions returns the transactions made with the card, oldest first
func (s *store) cardTransactions(cardToken string) []*models.Transaction {
	var out []*models.Transaction
	for _, token := range s.txnOrder {
		if txn := s.transactions[token]; txn.Card.Token == cardToken {
			out = append(out, txn)
		}
	}
	return out
}

// dateRange is an inclusive range of calendar days. Zero bounds are open.
type dateRange struct {
	begin time.Time
	end   time.Time
}

func (r dateRange) contains(t time.Time) bool {
	t = t.UTC()
	if !r.begin.IsZero() && t.Before(r.begin) {
		return false
	}
	if !r.end.IsZero() && !t.Before(r.end.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

func cloneTransaction(txn *models.Transaction) models.Transaction {
	out := *txn
	out.Events = slices.Clone(txn.Events)
	out.Funding = slices.Clone(txn.Funding)
	return out
}
