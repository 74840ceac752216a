// Package sandbox implements an in-memory emulator of the card-issuing API.
//
// It serves the same endpoints as the remote sandbox environment so the
// client and command line can be exercised without network access.
package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benx421/privacy-go/models"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
	maxPANRetries   = 5
	cardLifetime    = 3 // years
)

// ListFilter narrows a list of cards or transactions. Zero fields do not filter.
type ListFilter struct {
	Page             int
	PageSize         int
	Dates            dateRange
	CardToken        string
	TransactionToken string
}

// Service holds the emulator state. It is safe for concurrent use.
type Service struct {
	mu      sync.Mutex
	store   *store
	bin     string
	funding models.FundingAccount
	now     func() time.Time
	logger  *slog.Logger
}

// NewService creates an empty emulator issuing card numbers under bin
func NewService(bin string, logger *slog.Logger) (*Service, error) {
	if _, err := GeneratePAN(bin); err != nil {
		return nil, fmt.Errorf("invalid BIN prefix: %w", err)
	}

	return &Service{
		store: newStore(),
		bin:   bin,
		funding: models.FundingAccount{
			Token:       uuid.NewString(),
			AccountName: "Sandbox Checking",
			Type:        models.FundingTypeDepositoryChecking,
		},
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}, nil
}

// CreateCard issues a new card. State defaults to OPEN and the spend limit
// duration to FOREVER.
func (s *Service) CreateCard(ctx context.Context, req createCardRequest) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pan, err := s.uniquePAN()
	if err != nil {
		return models.Card{}, &ServiceError{Code: ErrCodeInternalError, Message: "failed to generate card number", Err: err}
	}
	cvv, err := randomDigits(3)
	if err != nil {
		return models.Card{}, &ServiceError{Code: ErrCodeInternalError, Message: "failed to generate cvv", Err: err}
	}

	now := s.now()
	expiry := now.AddDate(cardLifetime, 0, 0)

	card := &models.Card{
		Created:            now,
		Funding:            s.funding,
		Token:              uuid.NewString(),
		Type:               models.CardType(req.Type),
		State:              models.CardStateOpen,
		PAN:                pan,
		LastFour:           pan[len(pan)-4:],
		CVV:                cvv,
		ExpMonth:           fmt.Sprintf("%02d", int(expiry.Month())),
		ExpYear:            fmt.Sprintf("%d", expiry.Year()),
		Memo:               req.Memo,
		SpendLimitDuration: models.SpendLimitForever,
		SpendLimit:         models.Cents(req.SpendLimit),
	}
	if req.State != "" {
		card.State = models.CardState(req.State)
	}
	if req.SpendLimitDuration != "" {
		card.SpendLimitDuration = models.SpendLimitDuration(req.SpendLimitDuration)
	}

	s.store.insertCard(card)

	s.logger.DebugContext(ctx, "card created",
		"card_token", card.Token,
		"type", card.Type,
	)

	return *card, nil
}

func (s *Service) uniquePAN() (string, error) {
	for range maxPANRetries {
		pan, err := GeneratePAN(s.bin)
		if err != nil {
			return "", err
		}
		if s.store.cardByPAN(pan) == nil {
			return pan, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique PAN after %d retries", maxPANRetries)
}

// UpdateCard changes the given properties of a card. A closed card cannot
// change state again.
func (s *Service) UpdateCard(ctx context.Context, req updateCardRequest) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.store.card(req.CardToken)
	if card == nil {
		return models.Card{}, newError(ErrCodeCardNotFound, "card %s not found", req.CardToken)
	}

	if req.State != nil {
		state := models.CardState(*req.State)
		if card.State == models.CardStateClosed && state != models.CardStateClosed {
			return models.Card{}, newError(ErrCodeCardClosed, "card %s is closed and cannot be reopened", card.Token)
		}
		card.State = state
	}
	if req.Memo != nil {
		card.Memo = *req.Memo
	}
	if req.SpendLimit != nil {
		card.SpendLimit = models.Cents(*req.SpendLimit)
	}
	if req.SpendLimitDuration != nil {
		card.SpendLimitDuration = models.SpendLimitDuration(*req.SpendLimitDuration)
	}

	s.logger.DebugContext(ctx, "card updated",
		"card_token", card.Token,
		"state", card.State,
	)

	return *card, nil
}

// ListCards returns one page of cards, oldest first
func (s *Service) ListCards(_ context.Context, filter ListFilter) models.Page[models.Card] {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.Card
	for _, token := range s.store.cardOrder {
		card := s.store.cards[token]
		if filter.CardToken != "" && card.Token != filter.CardToken {
			continue
		}
		if !filter.Dates.contains(card.Created) {
			continue
		}
		matched = append(matched, *card)
	}

	return paginate(matched, filter.Page, filter.PageSize)
}

// ListTransactions returns one page of transactions matching status, oldest first
func (s *Service) ListTransactions(_ context.Context, status models.ApprovalStatus, filter ListFilter) models.Page[models.Transaction] {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.Transaction
	for _, token := range s.store.txnOrder {
		txn := s.store.transactions[token]
		if !status.Matches(txn.Result) {
			continue
		}
		if filter.CardToken != "" && txn.Card.Token != filter.CardToken {
			continue
		}
		if filter.TransactionToken != "" && txn.Token != filter.TransactionToken {
			continue
		}
		if !filter.Dates.contains(txn.Created) {
			continue
		}
		matched = append(matched, cloneTransaction(txn))
	}

	return paginate(matched, filter.Page, filter.PageSize)
}

func paginate[T any](items []T, page, pageSize int) models.Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	// page is only multiplied once it is known to be in range, so a huge
	// page number cannot overflow the offset.
	data := make([]T, 0, min(pageSize, total))
	if page <= totalPages {
		start := (page - 1) * pageSize
		end := min(start+pageSize, total)
		data = append(data, items[start:end]...)
	}

	return models.Page[T]{
		Data:         data,
		Page:         int64(page),
		TotalEntries: int64(total),
		TotalPages:   int64(totalPages),
	}
}
