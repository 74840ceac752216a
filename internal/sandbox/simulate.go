package sandbox

import (
	"context"
	"time"

	"github.com/benx421/privacy-go/models"
	"github.com/google/uuid"
)

func sandboxMerchant(descriptor string) models.Merchant {
	acceptorID, err := randomDigits(15)
	if err != nil {
		acceptorID = "000000000000000"
	}
	return models.Merchant{
		AcceptorID: acceptorID,
		City:       "NEW YORK",
		Country:    "USA",
		Descriptor: descriptor,
		MCC:        "5812",
		State:      "NY",
	}
}

func newEvent(created time.Time, eventType models.EventType, result models.TransactionResult, amount models.Cents) models.Event {
	return models.Event{
		Created: created,
		Token:   uuid.NewString(),
		Type:    eventType,
		Result:  result,
		Amount:  amount,
	}
}

// Authorize records an authorization of amount on the card with the given
// number. Declined authorizations are recorded too, with status VOIDED.
func (s *Service) Authorize(ctx context.Context, descriptor, pan string, amount models.Cents) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.store.cardByPAN(pan)
	if card == nil {
		return models.Transaction{}, newError(ErrCodeInvalidCard, "no card with the given pan")
	}

	now := s.now()
	result := s.authorizationResult(card, amount, now)

	txn := &models.Transaction{
		Created:  now,
		Merchant: sandboxMerchant(descriptor),
		Card:     *card,
		Events:   []models.Event{newEvent(now, models.EventTypeAuthorization, result, amount)},
		Token:    uuid.NewString(),
		Status:   models.TransactionStatusVoided,
		Result:   result,
		Amount:   amount,
	}
	if result.Approved() {
		txn.Status = models.TransactionStatusPending
		txn.Funding = []models.Funding{{
			Token:  card.Funding.Token,
			Type:   card.Funding.Type,
			Amount: amount,
		}}
	}

	s.store.insertTransaction(txn)

	s.logger.DebugContext(ctx, "authorization simulated",
		"transaction_token", txn.Token,
		"card_token", card.Token,
		"result", result,
	)

	return cloneTransaction(txn), nil
}

// authorizationResult decides whether an authorization is approved given the
// card state, single-use history and spend limit window
func (s *Service) authorizationResult(card *models.Card, amount models.Cents, now time.Time) models.TransactionResult {
	switch card.State {
	case models.CardStateClosed:
		return models.ResultCardClosed
	case models.CardStatePaused:
		return models.ResultCardPaused
	}

	history := s.store.cardTransactions(card.Token)

	if card.Type == models.CardTypeSingleUse {
		for _, txn := range history {
			if txn.Result.Approved() && !isReturn(txn) {
				return models.ResultSingleUseRecharged
			}
		}
	}

	if card.SpendLimit > 0 && spentInWindow(card.SpendLimitDuration, history, now)+amount > card.SpendLimit {
		return models.ResultUserTransactionLimit
	}

	return models.ResultApproved
}

func spentInWindow(duration models.SpendLimitDuration, history []*models.Transaction, now time.Time) models.Cents {
	if duration == models.SpendLimitTransaction {
		return 0
	}

	var spent models.Cents
	for _, txn := range history {
		if !txn.Result.Approved() || isReturn(txn) || txn.Status == models.TransactionStatusVoided {
			continue
		}
		if !sameWindow(duration, txn.Created, now) {
			continue
		}
		if txn.Status == models.TransactionStatusPending {
			spent += txn.Amount
		} else {
			spent += txn.SettledAmount
		}
	}
	return spent
}

func sameWindow(duration models.SpendLimitDuration, a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	switch duration {
	case models.SpendLimitMonthly:
		return a.Year() == b.Year() && a.Month() == b.Month()
	case models.SpendLimitAnnually:
		return a.Year() == b.Year()
	default:
		return true
	}
}

func isReturn(txn *models.Transaction) bool {
	return len(txn.Events) > 0 && txn.Events[0].Type == models.EventTypeReturn
}

// pendingTransaction returns the transaction with the given token if it can
// still be voided or cleared
func (s *Service) pendingTransaction(token string) (*models.Transaction, error) {
	txn := s.store.transaction(token)
	if txn == nil {
		return nil, newError(ErrCodeTransactionNotFound, "transaction %s not found", token)
	}
	if txn.Status != models.TransactionStatusPending {
		return nil, newError(ErrCodeTransactionState, "transaction %s is %s, not PENDING", token, txn.Status)
	}
	return txn, nil
}

// Void releases amount of a pending authorization. Zero voids the full
// pending amount.
func (s *Service) Void(ctx context.Context, token string, amount models.Cents) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.pendingTransaction(token)
	if err != nil {
		return err
	}

	if amount == 0 {
		amount = txn.Amount
	}
	if amount > txn.Amount {
		return newError(ErrCodeInvalidAmount, "void amount %s exceeds pending amount %s", amount, txn.Amount)
	}

	now := s.now()
	txn.Events = append(txn.Events, newEvent(now, models.EventTypeVoid, models.ResultApproved, amount))
	txn.Amount -= amount
	for i := range txn.Funding {
		txn.Funding[i].Amount = txn.Amount
	}
	if txn.Amount == 0 {
		txn.Status = models.TransactionStatusVoided
	}

	s.logger.DebugContext(ctx, "void simulated",
		"transaction_token", txn.Token,
		"amount", amount,
		"status", txn.Status,
	)

	return nil
}

// Clearing settles a pending authorization for amount. Zero clears the full
// pending amount.
func (s *Service) Clearing(ctx context.Context, token string, amount models.Cents) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.pendingTransaction(token)
	if err != nil {
		return err
	}

	if amount == 0 {
		amount = txn.Amount
	}

	now := s.now()
	txn.Events = append(txn.Events, newEvent(now, models.EventTypeClearing, models.ResultApproved, amount))
	txn.SettledAmount = amount
	txn.Status = models.TransactionStatusSettling

	s.logger.DebugContext(ctx, "clearing simulated",
		"transaction_token", txn.Token,
		"amount", amount,
	)

	return nil
}

// Return credits amount back to the card with the given number. Returns
// settle immediately.
func (s *Service) Return(ctx context.Context, descriptor, pan string, amount models.Cents) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.store.cardByPAN(pan)
	if card == nil {
		return models.Transaction{}, newError(ErrCodeInvalidCard, "no card with the given pan")
	}

	now := s.now()
	txn := &models.Transaction{
		Created:  now,
		Merchant: sandboxMerchant(descriptor),
		Card:     *card,
		Events:   []models.Event{newEvent(now, models.EventTypeReturn, models.ResultApproved, amount)},
		Funding: []models.Funding{{
			Token:  card.Funding.Token,
			Type:   card.Funding.Type,
			Amount: amount,
		}},
		Token:         uuid.NewString(),
		Status:        models.TransactionStatusSettled,
		Result:        models.ResultApproved,
		Amount:        amount,
		SettledAmount: amount,
	}

	s.store.insertTransaction(txn)

	s.logger.DebugContext(ctx, "return simulated",
		"transaction_token", txn.Token,
		"card_token", card.Token,
	)

	return cloneTransaction(txn), nil
}
