package models

import "time"

// ApprovalStatus filters transactions by authorization outcome
type ApprovalStatus string

const (
	ApprovalStatusApprovals ApprovalStatus = "approvals"
	ApprovalStatusDeclines  ApprovalStatus = "declines"
	ApprovalStatusAll       ApprovalStatus = "all"
)

// ApprovalStatusValues returns every known approval status
func ApprovalStatusValues() []ApprovalStatus {
	return []ApprovalStatus{ApprovalStatusApprovals, ApprovalStatusDeclines, ApprovalStatusAll}
}

// Valid reports whether s is a known approval status
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusApprovals, ApprovalStatusDeclines, ApprovalStatusAll:
		return true
	}
	return false
}

// Matches reports whether a transaction with the given result belongs to s
func (s ApprovalStatus) Matches(result TransactionResult) bool {
	switch s {
	case ApprovalStatusApprovals:
		return result == ResultApproved
	case ApprovalStatusDeclines:
		return result != ResultApproved
	case ApprovalStatusAll:
		return true
	}
	return false
}

// TransactionStatus represents the settlement status of a transaction
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusVoided   TransactionStatus = "VOIDED"
	TransactionStatusSettling TransactionStatus = "SETTLING"
	TransactionStatusSettled  TransactionStatus = "SETTLED"
	TransactionStatusBounced  TransactionStatus = "BOUNCED"
)

// Valid reports whether s is a known transaction status
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusVoided, TransactionStatusSettling,
		TransactionStatusSettled, TransactionStatusBounced:
		return true
	}
	return false
}

// TransactionResult is APPROVED or the reason a transaction was declined
type TransactionResult string

const (
	ResultApproved                    TransactionResult = "APPROVED"
	ResultCardPaused                  TransactionResult = "CARD_PAUSED"
	ResultCardClosed                  TransactionResult = "CARD_CLOSED"
	ResultGlobalTransactionLimit      TransactionResult = "GLOBAL_TRANSACTION_LIMIT"
	ResultGlobalMonthlyLimit          TransactionResult = "GLOBAL_MONTHLY_LIMIT"
	ResultUserTransactionLimit        TransactionResult = "USER_TRANSACTION_LIMIT"
	ResultUnauthorizedMerchant        TransactionResult = "UNAUTHORIZED_MERCHANT"
	ResultSingleUseRecharged          TransactionResult = "SINGLE_USE_RECHARGED"
	ResultBankConnectionError         TransactionResult = "BANK_CONNECTION_ERROR"
	ResultInsufficientFunds           TransactionResult = "INSUFFICIENT_FUNDS"
	ResultMerchantBlacklist           TransactionResult = "MERCHANT_BLACKLIST"
	ResultInvalidCardDetails          TransactionResult = "INVALID_CARD_DETAILS"
	ResultBankNotVerified             TransactionResult = "BANK_NOT_VERIFIED"
	ResultInactiveAccount             TransactionResult = "INACTIVE_ACCOUNT"
	ResultAccountStateTransactionFail TransactionResult = "ACCOUNT_STATE_TRANSACTION_FAIL"
	ResultUnknownHostTimeout          TransactionResult = "UNKNOWN_HOST_TIMEOUT"
	ResultSwitchInoperativeAdvice     TransactionResult = "SWITCH_INOPERATIVE_ADVICE"
	ResultFraudAdvice                 TransactionResult = "FRAUD_ADVICE"
	ResultIncorrectPIN                TransactionResult = "INCORRECT_PIN"
)

// Approved reports whether r is an approval
func (r TransactionResult) Approved() bool {
	return r == ResultApproved
}

// EventType identifies a step in a transaction's lifecycle
type EventType string

const (
	EventTypeAuthorization       EventType = "AUTHORIZATION"
	EventTypeAuthorizationAdvice EventType = "AUTHORIZATION_ADVICE"
	EventTypeClearing            EventType = "CLEARING"
	EventTypeVoid                EventType = "VOID"
	EventTypeReturn              EventType = "RETURN"
)

// Valid reports whether t is a known event type
func (t EventType) Valid() bool {
	switch t {
	case EventTypeAuthorization, EventTypeAuthorizationAdvice, EventTypeClearing,
		EventTypeVoid, EventTypeReturn:
		return true
	}
	return false
}

// FundingType is the kind of source that paid for (part of) a transaction.
// PROMO marks promotional credit.
type FundingType string

const (
	FundingTypeDepositoryChecking FundingType = "DEPOSITORY_CHECKING"
	FundingTypeDepositorySavings  FundingType = "DEPOSITORY_SAVINGS"
	FundingTypeCardDebit          FundingType = "CARD_DEBIT"
	FundingTypePromo              FundingType = "PROMO"
)

// Valid reports whether t is a known funding type
func (t FundingType) Valid() bool {
	switch t {
	case FundingTypeDepositoryChecking, FundingTypeDepositorySavings, FundingTypeCardDebit, FundingTypePromo:
		return true
	}
	return false
}

// Merchant describes the card acceptor of a transaction
type Merchant struct {
	AcceptorID string `json:"acceptor_id"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Descriptor string `json:"descriptor"`
	MCC        string `json:"mcc"`
	State      string `json:"state"`
}

// Event is a single change to a transaction, such as an authorization or clearing
type Event struct {
	Created time.Time         `json:"created"`
	Token   string            `json:"token"`
	Type    EventType         `json:"type"`
	Result  TransactionResult `json:"result"`
	Amount  Cents             `json:"amount"`
}

// Funding is one allocation of a transaction's amount to a funding source
type Funding struct {
	Token  string      `json:"token"`
	Type   FundingType `json:"type"`
	Amount Cents       `json:"amount"`
}

// Transaction represents a card transaction and its history
type Transaction struct {
	Created       time.Time         `json:"created"`
	Merchant      Merchant          `json:"merchant"`
	Card          Card              `json:"card"`
	Events        []Event           `json:"events"`
	Funding       []Funding         `json:"funding"`
	Token         string            `json:"token"`
	Status        TransactionStatus `json:"status"`
	Result        TransactionResult `json:"result"`
	Amount        Cents             `json:"amount"`
	SettledAmount Cents             `json:"settled_amount"`
}

// Page is the envelope returned by list endpoints
type Page[T any] struct {
	Data         []T   `json:"data"`
	Page         int64 `json:"page"`
	TotalEntries int64 `json:"total_entries"`
	TotalPages   int64 `json:"total_pages"`
}
