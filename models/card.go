// Package models defines the card-issuing domain entities and decodes them
// from raw JSON documents returned by the API.
package models

import "time"

// CardType represents how a card may be used at merchants
type CardType string

const (
	CardTypeSingleUse      CardType = "SINGLE_USE"
	CardTypeMerchantLocked CardType = "MERCHANT_LOCKED"
	CardTypeUnlocked       CardType = "UNLOCKED"
)

// CardTypeValues returns every known card type
func CardTypeValues() []CardType {
	return []CardType{CardTypeSingleUse, CardTypeMerchantLocked, CardTypeUnlocked}
}

// Valid reports whether t is a known card type
func (t CardType) Valid() bool {
	switch t {
	case CardTypeSingleUse, CardTypeMerchantLocked, CardTypeUnlocked:
		return true
	}
	return false
}

// CardState represents the lifecycle state of a card
type CardState string

const (
	CardStateOpen   CardState = "OPEN"
	CardStatePaused CardState = "PAUSED"
	// CardStateClosed is final. A closed card cannot be reopened.
	CardStateClosed CardState = "CLOSED"
)

// CardStateValues returns every known card state
func CardStateValues() []CardState {
	return []CardState{CardStateOpen, CardStatePaused, CardStateClosed}
}

// Valid reports whether s is a known card state
func (s CardState) Valid() bool {
	switch s {
	case CardStateOpen, CardStatePaused, CardStateClosed:
		return true
	}
	return false
}

// SpendLimitDuration is the window over which a card's spend limit resets
type SpendLimitDuration string

const (
	SpendLimitTransaction SpendLimitDuration = "TRANSACTION"
	SpendLimitMonthly     SpendLimitDuration = "MONTHLY"
	SpendLimitAnnually    SpendLimitDuration = "ANNUALLY"
	SpendLimitForever     SpendLimitDuration = "FOREVER"
)

// SpendLimitDurationValues returns every known spend limit duration
func SpendLimitDurationValues() []SpendLimitDuration {
	return []SpendLimitDuration{SpendLimitTransaction, SpendLimitMonthly, SpendLimitAnnually, SpendLimitForever}
}

// Valid reports whether d is a known spend limit duration
func (d SpendLimitDuration) Valid() bool {
	switch d {
	case SpendLimitTransaction, SpendLimitMonthly, SpendLimitAnnually, SpendLimitForever:
		return true
	}
	return false
}

// FundingAccount is the funding source a card draws from
type FundingAccount struct {
	Token       string      `json:"token"`
	AccountName string      `json:"account_name"`
	Type        FundingType `json:"type"`
}

// Card represents an issued virtual card
type Card struct {
	Created            time.Time          `json:"created"`
	Funding            FundingAccount     `json:"funding"`
	Token              string             `json:"token"`
	Type               CardType           `json:"type"`
	State              CardState          `json:"state"`
	PAN                string             `json:"pan"`
	LastFour           string             `json:"last_four"`
	CVV                string             `json:"cvv"`
	ExpMonth           string             `json:"exp_month"`
	ExpYear            string             `json:"exp_year"`
	Memo               string             `json:"memo"`
	Hostname           string             `json:"hostname"`
	SpendLimitDuration SpendLimitDuration `json:"spend_limit_duration"`
	SpendLimit         Cents              `json:"spend_limit"`
}
