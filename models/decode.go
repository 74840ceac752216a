package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Absent and null fields decode to the zero value of their type. Fields of
// the wrong kind fail with a *DecodeError. Unknown fields are ignored.

// DecodeFundingAccount decodes a funding account object
func DecodeFundingAccount(doc Document) (FundingAccount, error) {
	return decode(doc, readFundingAccount)
}

// DecodeCard decodes a card object including its funding account
func DecodeCard(doc Document) (Card, error) {
	return decode(doc, readCard)
}

// DecodeMerchant decodes a merchant object
func DecodeMerchant(doc Document) (Merchant, error) {
	return decode(doc, readMerchant)
}

// DecodeEvent decodes a transaction event object
func DecodeEvent(doc Document) (Event, error) {
	return decode(doc, readEvent)
}

// DecodeFunding decodes a funding allocation object
func DecodeFunding(doc Document) (Funding, error) {
	return decode(doc, readFunding)
}

// DecodeTransaction decodes a transaction with its card, merchant, events and funding
func DecodeTransaction(doc Document) (Transaction, error) {
	return decode(doc, readTransaction)
}

// DecodeCardPage decodes a list cards response
func DecodeCardPage(doc Document) (Page[Card], error) {
	return decode(doc, pageReader(readCard))
}

// DecodeTransactionPage decodes a list transactions response
func DecodeTransactionPage(doc Document) (Page[Transaction], error) {
	return decode(doc, pageReader(readTransaction))
}

func decode[T any](doc Document, read func(*fieldReader) T) (T, error) {
	r := &fieldReader{doc: doc}
	v := read(r)
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return v, nil
}

func readFundingAccount(r *fieldReader) FundingAccount {
	return FundingAccount{
		Token:       r.String("token"),
		AccountName: r.String("account_name"),
		Type:        FundingType(r.String("type")),
	}
}

func readCard(r *fieldReader) Card {
	return Card{
		Created:            r.Time("created"),
		Funding:            nested(r, "funding", readFundingAccount),
		Token:              r.String("token"),
		Type:               CardType(r.String("type")),
		State:              CardState(r.String("state")),
		PAN:                r.String("pan"),
		LastFour:           r.String("last_four"),
		CVV:                r.String("cvv"),
		ExpMonth:           r.String("exp_month"),
		ExpYear:            r.String("exp_year"),
		Memo:               r.String("memo"),
		Hostname:           r.String("hostname"),
		SpendLimitDuration: SpendLimitDuration(r.String("spend_limit_duration")),
		SpendLimit:         r.Cents("spend_limit"),
	}
}

func readMerchant(r *fieldReader) Merchant {
	return Merchant{
		AcceptorID: r.String("acceptor_id"),
		City:       r.String("city"),
		Country:    r.String("country"),
		Descriptor: r.String("descriptor"),
		MCC:        r.String("mcc"),
		State:      r.String("state"),
	}
}

func readEvent(r *fieldReader) Event {
	return Event{
		Created: r.Time("created"),
		Token:   r.String("token"),
		Type:    EventType(r.String("type")),
		Result:  TransactionResult(r.String("result")),
		Amount:  r.Cents("amount"),
	}
}

func readFunding(r *fieldReader) Funding {
	return Funding{
		Token:  r.String("token"),
		Type:   FundingType(r.String("type")),
		Amount: r.Cents("amount"),
	}
}

func readTransaction(r *fieldReader) Transaction {
	return Transaction{
		Created:       r.Time("created"),
		Merchant:      nested(r, "merchant", readMerchant),
		Card:          nested(r, "card", readCard),
		Events:        list(r, "events", readEvent),
		Funding:       list(r, "funding", readFunding),
		Token:         r.String("token"),
		Status:        TransactionStatus(r.String("status")),
		Result:        TransactionResult(r.String("result")),
		Amount:        r.Cents("amount"),
		SettledAmount: r.Cents("settled_amount"),
	}
}

func pageReader[T any](read func(*fieldReader) T) func(*fieldReader) Page[T] {
	return func(r *fieldReader) Page[T] {
		return Page[T]{
			Data:         list(r, "data", read),
			Page:         r.Int("page"),
			TotalEntries: r.Int("total_entries"),
			TotalPages:   r.Int("total_pages"),
		}
	}
}

// fieldReader extracts typed fields from a document and keeps the first error
type fieldReader struct {
	doc    Document
	prefix string
	err    error
}

func (r *fieldReader) path(name string) string {
	if r.prefix == "" {
		return name
	}
	return r.prefix + "." + name
}

func (r *fieldReader) fail(name, expected string, got any) {
	if r.err != nil {
		return
	}
	r.err = &DecodeError{Field: r.path(name), Expected: expected, Got: JSONKind(got)}
}

func (r *fieldReader) value(name string) (any, bool) {
	v, ok := r.doc[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *fieldReader) String(name string) string {
	v, ok := r.value(name)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(name, "string", v)
		return ""
	}
	return s
}

func (r *fieldReader) Int(name string) int64 {
	v, ok := r.value(name)
	if !ok {
		return 0
	}
	n, ok := toInt64(v)
	if !ok {
		r.fail(name, "integer", v)
		return 0
	}
	return n
}

func (r *fieldReader) Cents(name string) Cents {
	return Cents(r.Int(name))
}

func (r *fieldReader) Time(name string) time.Time {
	v, ok := r.value(name)
	if !ok {
		return time.Time{}
	}
	s, ok := v.(string)
	if !ok {
		r.fail(name, "timestamp string", v)
		return time.Time{}
	}
	if s == "" {
		return time.Time{}
	}
	t, err := parseTimestamp(s)
	if err != nil {
		r.fail(name, "timestamp", v)
		return time.Time{}
	}
	return t
}

func (r *fieldReader) child(name string, doc Document) *fieldReader {
	return &fieldReader{doc: doc, prefix: r.path(name)}
}

func (r *fieldReader) adopt(child *fieldReader) {
	if r.err == nil && child.err != nil {
		r.err = child.err
	}
}

func nested[T any](r *fieldReader, name string, read func(*fieldReader) T) T {
	var zero T
	v, ok := r.value(name)
	if !ok {
		return zero
	}
	doc, ok := asDocument(v)
	if !ok {
		r.fail(name, "object", v)
		return zero
	}
	child := r.child(name, doc)
	out := read(child)
	r.adopt(child)
	return out
}

func list[T any](r *fieldReader, name string, read func(*fieldReader) T) []T {
	v, ok := r.value(name)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		r.fail(name, "array", v)
		return nil
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		elem := fmt.Sprintf("%s[%d]", name, i)
		doc, ok := asDocument(item)
		if !ok {
			r.fail(elem, "object", item)
			return nil
		}
		child := r.child(elem, doc)
		out = append(out, read(child))
		r.adopt(child)
		if r.err != nil {
			return nil
		}
	}
	return out
}

// maxExactFloat is the largest magnitude at which float64 still holds every integer
const maxExactFloat = 1 << 53

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integralFloat(f)
	case float64:
		return integralFloat(n)
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	}
	return 0, false
}

func integralFloat(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
		return 0, false
	}
	return int64(f), true
}

// Fractional seconds are accepted after the seconds field of every layout.
// Timestamps without a zone are UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05 Z0700",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
