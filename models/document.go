package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Document is a raw decoded JSON object as returned by the API.
// Numbers are json.Number values so integer amounts never pass through float64.
type Document map[string]any

// ParseDocument decodes a single JSON object from r
func ParseDocument(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing document: empty body")
		}
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	doc, ok := asDocument(v)
	if !ok {
		return nil, &DecodeError{Field: "$", Expected: "object", Got: JSONKind(v)}
	}
	return doc, nil
}

// DecodeTransactionJSON parses data and decodes it as a Transaction
func DecodeTransactionJSON(data []byte) (Transaction, error) {
	doc, err := ParseDocument(bytes.NewReader(data))
	if err != nil {
		return Transaction{}, err
	}
	return DecodeTransaction(doc)
}

// DecodeCardJSON parses data and decodes it as a Card
func DecodeCardJSON(data []byte) (Card, error) {
	doc, err := ParseDocument(bytes.NewReader(data))
	if err != nil {
		return Card{}, err
	}
	return DecodeCard(doc)
}

func asDocument(v any) (Document, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]any:
		return Document(m), true
	}
	return nil, false
}

// JSONKind names the JSON type of a decoded value: null, string, boolean,
// number, array or object. Other Go types are reported by their type name.
func JSONKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, int32:
		return "number"
	case []any:
		return "array"
	case map[string]any, Document:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
