// internal/services/order_items.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LineItem is one requested order line. Quantity 0 means unset or
// unparsable and is defaulted during normalization; Price 0 means the
// catalog price should be snapshotted instead.
type LineItem struct {
	ProductID string
	Quantity  int
	Price     float64
}

type lineItemJSON struct {
	Product  json.RawMessage `json:"product"`
	ID       json.RawMessage `json:"id"`
	Quantity json.RawMessage `json:"quantity"`
	Price    json.RawMessage `json:"price"`
}

func (it *LineItem) UnmarshalJSON(data []byte) error {
	var raw lineItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	it.ProductID = stringValue(raw.Product)
	if it.ProductID == "" {
		it.ProductID = stringValue(raw.ID)
	}
	it.Quantity = intValue(raw.Quantity)
	it.Price = floatValue(raw.Price)
	return nil
}

// LineItems accepts a structured array, a single object (treated as a
// one-element list) or a list that arrived JSON-encoded inside a string
// field. Any other shape is a decode error.
type LineItems []LineItem

func (ls *LineItems) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*ls = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		return ls.decodeList(trimmed)
	case '{':
		return ls.decodeSingle(trimmed)
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("invalid items format: %w", err)
		}
		return ls.decodeEncoded(s)
	}
	return fmt.Errorf("items must be a list")
}

func (ls *LineItems) decodeList(data []byte) error {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("invalid items format: %w", err)
	}
	*ls = items
	return nil
}

func (ls *LineItems) decodeSingle(data []byte) error {
	var it LineItem
	if err := json.Unmarshal(data, &it); err != nil {
		return fmt.Errorf("invalid items format: %w", err)
	}
	*ls = LineItems{it}
	return nil
}

// decodeEncoded peels one layer of stray quoting and then requires a proper
// JSON list or object.
func (ls *LineItems) decodeEncoded(s string) error {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	if s == "" {
		return fmt.Errorf("items must be a list")
	}
	switch s[0] {
	case '[':
		return ls.decodeList([]byte(s))
	case '{':
		return ls.decodeSingle([]byte(s))
	}
	return fmt.Errorf("items must be a list")
}

func stringValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

func intValue(raw json.RawMessage) int {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	if s := stringValue(raw); s != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return int(f)
		}
	}
	return 0
}

func floatValue(raw json.RawMessage) float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	if s := stringValue(raw); s != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}
