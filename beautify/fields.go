package beautify

import (
	"encoding/json"
	"strconv"
)

// fields wraps an operation payload with null-safe, type-coercing accessors.
// Payloads arrive from JSON, wallet bridges and builders, so numeric fields
// may be float64, json.Number, int or decimal strings.
type fields struct {
	m map[string]interface{}
}

// amountRef is an asset-amount pair as embedded in operation payloads.
type amountRef struct {
	Units   int64
	AssetID string
}

func (f fields) has(key string) bool {
	v, ok := f.m[key]
	return ok && v != nil
}

func (f fields) str(key string) (string, bool) {
	if f.m == nil {
		return "", false
	}
	s, ok := f.m[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func (f fields) integer(key string) (int64, bool) {
	if f.m == nil {
		return 0, false
	}
	return coerceInt64(f.m[key])
}

func (f fields) boolean(key string) (bool, bool) {
	if f.m == nil {
		return false, false
	}
	b, ok := f.m[key].(bool)
	return b, ok
}

func (f fields) obj(key string) (fields, bool) {
	if f.m == nil {
		return fields{}, false
	}
	m, ok := f.m[key].(map[string]interface{})
	if !ok {
		return fields{}, false
	}
	return fields{m: m}, true
}

func (f fields) list(key string) ([]interface{}, bool) {
	if f.m == nil {
		return nil, false
	}
	l, ok := f.m[key].([]interface{})
	return l, ok
}

// amount reads an {amount, asset_id} pair at key.
func (f fields) amount(key string) (amountRef, bool) {
	inner, ok := f.obj(key)
	if !ok {
		return amountRef{}, false
	}
	units, ok := inner.integer("amount")
	if !ok {
		return amountRef{}, false
	}
	assetID, ok := inner.str("asset_id")
	if !ok {
		return amountRef{}, false
	}
	return amountRef{Units: units, AssetID: assetID}, true
}

// legacyAmount reads the operation amount, honoring the wire format's legacy
// "amount_" spelling before the canonical "amount". Several operation schemas
// (transfer, vesting withdraw, balance claim, HTLC, settle) still emit the
// old name; both mean the same field.
func (f fields) legacyAmount() (amountRef, bool) {
	if a, ok := f.amount("amount_"); ok {
		return a, true
	}
	return f.amount("amount")
}

func coerceInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		if parsed, err := n.Int64(); err == nil {
			return parsed, true
		}
		return 0, false
	case string:
		if parsed, err := strconv.ParseInt(n, 10, 64); err == nil {
			return parsed, true
		}
		return 0, false
	default:
		return 0, false
	}
}
