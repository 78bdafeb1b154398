package wolfram

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Field is a single named option value. Value holds a string, bool, any
// integer or float kind, or a slice of one of those.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered set of option fields. Keys are unique; iteration
// order is insertion order.
type Record []Field

// Set stores value under key. An existing key keeps its position.
func (r *Record) Set(key string, value any) {
	for i := range *r {
		if (*r)[i].Key == key {
			(*r)[i].Value = value
			return
		}
	}
	*r = append(*r, Field{Key: key, Value: value})
}

// Pair is one encoded key/value.
type Pair struct {
	Key   string
	Value string
}

// Params is an ordered list of query pairs. Unlike url.Values it keeps the
// order pairs were added in, so encoded URLs are reproducible.
type Params []Pair

// EncodeRecord flattens a record into query pairs. Scalars produce one pair,
// slices produce one pair per element under the same key.
func EncodeRecord(r Record) Params {
	params := make(Params, 0, len(r))
	for _, field := range r {
		switch v := field.Value.(type) {
		case []string:
			for _, item := range v {
				params.Add(field.Key, item)
			}
		case []bool:
			for _, item := range v {
				params.Add(field.Key, strconv.FormatBool(item))
			}
		case []int:
			for _, item := range v {
				params.Add(field.Key, strconv.Itoa(item))
			}
		case []int64:
			for _, item := range v {
				params.Add(field.Key, strconv.FormatInt(item, 10))
			}
		case []float64:
			for _, item := range v {
				params.Add(field.Key, formatFloat(item))
			}
		default:
			params.Set(field.Key, stringify(v))
		}
	}
	return params
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return formatFloat(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Add appends a pair, keeping any earlier pairs with the same key.
func (p *Params) Add(key, value string) {
	*p = append(*p, Pair{Key: key, Value: value})
}

// Set replaces every pair for key with a single pair. The first existing
// occurrence keeps its position; with none, the pair is appended.
func (p *Params) Set(key, value string) {
	out := (*p)[:0]
	found := false
	for _, pair := range *p {
		if pair.Key != key {
			out = append(out, pair)
			continue
		}
		if !found {
			out = append(out, Pair{Key: key, Value: value})
			found = true
		}
	}
	if !found {
		out = append(out, Pair{Key: key, Value: value})
	}
	*p = out
}

// Get returns the first value for key.
func (p Params) Get(key string) string {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value
		}
	}
	return ""
}

// GetAll returns every value for key in order.
func (p Params) GetAll(key string) []string {
	var values []string
	for _, pair := range p {
		if pair.Key == key {
			values = append(values, pair.Value)
		}
	}
	return values
}

// Len reports the number of pairs.
func (p Params) Len() int {
	return len(p)
}

// Encode renders the pairs as a query string in pair order.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, pair := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.Value))
	}
	return b.String()
}

// Values converts the pairs to url.Values. Order across keys is lost.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for _, pair := range p {
		values.Add(pair.Key, pair.Value)
	}
	return values
}

// ParseParams splits a raw query string into ordered pairs.
func ParseParams(raw string) (Params, error) {
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return Params{}, nil
	}
	parts := strings.Split(raw, "&")
	params := make(Params, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("parse key %q: %w", rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("parse value for %q: %w", key, err)
		}
		params.Add(key, value)
	}
	return params, nil
}
