package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"rental-sim/domain"
)

// ParseValue reads a number typed by a person. Both "0.075" and "0,075" are
// accepted; integer fields are truncated toward zero.
func ParseValue(raw string, integer bool) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if integer {
		d = d.Truncate(0)
	}
	return d.InexactFloat64(), nil
}

// ParseParameters overlays raw text values, keyed by field key, on base.
func ParseParameters(base domain.ParameterSet, raw map[string]string) (domain.ParameterSet, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f, ok := domain.FieldByKey(key)
		if !ok {
			return domain.ParameterSet{}, &InvalidParameterError{Field: key, Reason: "unknown field"}
		}
		v, err := ParseValue(raw[key], f.Integer)
		if err != nil {
			return domain.ParameterSet{}, &InvalidParameterError{
				Field:  key,
				Reason: fmt.Sprintf("%q is not a number", raw[key]),
			}
		}
		if f.Integer && (v < math.MinInt || v >= math.MaxInt) {
			return domain.ParameterSet{}, &InvalidParameterError{
				Field:  key,
				Reason: fmt.Sprintf("%q is out of range", raw[key]),
			}
		}
		f.Set(&base, v)
	}
	return base, nil
}
