package command

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	priceDigitExpr  = regexp.MustCompile(`^[1-4]$`)
	priceCSVExpr    = regexp.MustCompile(`^[1-4](?:,[1-4])*$`)
	priceRangeExpr  = regexp.MustCompile(`^([1-4])\s*-\s*([1-4])$`)
	priceDollarExpr = regexp.MustCompile(`^\$+$`)

	priceCheapExpr     = regexp.MustCompile(`cheap|budget|inexpensive|low`)
	priceModerateExpr  = regexp.MustCompile(`mid|moderate`)
	priceExpensiveExpr = regexp.MustCompile(`expensive|premium`)
	priceLuxuryExpr    = regexp.MustCompile(`luxury`)
)

// PriceLevel is a single Foursquare price tier, "1" through "4". The empty
// value means no price constraint.
type PriceLevel string

// UnmarshalJSON runs the raw value through NormalizePrice, so informal
// spellings like "$$$" or "cheap" decode to a tier and unrecognized input
// decodes to the empty value rather than failing the whole command.
func (p *PriceLevel) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = NormalizePrice(v)
	return nil
}

// NormalizePrice coerces the many informal price spellings into a tier.
// Accepted, in priority order: an exact digit 1-4, a number stringifying to
// 1-4, a hyphenated range (lower bound wins), a comma-separated list (first
// entry wins), a run of dollar signs (its length; runs longer than four
// produce an out-of-range tier that fails enum validation), and the
// keywords cheap/budget/inexpensive/low, mid/moderate, expensive/premium,
// luxury. Anything else yields the empty value, which downstream treats as
// "price not supplied".
func NormalizePrice(v any) PriceLevel {
	if v == nil {
		return ""
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		s = t.String()
	case int:
		s = strconv.Itoa(t)
	default:
		s = fmt.Sprint(t)
	}
	s = strings.ToLower(strings.TrimSpace(s))

	if priceDigitExpr.MatchString(s) {
		return PriceLevel(s)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if d := strconv.FormatFloat(f, 'f', -1, 64); priceDigitExpr.MatchString(d) {
			return PriceLevel(d)
		}
	}

	if m := priceRangeExpr.FindStringSubmatch(s); m != nil {
		lo := m[1]
		if m[2] < lo {
			lo = m[2]
		}
		return PriceLevel(lo)
	}

	if priceCSVExpr.MatchString(s) {
		return PriceLevel(strings.SplitN(s, ",", 2)[0])
	}

	if priceDollarExpr.MatchString(s) {
		return PriceLevel(strconv.Itoa(len(s)))
	}

	switch {
	case priceCheapExpr.MatchString(s):
		return "1"
	case priceModerateExpr.MatchString(s):
		return "2"
	case priceExpensiveExpr.MatchString(s):
		return "3"
	case priceLuxuryExpr.MatchString(s):
		return "4"
	}

	return ""
}
