package foursquare

import (
	"regexp"
	"strconv"

	"github.com/Seanneskie/llm-restaurant-pioneer/internal/command"
)

const (
	// CategoryRestaurants is the fixed Foursquare category id for the
	// restaurant taxonomy root.
	CategoryRestaurants = "4d4b7105d754a06374d81259"

	defaultSearchLimit = 20
	maxSearchLimit     = 50
	maxSearchRadiusM   = 500000
)

var priceRangePairExpr = regexp.MustCompile(`^([1-4]),([1-4])$`)

// SearchParams maps a validated command onto the flat string parameter set
// of the Foursquare search endpoint. Pure and total over valid commands:
// limit and radius are capped at the API's hard limits and at most one of
// near/ll is emitted, with near taking priority.
func SearchParams(cmd *command.Command) map[string]string {
	p := cmd.Parameters

	limit := defaultSearchLimit
	if p.Limit != nil {
		limit = int(*p.Limit)
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	params := map[string]string{
		"query":            p.Query,
		"fsq_category_ids": CategoryRestaurants,
		"limit":            strconv.Itoa(limit),
	}

	if p.Near != "" {
		params["near"] = p.Near
	} else if p.LL != nil && p.LL.Latitude != nil && p.LL.Longitude != nil {
		params["ll"] = formatCoord(float64(*p.LL.Latitude)) + "," + formatCoord(float64(*p.LL.Longitude))
		if p.RadiusM != nil {
			radius := int(*p.RadiusM)
			if radius > maxSearchRadiusM {
				radius = maxSearchRadiusM
			}
			params["radius"] = strconv.Itoa(radius)
		}
	}

	// Omission means "no preference" to the API, so false is never sent.
	if p.OpenNow != nil && bool(*p.OpenNow) {
		params["open_now"] = "true"
	}

	if minPrice, maxPrice, ok := priceMinMax(string(p.Price)); ok {
		params["min_price"] = minPrice
		params["max_price"] = maxPrice
	}

	return params
}

// priceMinMax converts a normalized price into the API's min/max pair. The
// schema only ever emits a single digit, but the "a,b" range form stays
// supported because the mapper's contract accepts it.
func priceMinMax(price string) (string, string, bool) {
	if price == "" {
		return "", "", false
	}
	if len(price) == 1 && price >= "1" && price <= "4" {
		return price, price, true
	}
	if m := priceRangePairExpr.FindStringSubmatch(price); m != nil {
		lo, hi := m[1], m[2]
		if hi < lo {
			lo, hi = hi, lo
		}
		return lo, hi, true
	}
	return "", "", false
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
