package foursquare

import (
	"testing"

	"github.com/Seanneskie/llm-restaurant-pioneer/internal/command"
)

func searchCommand(t *testing.T, mutate func(*command.Parameters)) *command.Command {
	t.Helper()
	cmd := &command.Command{
		Action:     command.ActionSearchRestaurants,
		Parameters: command.Parameters{Query: "tacos"},
	}
	if mutate != nil {
		mutate(&cmd.Parameters)
	}
	return cmd
}

func flexFloat(v float64) *command.FlexFloat {
	f := command.FlexFloat(v)
	return &f
}

func flexInt(v int) *command.FlexInt {
	i := command.FlexInt(v)
	return &i
}

func flexBool(v bool) *command.FlexBool {
	b := command.FlexBool(v)
	return &b
}

func TestSearchParams_Defaults(t *testing.T) {
	params := SearchParams(searchCommand(t, nil))

	if params["query"] != "tacos" {
		t.Fatalf("unexpected query: %s", params["query"])
	}
	if params["fsq_category_ids"] != CategoryRestaurants {
		t.Fatalf("unexpected category: %s", params["fsq_category_ids"])
	}
	if params["limit"] != "20" {
		t.Fatalf("expected default limit 20, got %s", params["limit"])
	}
	for _, key := range []string{"near", "ll", "radius", "open_now", "min_price", "max_price"} {
		if _, ok := params[key]; ok {
			t.Fatalf("expected %s to be omitted, got %s", key, params[key])
		}
	}
}

func TestSearchParams_CapsLimitAndRadius(t *testing.T) {
	params := SearchParams(searchCommand(t, func(p *command.Parameters) {
		p.LL = &command.LatLng{Latitude: flexFloat(40.7), Longitude: flexFloat(-74.0)}
		p.RadiusM = flexInt(1000000)
		p.Limit = flexInt(100)
	}))

	if params["ll"] != "40.7,-74" {
		t.Fatalf("unexpected ll encoding: %s", params["ll"])
	}
	if params["radius"] != "500000" {
		t.Fatalf("expected capped radius, got %s", params["radius"])
	}
	if params["limit"] != "50" {
		t.Fatalf("expected capped limit, got %s", params["limit"])
	}
}

func TestSearchParams_NearTakesPriority(t *testing.T) {
	params := SearchParams(searchCommand(t, func(p *command.Parameters) {
		p.Near = "Dallas"
		p.LL = &command.LatLng{Latitude: flexFloat(40.7), Longitude: flexFloat(-74.0)}
		p.RadiusM = flexInt(1000)
	}))

	if params["near"] != "Dallas" {
		t.Fatalf("unexpected near: %s", params["near"])
	}
	if _, ok := params["ll"]; ok {
		t.Fatalf("expected ll to be dropped when near is set")
	}
	if _, ok := params["radius"]; ok {
		t.Fatalf("expected radius to be dropped when near is set")
	}
}

func TestSearchParams_OpenNow(t *testing.T) {
	params := SearchParams(searchCommand(t, func(p *command.Parameters) {
		p.OpenNow = flexBool(true)
	}))
	if params["open_now"] != "true" {
		t.Fatalf("expected open_now true, got %q", params["open_now"])
	}

	// False must be omitted entirely; omission is not the same as false
	// to the API.
	params = SearchParams(searchCommand(t, func(p *command.Parameters) {
		p.OpenNow = flexBool(false)
	}))
	if _, ok := params["open_now"]; ok {
		t.Fatalf("expected open_now to be omitted for false")
	}
}

func TestSearchParams_Price(t *testing.T) {
	params := SearchParams(searchCommand(t, func(p *command.Parameters) {
		p.Price = "2"
	}))
	if params["min_price"] != "2" || params["max_price"] != "2" {
		t.Fatalf("unexpected price pair: %s/%s", params["min_price"], params["max_price"])
	}
}

func TestPriceMinMax(t *testing.T) {
	cases := []struct {
		price    string
		min, max string
		ok       bool
	}{
		{"", "", "", false},
		{"3", "3", "3", true},
		{"1,3", "1", "3", true},
		{"3,1", "1", "3", true},
		{"5", "", "", false},
		{"cheap", "", "", false},
	}
	for _, tc := range cases {
		min, max, ok := priceMinMax(tc.price)
		if min != tc.min || max != tc.max || ok != tc.ok {
			t.Fatalf("priceMinMax(%q) = %q, %q, %v; want %q, %q, %v", tc.price, min, max, ok, tc.min, tc.max, tc.ok)
		}
	}
}
