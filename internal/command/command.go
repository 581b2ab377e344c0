package command

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Action tags the kind of request extracted from free text. Search is the
// only variant today; the closed tag leaves room for more without breaking
// callers.
type Action string

// ActionSearchRestaurants is the only action the command schema accepts.
const ActionSearchRestaurants Action = "search_restaurants"

// Command is the validated intent extracted from a free-text message.
// A Command that survives ParseCommand is safe to hand to the param mapper
// without further sanitization.
type Command struct {
	Action     Action     `json:"action" validate:"required,eq=search_restaurants"`
	Parameters Parameters `json:"parameters"`
}

// Parameters carries the search constraints. LLM output is loosely typed,
// so numeric and boolean fields accept string spellings and are coerced on
// decode.
type Parameters struct {
	Query     string     `json:"query" validate:"required"`
	Near      string     `json:"near,omitempty"`
	LL        *LatLng    `json:"ll,omitempty"`
	RadiusM   *FlexInt   `json:"radius_m,omitempty" validate:"omitempty,min=1,max=40000"`
	OpenNow   *FlexBool  `json:"open_now,omitempty"`
	Price     PriceLevel `json:"price,omitempty" validate:"omitempty,oneof=1 2 3 4"`
	Limit     *FlexInt   `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
	MinRating *FlexFloat `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// LatLng is a coordinate pair. Both axes are required when ll is present.
type LatLng struct {
	Latitude  *FlexFloat `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *FlexFloat `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// FlexFloat decodes from a JSON number or a numeric string.
type FlexFloat float64

// UnmarshalJSON accepts 40.7 as well as "40.7".
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("value %q is not a number", s)
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt decodes from a JSON number or numeric string and rejects
// fractional values.
type FlexInt int

// UnmarshalJSON accepts 20 as well as "20"; "20.5" fails.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("value %q is not a number", s)
	}
	if v != math.Trunc(v) {
		return fmt.Errorf("value %q is not an integer", s)
	}
	*i = FlexInt(int(v))
	return nil
}

// FlexBool decodes from a JSON boolean, a boolean-like string such as
// "true" or "1", or a number (non-zero is true).
type FlexBool bool

// UnmarshalJSON accepts true, "true", "1", 1 and friends.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
		*b = FlexBool(v)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*b = v != 0
		return nil
	}
	return fmt.Errorf("value %q is not a boolean", s)
}

func unquote(data []byte) (string, error) {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(s), nil
}
