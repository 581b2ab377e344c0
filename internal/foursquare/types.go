package foursquare

import (
	"bytes"
	"encoding/json"
)

// Place is a Foursquare place record. Search results and detail lookups
// return different subsets of these fields (and even disagree on the id
// field name), so everything is optional and the normalizer applies the
// fallback rules.
type Place struct {
	FsqID         string       `json:"fsq_id,omitempty"`
	FsqPlaceID    string       `json:"fsq_place_id,omitempty"`
	Name          string       `json:"name,omitempty"`
	Location      *Location    `json:"location,omitempty"`
	Categories    []Category   `json:"categories,omitempty"`
	Distance      *int         `json:"distance,omitempty"`
	Link          string       `json:"link,omitempty"`
	Rating        *float64     `json:"rating,omitempty"`
	Price         *int         `json:"price,omitempty"`
	Hours         *Hours       `json:"hours,omitempty"`
	Website       string       `json:"website,omitempty"`
	Tel           string       `json:"tel,omitempty"`
	Email         string       `json:"email,omitempty"`
	SocialMedia   *SocialMedia `json:"social_media,omitempty"`
	PlacemakerURL string       `json:"placemaker_url,omitempty"`
	Latitude      *float64     `json:"latitude,omitempty"`
	Longitude     *float64     `json:"longitude,omitempty"`
	Geocodes      *Geocodes    `json:"geocodes,omitempty"`
}

// Category is a Foursquare category; ids arrive as strings or numbers
// depending on the endpoint.
type Category struct {
	ID   any    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Location holds the address fields we consume.
type Location struct {
	FormattedAddress string `json:"formatted_address,omitempty"`
}

// Geocodes nests the primary coordinates of a place.
type Geocodes struct {
	Main *Coordinates `json:"main,omitempty"`
}

// Coordinates is a plain latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SocialMedia carries the social handles returned by detail lookups.
type SocialMedia struct {
	FacebookID string `json:"facebook_id,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
}

// Hours is the opening-hours fragment of a place. Foursquare returns it as
// a single object in some payloads and as an array of objects in others;
// decoding keeps the first element either way.
type Hours struct {
	OpenNow *bool  `json:"open_now,omitempty"`
	Display string `json:"display,omitempty"`
}

type hoursObject struct {
	OpenNow *bool  `json:"open_now"`
	Display string `json:"display"`
}

// UnmarshalJSON accepts both the object and the array shape.
func (h *Hours) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []hoursObject
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		if len(list) > 0 {
			h.OpenNow = list[0].OpenNow
			h.Display = list[0].Display
		}
		return nil
	}

	var obj hoursObject
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return err
	}
	h.OpenNow = obj.OpenNow
	h.Display = obj.Display
	return nil
}

// ID returns the place identifier regardless of which field name the
// payload used.
func (p *Place) ID() string {
	if p.FsqID != "" {
		return p.FsqID
	}
	return p.FsqPlaceID
}
