package foursquare

import "strings"

const webOrigin = "https://foursquare.com"

// Fallback literals for fields the upstream record may omit. Rating,
// price_level and open_now carry these strings alongside numeric/boolean
// success values; existing clients depend on the mixed contract.
const (
	fallbackAddress    = "Address not available"
	fallbackRating     = "No Rating"
	fallbackPriceLevel = "No Price Level"
	fallbackOpenNow    = "False"
	fallbackHours      = "Hours not available"
)

// NormalizedPlace is the stable output shape of the service. Constructed
// once per raw place and never mutated afterwards.
type NormalizedPlace struct {
	FsqID      string   `json:"fsq_id,omitempty"`
	Name       string   `json:"name,omitempty"`
	Address    string   `json:"address"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Cuisine    []string `json:"cuisine"`
	Rating     any      `json:"rating"`
	PriceLevel any      `json:"price_level"`
	OpenNow    any      `json:"open_now"`
	Hours      string   `json:"hours"`
	FsqLink    string   `json:"fsq_link,omitempty"`
	URL        string   `json:"url,omitempty"`
	Tel        string   `json:"tel,omitempty"`
	Email      string   `json:"email,omitempty"`
	DistanceM  *int     `json:"distance_m,omitempty"`
}

// Normalize flattens either place shape into a NormalizedPlace. It never
// fails: every missing field degrades to its documented fallback.
func Normalize(place Place) NormalizedPlace {
	latitude := place.Latitude
	longitude := place.Longitude
	if place.Geocodes != nil && place.Geocodes.Main != nil {
		main := place.Geocodes.Main
		latitude = &main.Latitude
		longitude = &main.Longitude
	}

	normalized := NormalizedPlace{
		FsqID:      place.ID(),
		Name:       place.Name,
		Address:    fallbackAddress,
		Latitude:   latitude,
		Longitude:  longitude,
		Cuisine:    categoryNames(place.Categories),
		Rating:     any(fallbackRating),
		PriceLevel: any(fallbackPriceLevel),
		OpenNow:    any(fallbackOpenNow),
		Hours:      fallbackHours,
		FsqLink:    place.Link,
		URL:        resolveURL(place),
		Tel:        place.Tel,
		Email:      place.Email,
		DistanceM:  place.Distance,
	}

	if place.Location != nil && place.Location.FormattedAddress != "" {
		normalized.Address = place.Location.FormattedAddress
	}
	if place.Rating != nil {
		normalized.Rating = *place.Rating
	}
	if place.Price != nil {
		normalized.PriceLevel = *place.Price
	}
	if place.Hours != nil {
		if place.Hours.OpenNow != nil {
			normalized.OpenNow = *place.Hours.OpenNow
		}
		if place.Hours.Display != "" {
			normalized.Hours = place.Hours.Display
		}
	}

	return normalized
}

// categoryNames maps categories to their names, dropping empties and
// duplicates. Order follows first appearance.
func categoryNames(categories []Category) []string {
	seen := make(map[string]struct{}, len(categories))
	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		if cat.Name == "" {
			continue
		}
		if _, dup := seen[cat.Name]; dup {
			continue
		}
		seen[cat.Name] = struct{}{}
		names = append(names, cat.Name)
	}
	return names
}

// resolveURL picks the best outbound link for a place: the explicit
// website, then the fsq link (absolutized when relative), then the
// placemaker URL.
func resolveURL(place Place) string {
	if place.Website != "" {
		return place.Website
	}
	if place.Link != "" {
		if strings.HasPrefix(place.Link, "/places/") {
			return webOrigin + place.Link
		}
		return place.Link
	}
	return place.PlacemakerURL
}
