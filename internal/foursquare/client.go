package foursquare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Foursquare Places API origin.
	DefaultBaseURL = "https://places-api.foursquare.com/"

	// DefaultDetailFields is the field selector used for detail lookups
	// when the caller does not supply one.
	DefaultDetailFields = "rating,price,hours,website,tel,email,social_media,location,categories,geocodes,link"

	apiVersion = "2025-06-17"
)

// Client talks to the Foursquare Places API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a Foursquare client. A nil http.Client gets a bounded
// default; an empty baseURL falls back to the production API.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		apiKey:     apiKey,
	}
}

type searchResponse struct {
	Results []Place `json:"results"`
}

// Search runs a place search with the given flat parameter set and returns
// the lite place records.
func (c *Client) Search(ctx context.Context, params map[string]string) ([]Place, error) {
	query := url.Values{}
	for key, value := range params {
		if value != "" {
			query.Set(key, value)
		}
	}

	req, err := c.newRequest(ctx, "places/search?"+query.Encode())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("foursquare search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("foursquare search error: %s", resp.Status)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("could not decode foursquare search response: %w", err)
	}
	return decoded.Results, nil
}

// Details fetches the rich record for one place. An empty fields selector
// requests DefaultDetailFields.
func (c *Client) Details(ctx context.Context, fsqID, fields string) (*Place, error) {
	if fields == "" {
		fields = DefaultDetailFields
	}

	query := url.Values{}
	query.Set("fields", fields)

	req, err := c.newRequest(ctx, "places/"+url.PathEscape(fsqID)+"?"+query.Encode())
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("foursquare details request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("foursquare details error: %s %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var place Place
	if err := json.NewDecoder(resp.Body).Decode(&place); err != nil {
		return nil, fmt.Errorf("could not decode foursquare details response: %w", err)
	}
	return &place, nil
}

func (c *Client) newRequest(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create foursquare request: %w", err)
	}
	req.Header.Set("X-Places-Api-Version", apiVersion)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}
