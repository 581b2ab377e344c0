package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Seanneskie/llm-restaurant-pioneer/internal/command"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/dto"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/foursquare"
)

// DefaultEnrichLimit caps how many search results get a detail lookup.
const DefaultEnrichLimit = 12

// ErrUpstream marks failures of the model or places collaborators, as
// opposed to invalid input or faults in this service itself.
var ErrUpstream = errors.New("upstream failure")

// CommandParser converts a free-text message into a validated command.
type CommandParser interface {
	ParseCommand(ctx context.Context, message string) (*command.Command, error)
}

// PlacesAPI is the slice of the Foursquare client the pipeline needs.
type PlacesAPI interface {
	Search(ctx context.Context, params map[string]string) ([]foursquare.Place, error)
	Details(ctx context.Context, fsqID, fields string) (*foursquare.Place, error)
}

// SearchService runs the full message-to-results pipeline.
type SearchService struct {
	parser      CommandParser
	places      PlacesAPI
	enrichLimit int
}

// NewSearchService wires the pipeline. A non-positive enrichLimit falls
// back to DefaultEnrichLimit.
func NewSearchService(parser CommandParser, places PlacesAPI, enrichLimit int) *SearchService {
	if enrichLimit <= 0 {
		enrichLimit = DefaultEnrichLimit
	}
	return &SearchService{parser: parser, places: places, enrichLimit: enrichLimit}
}

// Execute translates the message into a command, searches, enriches the
// top results with concurrent detail lookups, normalizes and filters.
// A failed detail lookup degrades that one place to its search record;
// the request as a whole only fails on parse or search errors.
func (s *SearchService) Execute(ctx context.Context, message string) (*dto.ExecuteResponse, error) {
	start := time.Now()

	cmd, err := s.parser.ParseCommand(ctx, message)
	if err != nil {
		var verr *command.ValidationError
		if errors.As(err, &verr) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	params := foursquare.SearchParams(cmd)

	found, err := s.places.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: places search failed: %w", ErrUpstream, err)
	}

	top := found
	if len(top) > s.enrichLimit {
		top = top[:s.enrichLimit]
	}

	detailed := s.enrich(ctx, top)

	results := make([]foursquare.NormalizedPlace, 0, len(detailed))
	for _, place := range detailed {
		results = append(results, foursquare.Normalize(place))
	}

	if cmd.Parameters.MinRating != nil {
		results = filterByRating(results, float64(*cmd.Parameters.MinRating))
	}

	tookMs := time.Since(start).Milliseconds()
	log.Info().
		Str("query", cmd.Parameters.Query).
		Int("results", len(results)).
		Int("enriched", len(detailed)).
		Int64("took_ms", tookMs).
		Msg("search executed")

	return &dto.ExecuteResponse{
		Query:     cmd,
		FsqParams: params,
		Results:   results,
		Meta: dto.Meta{
			Count:    len(results),
			Enriched: len(detailed),
			TookMs:   tookMs,
		},
	}, nil
}

// enrich fans out detail lookups for the given places. Each lookup is
// independently fallible; on failure the lite search record stays in its
// slot. Returns only after every lookup settles.
func (s *SearchService) enrich(ctx context.Context, places []foursquare.Place) []foursquare.Place {
	detailed := make([]foursquare.Place, len(places))
	copy(detailed, places)

	var wg sync.WaitGroup
	for i, place := range places {
		id := place.ID()
		if id == "" {
			continue
		}
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			details, err := s.places.Details(ctx, id, "")
			if err != nil {
				log.Debug().Str("fsq_id", id).Err(err).Msg("detail lookup failed, using search record")
				return
			}
			detailed[i] = *details
		}(i, id)
	}
	wg.Wait()

	return detailed
}

// filterByRating keeps places whose rating is numeric and at least min.
// String fallback ratings never pass.
func filterByRating(results []foursquare.NormalizedPlace, min float64) []foursquare.NormalizedPlace {
	filtered := make([]foursquare.NormalizedPlace, 0, len(results))
	for _, result := range results {
		if rating, ok := result.Rating.(float64); ok && rating >= min {
			filtered = append(filtered, result)
		}
	}
	return filtered
}
