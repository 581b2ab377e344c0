package dto

import (
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/command"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/foursquare"
)

// ExecuteResponse is the success payload of /api/execute. The field names
// are part of the wire contract consumed by existing clients.
type ExecuteResponse struct {
	Query     *command.Command             `json:"query"`
	FsqParams map[string]string            `json:"fsqParams"`
	Results   []foursquare.NormalizedPlace `json:"results"`
	Meta      Meta                         `json:"meta"`
}

// Meta summarizes how a request was fulfilled.
type Meta struct {
	Count    int   `json:"count"`
	Enriched int   `json:"enriched"`
	TookMs   int64 `json:"took_ms"`
}
