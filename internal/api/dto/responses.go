// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "encoding/json"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// ListCollectionsResponse lists the collections of the database.
type ListCollectionsResponse struct {
	Collections []string `json:"collections"`
	Bound       []string `json:"bound"`
}

// ListItemsResponse carries documents in relaxed Extended JSON.
type ListItemsResponse struct {
	Items []json.RawMessage `json:"items"`
	Count int               `json:"count"`
	Limit int64             `json:"limit,omitempty"`
	Skip  int64             `json:"skip,omitempty"`
}

// UpdateItemResponse represents the response for updating a document by id.
type UpdateItemResponse struct {
	Matched    int64           `json:"matched"`
	Modified   int64           `json:"modified"`
	Upserted   int64           `json:"upserted"`
	UpsertedID json.RawMessage `json:"upsertedId,omitempty"`
}

// RemoveItemResponse represents the response for removing a document by id.
type RemoveItemResponse struct {
	Removed int64 `json:"removed"`
}

// CallMethodResponse carries a bound method's result in relaxed Extended JSON.
type CallMethodResponse struct {
	Method string          `json:"method"`
	Result json.RawMessage `json:"result"`
}

// MethodsResponse lists the methods bound on a collection.
type MethodsResponse struct {
	Collection string   `json:"collection"`
	Methods    []string `json:"methods"`
}
