package models

import "encoding/json"

// Envelope is the `{success, data, message}` wrapper most endpoints use.
// Data is kept raw so the façade can decode it into the caller's type;
// endpoints that return bare payloads skip the wrapper entirely.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Page is the pagination wrapper the list endpoints nest under `data`.
// The backend is not consistent about its count keys (patients use `total`
// and `resultats_par_page`, interventions use `total_elements` and
// `elements_par_page`), so both spellings are mapped and Count() resolves them.
type Page[T any] struct {
	Items        []T `json:"items"`
	CurrentPage  int `json:"page_courante"`
	TotalPages   int `json:"pages_totales"`
	TotalItems   int `json:"total_elements"`
	Total        int `json:"total"`
	PerPage      int `json:"elements_par_page"`
	ResultsPer   int `json:"resultats_par_page"`
	TotalResults int `json:"total_resultats"`
}

// Count returns the total record count regardless of which key the endpoint used.
func (p *Page[T]) Count() int {
	if p.TotalItems > 0 {
		return p.TotalItems
	}
	if p.Total > 0 {
		return p.Total
	}
	return p.TotalResults
}
