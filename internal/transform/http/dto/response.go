package dto

import (
	"github.com/allisson/hashcipher/internal/transform/domain"
)

// TransformResponse contains the encoded digest or cipher frame.
type TransformResponse struct {
	Result string `json:"result"`
}

// OverviewFieldResponse is one labelled row of an overview.
type OverviewFieldResponse struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// OverviewResponse contains the display summary of a request.
type OverviewResponse struct {
	Fields []OverviewFieldResponse `json:"fields"`
}

// MapOverviewResponse converts overview fields to an API response.
func MapOverviewResponse(fields []domain.OverviewField) OverviewResponse {
	response := OverviewResponse{Fields: make([]OverviewFieldResponse, 0, len(fields))}
	for _, field := range fields {
		response.Fields = append(response.Fields, OverviewFieldResponse{
			Label: field.Label,
			Text:  field.Text,
		})
	}
	return response
}

// AlgorithmsResponse lists the documented choices and every name the providers accept.
type AlgorithmsResponse struct {
	domain.Catalog
	SupportedHash   []string `json:"supported_hash"`
	SupportedCipher []string `json:"supported_cipher"`
}

// MapAlgorithmsResponse builds an AlgorithmsResponse.
func MapAlgorithmsResponse(catalog domain.Catalog, hashNames, cipherNames []string) AlgorithmsResponse {
	return AlgorithmsResponse{
		Catalog:         catalog,
		SupportedHash:   hashNames,
		SupportedCipher: cipherNames,
	}
}
