package dto

import "github.com/lavadero-app/lavadero-backend/internal/core/domain"

// CreateWasherRequest creates a washer.
type CreateWasherRequest struct {
	Name     string `json:"nombre" binding:"required"`
	LastName string `json:"apellido"`
}

// WasherResponse is the public view of a washer.
type WasherResponse struct {
	WasherID string `json:"id"`
	Name     string `json:"nombre"`
	LastName string `json:"apellido"`
	Active   bool   `json:"activo"`
}

// ToWasherResponse converts a domain.Washer.
func ToWasherResponse(w *domain.Washer) WasherResponse {
	return WasherResponse{
		WasherID: w.WasherID,
		Name:     w.Name,
		LastName: w.LastName,
		Active:   w.Active,
	}
}

// ToWasherListResponse converts a slice of domain.Washer.
func ToWasherListResponse(washers []domain.Washer) []WasherResponse {
	out := make([]WasherResponse, len(washers))
	for i := range washers {
		out[i] = ToWasherResponse(&washers[i])
	}
	return out
}
