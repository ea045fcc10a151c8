package dto

import "finledger/internal/models"

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	IsPredefined bool   `json:"is_predefined"`
	Global       bool   `json:"global"`
}

func NewCategoryResponse(cat *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:           cat.ID.String(),
		Name:         cat.Name,
		IsPredefined: cat.IsPredefined,
		Global:       cat.Global(),
	}
}

func NewCategoryListResponse(cats []*models.Category) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		resp = append(resp, NewCategoryResponse(cat))
	}
	return resp
}
