package dto

import (
	"time"

	"finledger/internal/models"
)

// TransactionRequest carries form values for create and update. Everything
// arrives as strings; the service layer owns parsing and validation.
type TransactionRequest struct {
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	CategoryID  string `json:"category_id"`
	Description string `json:"description"`
	Date        string `json:"transaction_date"`
}

type TransactionResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	CategoryID  string `json:"category_id"`
	Description string `json:"description"`
	Date        string `json:"transaction_date"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	DeletedAt   string `json:"deleted_at,omitempty"`
}

type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"total_pages"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"per_page"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          tx.ID.String(),
		Amount:      tx.Amount.StringFixed(2),
		Type:        string(tx.Type),
		CategoryID:  tx.CategoryID.String(),
		Description: tx.Description,
		Date:        tx.Date.Format("2006-01-02"),
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.DeletedAt != nil {
		resp.DeletedAt = tx.DeletedAt.Format(time.RFC3339)
	}
	return resp
}

func NewTransactionListResponse(items []*models.Transaction, total, totalPages, page, perPage int) TransactionListResponse {
	resp := TransactionListResponse{
		Items:      make([]TransactionResponse, 0, len(items)),
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}
	for _, tx := range items {
		resp.Items = append(resp.Items, NewTransactionResponse(tx))
	}
	return resp
}
