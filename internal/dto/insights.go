package dto

import "finledger/internal/models"

type SummaryResponse struct {
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
	NetSavings    string `json:"net_savings"`
	SavingsRate   string `json:"savings_rate"`
}

type BreakdownEntryResponse struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Total        string `json:"total"`
	Percent      string `json:"percent"`
}

func NewSummaryResponse(s *models.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:   s.TotalIncome.StringFixed(2),
		TotalExpenses: s.TotalExpenses.StringFixed(2),
		NetSavings:    s.NetSavings.StringFixed(2),
		SavingsRate:   s.SavingsRate.StringFixed(1),
	}
}

func NewBreakdownResponse(entries []models.CategoryBreakdownEntry) []BreakdownEntryResponse {
	resp := make([]BreakdownEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, BreakdownEntryResponse{
			CategoryID:   e.CategoryID.String(),
			CategoryName: e.CategoryName,
			Total:        e.Total.StringFixed(2),
			Percent:      e.Percent.StringFixed(1),
		})
	}
	return resp
}
