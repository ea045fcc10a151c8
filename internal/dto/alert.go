package dto

import "finledger/internal/models"

type AlertResponse struct {
	Kind             string                   `json:"kind"`
	Severity         string                   `json:"severity"`
	Title            string                   `json:"title"`
	Message          string                   `json:"message"`
	BudgetExceeded   *BudgetExceededPayload   `json:"budget_exceeded,omitempty"`
	LargeTransaction *LargeTransactionPayload `json:"large_transaction,omitempty"`
}

type BudgetExceededPayload struct {
	Percent          string `json:"percent"`
	ThresholdPercent string `json:"threshold_percent"`
}

type LargeTransactionPayload struct {
	TransactionID   string `json:"transaction_id"`
	Amount          string `json:"amount"`
	PercentOfIncome string `json:"percent_of_income"`
	Date            string `json:"transaction_date"`
	Description     string `json:"description"`
	CategoryName    string `json:"category_name"`
}

func NewAlertListResponse(alerts []models.Alert) []AlertResponse {
	resp := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out := AlertResponse{
			Kind:     string(a.Kind),
			Severity: string(a.Severity),
			Title:    a.Title,
			Message:  a.Message,
		}
		if a.BudgetExceeded != nil {
			out.BudgetExceeded = &BudgetExceededPayload{
				Percent:          a.BudgetExceeded.Percent.StringFixed(1),
				ThresholdPercent: a.BudgetExceeded.ThresholdPercent.String(),
			}
		}
		if a.LargeTransaction != nil {
			out.LargeTransaction = &LargeTransactionPayload{
				TransactionID:   a.LargeTransaction.TransactionID.String(),
				Amount:          a.LargeTransaction.Amount.StringFixed(2),
				PercentOfIncome: a.LargeTransaction.PercentOfIncome.StringFixed(1),
				Date:            a.LargeTransaction.Date.Format("2006-01-02"),
				Description:     a.LargeTransaction.Description,
				CategoryName:    a.LargeTransaction.CategoryName,
			}
		}
		resp = append(resp, out)
	}
	return resp
}
