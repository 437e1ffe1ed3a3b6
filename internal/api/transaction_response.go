package api

import (
	"time"

	"wallet-admin/internal/model"
)

// swagger:model api.TransactionUser
type TransactionUser struct {
	ID          int    `json:"id" example:"7"`
	FullName    string `json:"fullName" example:"John Doe"`
	Email       string `json:"email" example:"john@example.com"`
	PhoneNumber string `json:"phoneNumber" example:"+250788123456"`
}

// swagger:model api.TransactionResponse
type TransactionResponse struct {
	ID            int              `json:"id"`
	User          *TransactionUser `json:"user,omitempty"`
	Type          string           `json:"type" example:"deposit"`
	Amount        float64          `json:"amount" example:"100"`
	BalanceBefore float64          `json:"balanceBefore" example:"50"`
	BalanceAfter  float64          `json:"balanceAfter" example:"150"`
	Description   string           `json:"description,omitempty"`
	DeviceID      string           `json:"deviceId"`
	Status        string           `json:"status" example:"success"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// TransactionListResponse is the data payload of the paginated ledger view.
// swagger:model api.TransactionListResponse
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

func NewTransactionResponse(tx model.Transaction) TransactionResponse {
	out := TransactionResponse{
		ID:            tx.ID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		Description:   tx.Description,
		DeviceID:      tx.DeviceID,
		Status:        tx.Status,
		CreatedAt:     tx.CreatedAt,
	}
	if tx.User != nil {
		out.User = &TransactionUser{
			ID:          tx.User.ID,
			FullName:    tx.User.FullName,
			Email:       tx.User.Email,
			PhoneNumber: tx.User.PhoneNumber,
		}
	}
	return out
}

func NewTransactionListResponse(txs []model.Transaction, p Pagination) TransactionListResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransactionResponse(tx))
	}
	return TransactionListResponse{Transactions: out, Pagination: p}
}
