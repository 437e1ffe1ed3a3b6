package model

import "time"

// Transaction types.
const (
	TransactionDeposit  = "deposit"
	TransactionWithdraw = "withdraw"
)

// Transaction statuses.
const (
	TransactionSuccess = "success"
	TransactionFailed  = "failed"
)

// Transaction is an immutable ledger entry. Rows are written by the
// deposit/withdraw side of the platform; the admin surface only reads them.
type Transaction struct {
	ID            int       `db:"id" json:"id"`
	UserID        int       `db:"user_id" json:"userId"`
	Type          string    `db:"type" json:"type"`
	Amount        float64   `db:"amount" json:"amount"`
	BalanceBefore float64   `db:"balance_before" json:"balanceBefore"`
	BalanceAfter  float64   `db:"balance_after" json:"balanceAfter"`
	Description   string    `db:"description" json:"description,omitempty"`
	DeviceID      string    `db:"device_id" json:"deviceId"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`

	// User identity joined in for the admin listing.
	User *UserSummary `json:"user,omitempty"`
}

// UserSummary is the slice of user identity attached to listed transactions.
type UserSummary struct {
	ID          int    `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// DashboardStats is the aggregate snapshot behind the admin dashboard.
// Every field is zero-valued, never absent, when the store is empty.
type DashboardStats struct {
	TotalUsers                 int     `json:"totalUsers"`
	ActiveUsers                int     `json:"activeUsers"`
	TotalTransactions          int     `json:"totalTransactions"`
	TotalBalance               float64 `json:"totalBalance"`
	AvgBalance                 float64 `json:"avgBalance"`
	TotalDeposits              float64 `json:"totalDeposits"`
	DepositCount               int     `json:"depositCount"`
	TotalWithdrawals           float64 `json:"totalWithdrawals"`
	WithdrawalCount            int     `json:"withdrawalCount"`
	PendingDeviceVerifications int     `json:"pendingDeviceVerifications"`
}
