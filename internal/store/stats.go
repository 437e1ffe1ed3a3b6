package store

import (
	"context"
	"fmt"

	"wallet-admin/internal/database"
	"wallet-admin/internal/model"
)

// GetDashboardStats computes the aggregate dashboard snapshot. Every sum
// and count coalesces to zero on an empty store.
func GetDashboardStats(ctx context.Context, db database.DB) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}

	if err := db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE is_active),
		        COALESCE(SUM(balance), 0),
		        COALESCE(AVG(balance), 0)
		 FROM users`,
	).Scan(
		&stats.TotalUsers,
		&stats.ActiveUsers,
		&stats.TotalBalance,
		&stats.AvgBalance,
	); err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}

	if err := db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(amount) FILTER (WHERE type = 'deposit'), 0),
		        COUNT(*) FILTER (WHERE type = 'deposit'),
		        COALESCE(SUM(amount) FILTER (WHERE type = 'withdraw'), 0),
		        COUNT(*) FILTER (WHERE type = 'withdraw')
		 FROM transactions`,
	).Scan(
		&stats.TotalTransactions,
		&stats.TotalDeposits,
		&stats.DepositCount,
		&stats.TotalWithdrawals,
		&stats.WithdrawalCount,
	); err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}

	if err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM devices WHERE is_verified = FALSE`,
	).Scan(&stats.PendingDeviceVerifications); err != nil {
		return nil, fmt.Errorf("GetDashboardStats: %w", err)
	}

	return stats, nil
}
