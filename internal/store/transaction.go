package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wallet-admin/internal/database"
	"wallet-admin/internal/model"
)

// TransactionFilter narrows the ledger listing. Zero values mean "no
// constraint"; either date bound may be set on its own.
type TransactionFilter struct {
	Type      string
	UserID    int
	StartDate *time.Time
	EndDate   *time.Time
}

// buildTransactionWhere renders the filter as a WHERE clause over the
// aliased transactions table, returning the clause and its arguments.
func buildTransactionWhere(f TransactionFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Type != "" {
		add("t.type = $%d", f.Type)
	}
	if f.UserID != 0 {
		add("t.user_id = $%d", f.UserID)
	}
	if f.StartDate != nil {
		add("t.created_at >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("t.created_at <= $%d", *f.EndDate)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListTransactions returns one page of ledger entries newest first, each
// carrying the owning user's identity, plus the total match count.
func ListTransactions(ctx context.Context, db database.DB, page, limit int, f TransactionFilter) ([]model.Transaction, int, error) {
	where, args := buildTransactionWhere(f)

	var total int
	if err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions t`+where,
		args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListTransactions: %w", err)
	}

	listSQL := fmt.Sprintf(
		`SELECT t.id, t.user_id, t.type, t.amount, t.balance_before, t.balance_after,
		        t.description, t.device_id, t.status, t.created_at,
		        u.full_name, u.email, u.phone_number
		 FROM transactions t
		 JOIN users u ON u.id = t.user_id%s
		 ORDER BY t.created_at DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, (page-1)*limit)

	rows, err := db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListTransactions: %w", err)
	}
	defer rows.Close()

	txs := []model.Transaction{}
	for rows.Next() {
		var tx model.Transaction
		var user model.UserSummary
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.Type,
			&tx.Amount,
			&tx.BalanceBefore,
			&tx.BalanceAfter,
			&tx.Description,
			&tx.DeviceID,
			&tx.Status,
			&tx.CreatedAt,
			&user.FullName,
			&user.Email,
			&user.PhoneNumber,
		); err != nil {
			return nil, 0, fmt.Errorf("ListTransactions: %w", err)
		}
		user.ID = tx.UserID
		tx.User = &user
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListTransactions: %w", err)
	}
	return txs, total, nil
}

// CreateTransaction appends a ledger row. The admin surface never calls
// this; it exists for the dev fixture loader standing in for the platform's
// deposit/withdraw writer.
func CreateTransaction(ctx context.Context, db database.DB, tx *model.Transaction) (*model.Transaction, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO transactions (user_id, type, amount, balance_before, balance_after, description, device_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		tx.UserID,
		tx.Type,
		tx.Amount,
		tx.BalanceBefore,
		tx.BalanceAfter,
		tx.Description,
		tx.DeviceID,
		tx.Status,
	)
	if err := row.Scan(&tx.ID, &tx.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateTransaction: %w", err)
	}
	return tx, nil
}
