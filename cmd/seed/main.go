// Command seed loads demo fixtures into a development database: a handful
// of users with registered devices in mixed trust states and a balanced
// ledger history. It stands in for the user-facing platform that normally
// writes these rows.
package main

import (
	"context"
	"fmt"
	"log"

	"wallet-admin/internal/config"
	"wallet-admin/internal/database"
	"wallet-admin/internal/model"
	"wallet-admin/internal/service"
	"wallet-admin/internal/store"

	"github.com/google/uuid"
)

type fixture struct {
	fullName string
	email    string
	phone    string
	balance  float64
	devices  []string
	verified int // how many of the devices start verified
}

var fixtures = []fixture{
	{"John Doe", "john@example.com", "+250788100001", 1500.25, []string{"Pixel 8", "iPad Mini"}, 1},
	{"Jane Smith", "jane@example.com", "+250788100002", 320.00, []string{"iPhone 15"}, 0},
	{"Eric Mugisha", "eric@example.com", "+250788100003", 87.50, []string{"Galaxy S24", "ThinkPad X1", "Redmi Note"}, 2},
	{"Aline Uwase", "aline@example.com", "+250788100004", 0, []string{"Tecno Spark"}, 0},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %v", err)
	}

	hash, err := service.HashPassword("User@test")
	if err != nil {
		return err
	}

	for _, f := range fixtures {
		user, err := store.CreateUser(ctx, db, &model.User{
			FullName:     f.fullName,
			Email:        f.email,
			PhoneNumber:  f.phone,
			PasswordHash: hash,
			Balance:      f.balance,
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		deviceIDs := make([]string, 0, len(f.devices))
		for i, name := range f.devices {
			d := &model.Device{
				DeviceID:   uuid.NewString(),
				DeviceName: name,
			}
			if err := store.RegisterDevice(ctx, db, user.ID, d); err != nil {
				return err
			}
			// Trusted devices go through the same transition the admin
			// surface uses, so verified_at is stamped consistently.
			if i < f.verified {
				if _, err := store.VerifyDevice(ctx, db, user.ID, d.DeviceID); err != nil {
					return err
				}
			}
			deviceIDs = append(deviceIDs, d.DeviceID)
		}

		if err := seedLedger(ctx, db, user, deviceIDs[0]); err != nil {
			return err
		}
		log.Printf("seeded user %s (%d devices)", user.Email, len(deviceIDs))
	}
	return nil
}

// seedLedger writes a deposit/withdraw pair whose snapshots land on the
// user's current balance.
func seedLedger(ctx context.Context, db database.DB, user *model.User, deviceID string) error {
	deposit := user.Balance + 100
	if _, err := store.CreateTransaction(ctx, db, &model.Transaction{
		UserID:        user.ID,
		Type:          model.TransactionDeposit,
		Amount:        deposit,
		BalanceBefore: 0,
		BalanceAfter:  deposit,
		Description:   "initial deposit",
		DeviceID:      deviceID,
		Status:        model.TransactionSuccess,
	}); err != nil {
		return err
	}

	_, err := store.CreateTransaction(ctx, db, &model.Transaction{
		UserID:        user.ID,
		Type:          model.TransactionWithdraw,
		Amount:        100,
		BalanceBefore: deposit,
		BalanceAfter:  user.Balance,
		Description:   "atm withdrawal",
		DeviceID:      deviceID,
		Status:        model.TransactionSuccess,
	})
	return err
}
