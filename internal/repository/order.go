package repository

import (
	"context"
	"fmt"

	"moving-estimate-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// CreateOrder writes the customer, its option services and its packages in one transaction
// and returns the generated customer id.
func (r *Repository) CreateOrder(ctx context.Context, order models.Order) (int, error) {
	var customerID int
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		id, err := InsertCustomer(ctx, tx, order.Customer)
		if err != nil {
			return err
		}
		if err := InsertCustomerOptionServices(ctx, tx, id, order.OptionServiceIDs); err != nil {
			return err
		}
		if err := BatchInsertCustomerPackages(ctx, tx, id, order.Packages); err != nil {
			return err
		}
		customerID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return customerID, nil
}

// InsertCustomer inserts a customer row and returns its generated id.
func InsertCustomer(ctx context.Context, db DBTX, c models.Customer) (int, error) {
	sql := `
		INSERT INTO customer (
			old_prefecture_id, new_prefecture_id, customer_name, tel, email,
			old_address, new_address, planned_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING customer_id
	`

	var id int
	err := db.QueryRow(ctx, sql,
		c.OldPrefectureID,
		c.NewPrefectureID,
		c.Name,
		c.Tel,
		c.Email,
		c.OldAddress,
		c.NewAddress,
		c.PlannedDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert customer: %w", err)
	}
	return id, nil
}

// InsertCustomerOptionServices links the selected optional services to a customer.
func InsertCustomerOptionServices(ctx context.Context, db DBTX, customerID int, serviceIDs []int) error {
	for _, serviceID := range serviceIDs {
		_, err := db.Exec(ctx,
			`INSERT INTO customer_option_service (customer_id, service_id) VALUES ($1, $2)`,
			customerID, serviceID,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to insert option service %d: %w", serviceID, err)
		}
	}
	return nil
}

// BatchInsertCustomerPackages inserts all package lines of a customer in one round trip.
func BatchInsertCustomerPackages(ctx context.Context, db DBTX, customerID int, packages []models.PackageLine) error {
	if len(packages) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, p := range packages {
		batch.Queue(
			`INSERT INTO customer_package (customer_id, package_id, package_number) VALUES ($1, $2, $3)`,
			customerID, p.PackageID, p.Quantity,
		)
	}

	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("repository: failed to insert customer packages: %w", err)
	}
	return nil
}
