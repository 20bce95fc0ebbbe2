package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"charges/internal/domain"
	"charges/internal/port"
)

type chargeRepo struct {
	db *sqlx.DB
}

// NewChargeRepo creates a new PostgreSQL-backed ChargeRepository.
func NewChargeRepo(db *sqlx.DB) port.ChargeRepository {
	return &chargeRepo{db: db}
}

func (r *chargeRepo) GetOrNull(ctx context.Context, id domain.ChargeIdentifier) (*domain.Charge, error) {
	var charge domain.Charge
	err := r.db.GetContext(ctx, &charge,
		`SELECT id, sender_provided_charge_id, owner_id, type, resolution, tax_indicator, version
		FROM charges
		WHERE sender_provided_charge_id = $1 AND owner_id = $2 AND type = $3`,
		id.SenderProvidedChargeID, id.OwnerID, int(id.Type))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("chargeRepo.GetOrNull: %w", err)
	}

	err = r.db.SelectContext(ctx, &charge.Periods,
		`SELECT name, description, vat_classification, transparent_invoicing, start_date_time, end_date_time
		FROM charge_periods WHERE charge_id = $1 ORDER BY start_date_time`, charge.ID)
	if err != nil {
		return nil, fmt.Errorf("chargeRepo.GetOrNull periods: %w", err)
	}

	err = r.db.SelectContext(ctx, &charge.Points,
		`SELECT position, price, time FROM charge_points WHERE charge_id = $1 ORDER BY time`, charge.ID)
	if err != nil {
		return nil, fmt.Errorf("chargeRepo.GetOrNull points: %w", err)
	}
	return &charge, nil
}

func (r *chargeRepo) Save(ctx context.Context, changes port.ChargeChanges) error {
	if changes.IsEmpty() {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("chargeRepo.Save begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, charge := range changes.Added {
		if err := insertCharge(ctx, tx, charge); err != nil {
			return fmt.Errorf("chargeRepo.Save: %w", err)
		}
	}
	for _, charge := range changes.Updated {
		if err := updateCharge(ctx, tx, charge); err != nil {
			return fmt.Errorf("chargeRepo.Save: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("chargeRepo.Save commit: %w", err)
	}

	for _, charge := range changes.Added {
		charge.Version = 1
	}
	for _, charge := range changes.Updated {
		charge.Version++
	}
	return nil
}

func insertCharge(ctx context.Context, tx *sqlx.Tx, charge *domain.Charge) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO charges (id, sender_provided_charge_id, owner_id, type, resolution, tax_indicator, version)
		VALUES ($1, $2, $3, $4, $5, $6, 1)`,
		charge.ID, charge.SenderProvidedChargeID, charge.OwnerID,
		int(charge.Type), int(charge.Resolution), charge.TaxIndicator)
	if err != nil {
		if isUniqueViolation(err, "uq_charges_identifier") {
			return fmt.Errorf("charge %s: %w", charge.SenderProvidedChargeID, domain.ErrDuplicateCharge)
		}
		return fmt.Errorf("inserting charge %s: %w", charge.SenderProvidedChargeID, err)
	}
	return writeHistory(ctx, tx, charge)
}

// updateCharge replaces the stored charge and its history. The row is only
// written while its version still matches the one charge was read at.
func updateCharge(ctx context.Context, tx *sqlx.Tx, charge *domain.Charge) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE charges SET resolution = $1, tax_indicator = $2, version = version + 1
		WHERE id = $3 AND version = $4`,
		int(charge.Resolution), charge.TaxIndicator, charge.ID, charge.Version)
	if err != nil {
		return fmt.Errorf("updating charge %s: %w", charge.SenderProvidedChargeID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating charge %s: %w", charge.SenderProvidedChargeID, err)
	}
	if rows == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM charges WHERE id = $1)`, charge.ID); err != nil {
			return fmt.Errorf("checking charge %s: %w", charge.SenderProvidedChargeID, err)
		}
		if exists {
			return fmt.Errorf("charge %s: %w", charge.SenderProvidedChargeID, domain.ErrConcurrentUpdate)
		}
		return fmt.Errorf("charge %s: %w", charge.SenderProvidedChargeID, domain.ErrChargeNotFound)
	}

	for _, table := range []string{"charge_periods", "charge_points"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE charge_id = $1", charge.ID); err != nil {
			return fmt.Errorf("clearing %s of charge %s: %w", table, charge.SenderProvidedChargeID, err)
		}
	}
	return writeHistory(ctx, tx, charge)
}

// writeHistory inserts the periods and points of charge.
func writeHistory(ctx context.Context, tx *sqlx.Tx, charge *domain.Charge) error {
	for i := range charge.Periods {
		p := &charge.Periods[i]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO charge_periods
				(charge_id, name, description, vat_classification, transparent_invoicing, start_date_time, end_date_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			charge.ID, p.Name, p.Description, int(p.VatClassification), p.TransparentInvoicing,
			p.StartDateTime.UTC(), p.EndDateTime.UTC())
		if err != nil {
			return fmt.Errorf("inserting period: %w", err)
		}
	}
	for i := range charge.Points {
		p := &charge.Points[i]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO charge_points (charge_id, position, price, time) VALUES ($1, $2, $3, $4)`,
			charge.ID, p.Position, p.Price, p.Time.UTC())
		if err != nil {
			return fmt.Errorf("inserting point %d: %w", p.Position, err)
		}
	}
	return nil
}
