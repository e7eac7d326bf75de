package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"happenly/internal/domain"
)

type vendorRepository struct {
	DB *sql.DB
}

func NewVendorRepository(db *sql.DB) domain.VendorRepository {
	return &vendorRepository{
		DB: db,
	}
}

const vendorColumns = `id, event_id, name, type, contact, cost, created_at, updated_at`

func scanVendor(row interface{ Scan(...interface{}) error }) (*domain.Vendor, error) {
	v := &domain.Vendor{}
	var typeNull, contactNull sql.NullString
	var costNull sql.NullFloat64
	err := row.Scan(&v.ID, &v.EventID, &v.Name, &typeNull, &contactNull, &costNull, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if typeNull.Valid {
		v.Type = &typeNull.String
	}
	if contactNull.Valid {
		v.Contact = &contactNull.String
	}
	if costNull.Valid {
		v.Cost = &costNull.Float64
	}
	return v, nil
}

func (r *vendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	query := `
		INSERT INTO vendors (event_id, name, type, contact, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		v.EventID, v.Name, v.Type, v.Contact, v.Cost, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	v, err := scanVendor(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *vendorRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE event_id = $1 ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	vendors := make([]*domain.Vendor, 0)
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *vendorRepository) Update(ctx context.Context, id string, upd domain.VendorUpdate) (*domain.Vendor, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.Contact != nil {
		add("contact", *upd.Contact)
	}
	if upd.Cost != nil {
		add("cost", *upd.Cost)
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE vendors SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, vendorColumns)
	v, err := scanVendor(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *vendorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
