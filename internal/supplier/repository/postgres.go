package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/autoparts/inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Supplier) error {
	query := `
        INSERT INTO suppliers (name, contact_person, phone, address, email, created_at, updated_at)
        VALUES (:name, :contact_person, :phone, :address, :email, :created_at, :updated_at)
        RETURNING id
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, s)
	if err != nil {
		return err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&s.ID); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Supplier, error) {
	var supplier model.Supplier
	query := `SELECT * FROM suppliers WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &supplier, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	query := `SELECT * FROM suppliers ORDER BY name`
	err := r.DB.SelectContext(ctx, &suppliers, query)
	return suppliers, err
}

func (r *PGRepository) Update(ctx context.Context, s *model.Supplier) (bool, error) {
	query := `
        UPDATE suppliers
        SET name = :name, contact_person = :contact_person, phone = :phone,
            address = :address, email = :email, updated_at = :updated_at
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, s)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *PGRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
