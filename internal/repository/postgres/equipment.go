package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"

	"github.com/lib/pq"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, vendor_id, name, brand, model, category, subcategory, description,
	condition, year_purchased, serial_number, daily_rate, weekly_rate, availability, accessories, created_on`

func scanEquipment(row interface{ Scan(...interface{}) error }) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	err := row.Scan(
		&eq.ID, &eq.VendorID, &eq.Name, &eq.Brand, &eq.Model, &eq.Category, &eq.Subcategory,
		&eq.Description, &eq.Condition, &eq.YearPurchased, &eq.SerialNumber,
		&eq.DailyRate, &eq.WeeklyRate, &eq.Availability, pq.Array(&eq.Accessories), &eq.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (vendor_id, name, brand, model, category, subcategory, description,
	              condition, year_purchased, serial_number, daily_rate, weekly_rate, availability, accessories, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		eq.VendorID, eq.Name, eq.Brand, eq.Model, eq.Category, eq.Subcategory, eq.Description,
		eq.Condition, eq.YearPurchased, eq.SerialNumber, eq.DailyRate, eq.WeeklyRate,
		eq.Availability, pq.Array(eq.Accessories), time.Now(),
	).Scan(&eq.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 AND deleted_on IS NULL`
	return scanEquipment(r.db.QueryRowContext(ctx, query, id))
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipment SET name=$1, brand=$2, model=$3, category=$4, subcategory=$5,
	              description=$6, condition=$7, year_purchased=$8, serial_number=$9,
	              daily_rate=$10, weekly_rate=$11, availability=$12, accessories=$13
	          WHERE id=$14 AND deleted_on IS NULL`
	res, err := r.db.ExecContext(ctx, query,
		eq.Name, eq.Brand, eq.Model, eq.Category, eq.Subcategory, eq.Description,
		eq.Condition, eq.YearPurchased, eq.SerialNumber, eq.DailyRate, eq.WeeklyRate,
		eq.Availability, pq.Array(eq.Accessories), eq.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE equipment SET deleted_on = $1 WHERE id = $2 AND deleted_on IS NULL`, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) ListByVendor(ctx context.Context, vendorID, page, pageSize int32) ([]domain.Equipment, int32, error) {
	where := `vendor_id = $1 AND deleted_on IS NULL`
	return r.list(ctx, where, []interface{}{vendorID}, page, pageSize)
}

func (r *equipmentRepository) Search(ctx context.Context, filter repository.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int32, error) {
	where := `deleted_on IS NULL`
	args := []interface{}{}
	idx := 1

	if filter.Query != "" {
		where += fmt.Sprintf(` AND (name ILIKE $%d OR brand ILIKE $%d OR model ILIKE $%d)`, idx, idx, idx)
		args = append(args, "%"+filter.Query+"%")
		idx++
	}
	if filter.Category != "" {
		where += fmt.Sprintf(` AND category = $%d`, idx)
		args = append(args, filter.Category)
		idx++
	}
	if filter.MaxDailyRate > 0 {
		where += fmt.Sprintf(` AND daily_rate <= $%d`, idx)
		args = append(args, filter.MaxDailyRate)
		idx++
	}
	if filter.Availability != "" {
		where += fmt.Sprintf(` AND availability = $%d`, idx)
		args = append(args, filter.Availability)
		idx++
	}

	return r.list(ctx, where, args, page, pageSize)
}

func (r *equipmentRepository) list(ctx context.Context, where string, args []interface{}, page, pageSize int32) ([]domain.Equipment, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM equipment WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM equipment WHERE %s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`,
		equipmentColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *eq)
	}
	return items, count, rows.Err()
}
