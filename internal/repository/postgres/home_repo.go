package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/609harsh/realtor-app/internal/models"
	"github.com/609harsh/realtor-app/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HomeRepo struct{ db *pgxpool.Pool }

func NewHomeRepo(db *pgxpool.Pool) repository.HomeRepository { return &HomeRepo{db: db} }

const homeCols = `id, address, city, price, bedrooms, bathrooms, land_size,
	property_type, image, realtor_id, listed_at, created_at, updated_at`

func scanHome(row pgx.Row) (*models.Home, error) {
	var h models.Home
	err := row.Scan(&h.ID, &h.Address, &h.City, &h.Price, &h.Bedrooms, &h.Bathrooms,
		&h.LandSize, &h.PropertyType, &h.Image, &h.RealtorID, &h.ListedAt,
		&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HomeRepo) List(ctx context.Context, f repository.HomeFilter) ([]models.Home, error) {
	where, args := f.Clauses()
	limit, offset := f.Page()
	args = append(args, limit, offset)

	q := fmt.Sprintf(`SELECT %s FROM homes WHERE %s
		ORDER BY listed_at DESC LIMIT $%d OFFSET $%d`,
		homeCols, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Home{}
	for rows.Next() {
		h, err := scanHome(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	return out, rows.Err()
}

func (r *HomeRepo) Get(ctx context.Context, id string) (*models.Home, error) {
	h, err := scanHome(r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM homes WHERE id=$1`, homeCols), id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return h, err
}

func (r *HomeRepo) Create(ctx context.Context, h *models.Home) (*models.Home, error) {
	return scanHome(r.db.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO homes (id, address, city, price, bedrooms, bathrooms,
			land_size, property_type, image, realtor_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING %s`, homeCols),
		uuid.NewString(), h.Address, h.City, h.Price, h.Bedrooms, h.Bathrooms,
		h.LandSize, string(h.PropertyType), h.Image, h.RealtorID))
}

func (r *HomeRepo) Update(ctx context.Context, id string, u models.HomeUpdate) (*models.Home, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if u.Address != nil {
		add("address", *u.Address)
	}
	if u.City != nil {
		add("city", *u.City)
	}
	if u.Price != nil {
		add("price", *u.Price)
	}
	if u.Bedrooms != nil {
		add("bedrooms", *u.Bedrooms)
	}
	if u.Bathrooms != nil {
		add("bathrooms", *u.Bathrooms)
	}
	if u.LandSize != nil {
		add("land_size", *u.LandSize)
	}
	if u.PropertyType != nil {
		add("property_type", string(*u.PropertyType))
	}

	args = append(args, id)
	q := fmt.Sprintf(`UPDATE homes SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), homeCols)

	h, err := scanHome(r.db.QueryRow(ctx, q, args...))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return h, err
}

func (r *HomeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM homes WHERE id=$1`, id)
	return err
}

func (r *HomeRepo) RealtorID(ctx context.Context, homeID string) (string, error) {
	var rid string
	err := r.db.QueryRow(ctx, `SELECT realtor_id FROM homes WHERE id=$1`, homeID).Scan(&rid)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	return rid, err
}
