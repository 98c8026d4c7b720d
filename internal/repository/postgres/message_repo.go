package postgres

import (
	"context"

	"github.com/609harsh/realtor-app/internal/models"
	"github.com/609harsh/realtor-app/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepo struct{ db *pgxpool.Pool }

func NewMessageRepo(db *pgxpool.Pool) repository.MessageRepository { return &MessageRepo{db: db} }

func (r *MessageRepo) Create(ctx context.Context, m *models.Message) (*models.Message, error) {
	var out models.Message
	err := r.db.QueryRow(ctx, `
		INSERT INTO messages (id, home_id, buyer_id, realtor_id, body)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, home_id, buyer_id, realtor_id, body, created_at`,
		uuid.NewString(), m.HomeID, m.BuyerID, m.RealtorID, m.Body).
		Scan(&out.ID, &out.HomeID, &out.BuyerID, &out.RealtorID, &out.Body, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MessageRepo) ListByHome(ctx context.Context, homeID string) ([]models.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, home_id, buyer_id, realtor_id, body, created_at
		FROM messages WHERE home_id=$1 ORDER BY created_at`, homeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.HomeID, &m.BuyerID, &m.RealtorID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
