package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ibeloyar/courierdesk/internal/model"
)

func (r *Repository) CreateRider(ctx context.Context, rider model.Rider) (int64, error) {
	var id int64

	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`INSERT INTO riders (login, password) VALUES ($1, $2) RETURNING id`,
			rider.Login,
			rider.Password,
		).Scan(&id)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, model.ErrRiderAlreadyExist
		}
		return 0, fmt.Errorf("create rider: %w", err)
	}

	return id, nil
}

// GetRiderByLogin - nil, nil если курьер не найден
func (r *Repository) GetRiderByLogin(ctx context.Context, login string) (*model.Rider, error) {
	var rider model.Rider

	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`SELECT id, login, password, created_at FROM riders WHERE login = $1`,
			login,
		).Scan(&rider.ID, &rider.Login, &rider.Password, &rider.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rider by login: %w", err)
	}

	return &rider, nil
}
