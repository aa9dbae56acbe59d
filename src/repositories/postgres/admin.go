package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// AdminRepository is the pgx-backed implementation of repositories.AdminRepository
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminAccount) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admin_accounts (username, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		admin.Username, admin.PasswordHash,
	).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	return nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminAccount, error) {
	admin := &models.AdminAccount{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at, last_login
		 FROM admin_accounts
		 WHERE username = $1`,
		username,
	).Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt, &admin.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query admin account: %w", err)
	}
	return admin, nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, adminID int64) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE admin_accounts SET last_login = $1 WHERE id = $2",
		time.Now(), adminID,
	)
	return err
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM admin_accounts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admin accounts: %w", err)
	}
	return count, nil
}

var _ repositories.AdminRepository = (*AdminRepository)(nil)
