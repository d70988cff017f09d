package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/user"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	rows, err := r.pool.Query(ctx, userTable.insertSQL(), userTable.insertArgs(u)...)
	if err != nil {
		return classify("insert user", err)
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[user.User])
	if err != nil {
		return classify("insert user", err)
	}
	*u = created
	return nil
}

// FindByEmail returns (nil, nil) for an unknown email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	rows, err := r.pool.Query(ctx, userTable.selectSQL("WHERE email = $1"), email)
	if err != nil {
		return nil, classify("find user", err)
	}
	u, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[user.User])
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find user", err)
	}
	return &u, nil
}
