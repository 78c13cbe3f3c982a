package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-cvs-backend/internal/domain"
)

const userColumns = `id, created_date, created_by, modified_date, last_modified_by,
	voided, voided_reason, retired, retired_reason,
	username, password, full_name`

type userRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationUserRepository(pool *pgxpool.Pool) domain.ApplicationUserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Save(ctx context.Context, user *domain.ApplicationUser) (*domain.ApplicationUser, error) {
	q := querier(ctx, r.pool)
	actor := domain.Actor(ctx)

	if user.ID == 0 {
		err := q.QueryRow(ctx, `
			INSERT INTO application_users (username, password, full_name, created_by, last_modified_by)
			VALUES ($1, $2, $3, $4, $4)
			RETURNING id, created_date, modified_date`,
			user.Username, user.Password, user.FullName, actor,
		).Scan(&user.ID, &user.CreatedDate, &user.ModifiedDate)
		if err != nil {
			return nil, err
		}
		user.CreatedBy = actor
		user.LastModifiedBy = actor
		return user, nil
	}

	err := q.QueryRow(ctx, `
		UPDATE application_users
		SET username = $1, password = $2, full_name = $3,
			voided = $4, voided_reason = $5, retired = $6, retired_reason = $7,
			modified_date = now(), last_modified_by = $8
		WHERE id = $9
		RETURNING modified_date`,
		user.Username, user.Password, user.FullName,
		user.Voided, user.VoidedReason, user.Retired, user.RetiredReason,
		actor, user.ID,
	).Scan(&user.ModifiedDate)
	if err != nil {
		return nil, err
	}
	user.LastModifiedBy = actor
	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.ApplicationUser, error) {
	row := querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM application_users WHERE id = $1`, id)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (r *userRepository) FindAll(ctx context.Context) ([]domain.ApplicationUser, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+userColumns+` FROM application_users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepository) FindAllByPortfolio(ctx context.Context, portfolioID int64) ([]domain.ApplicationUser, error) {
	rows, err := querier(ctx, r.pool).Query(ctx, `
		SELECT `+prefixColumns("u", userColumns)+`
		FROM application_users u
		JOIN application_user_portfolio up ON up.application_user_id = u.id
		WHERE up.portfolio_id = $1
		ORDER BY u.id`, portfolioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepository) AttachPortfolio(ctx context.Context, userID, portfolioID int64) error {
	_, err := querier(ctx, r.pool).Exec(ctx, `
		INSERT INTO application_user_portfolio (application_user_id, portfolio_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, userID, portfolioID)
	return err
}

func (r *userRepository) HasPortfolio(ctx context.Context, userID, portfolioID int64) (bool, error) {
	var exists bool
	err := querier(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM application_user_portfolio
			WHERE application_user_id = $1 AND portfolio_id = $2
		)`, userID, portfolioID).Scan(&exists)
	return exists, err
}

func scanUser(s rowScanner) (*domain.ApplicationUser, error) {
	var u domain.ApplicationUser
	err := s.Scan(
		&u.ID, &u.CreatedDate, &u.CreatedBy, &u.ModifiedDate, &u.LastModifiedBy,
		&u.Voided, &u.VoidedReason, &u.Retired, &u.RetiredReason,
		&u.Username, &u.Password, &u.FullName,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]domain.ApplicationUser, error) {
	users := make([]domain.ApplicationUser, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}
