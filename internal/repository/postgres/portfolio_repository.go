package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-cvs-backend/internal/domain"
)

const portfolioColumns = `id, created_date, created_by, modified_date, last_modified_by,
	voided, voided_reason, retired, retired_reason, name`

type portfolioRepository struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepository(pool *pgxpool.Pool) domain.PortfolioRepository {
	return &portfolioRepository{pool: pool}
}

func (r *portfolioRepository) Save(ctx context.Context, portfolio *domain.Portfolio) (*domain.Portfolio, error) {
	q := querier(ctx, r.pool)
	actor := domain.Actor(ctx)

	if portfolio.ID == 0 {
		err := q.QueryRow(ctx, `
			INSERT INTO portfolios (name, created_by, last_modified_by)
			VALUES ($1, $2, $2)
			RETURNING id, created_date, modified_date`,
			portfolio.Name, actor,
		).Scan(&portfolio.ID, &portfolio.CreatedDate, &portfolio.ModifiedDate)
		if err != nil {
			return nil, err
		}
		portfolio.CreatedBy = actor
		portfolio.LastModifiedBy = actor
		return portfolio, nil
	}

	err := q.QueryRow(ctx, `
		UPDATE portfolios
		SET name = $1,
			voided = $2, voided_reason = $3, retired = $4, retired_reason = $5,
			modified_date = now(), last_modified_by = $6
		WHERE id = $7
		RETURNING modified_date`,
		portfolio.Name,
		portfolio.Voided, portfolio.VoidedReason, portfolio.Retired, portfolio.RetiredReason,
		actor, portfolio.ID,
	).Scan(&portfolio.ModifiedDate)
	if err != nil {
		return nil, err
	}
	portfolio.LastModifiedBy = actor
	return portfolio, nil
}

func (r *portfolioRepository) FindByID(ctx context.Context, id int64) (*domain.Portfolio, error) {
	row := querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+portfolioColumns+` FROM portfolios WHERE id = $1`, id)
	portfolio, err := scanPortfolio(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return portfolio, err
}

func (r *portfolioRepository) FindAll(ctx context.Context) ([]domain.Portfolio, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+portfolioColumns+` FROM portfolios ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPortfolios(rows)
}

func (r *portfolioRepository) FindAllByUser(ctx context.Context, userID int64) ([]domain.Portfolio, error) {
	rows, err := querier(ctx, r.pool).Query(ctx, `
		SELECT `+prefixColumns("p", portfolioColumns)+`
		FROM portfolios p
		JOIN application_user_portfolio up ON up.portfolio_id = p.id
		WHERE up.application_user_id = $1
		ORDER BY p.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPortfolios(rows)
}

func (r *portfolioRepository) FindAllByName(ctx context.Context, name string) ([]domain.Portfolio, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+portfolioColumns+` FROM portfolios WHERE name = $1 ORDER BY id`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPortfolios(rows)
}

func scanPortfolio(s rowScanner) (*domain.Portfolio, error) {
	var p domain.Portfolio
	err := s.Scan(
		&p.ID, &p.CreatedDate, &p.CreatedBy, &p.ModifiedDate, &p.LastModifiedBy,
		&p.Voided, &p.VoidedReason, &p.Retired, &p.RetiredReason,
		&p.Name,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPortfolios(rows pgx.Rows) ([]domain.Portfolio, error) {
	portfolios := make([]domain.Portfolio, 0)
	for rows.Next() {
		portfolio, err := scanPortfolio(rows)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, *portfolio)
	}
	return portfolios, rows.Err()
}
