package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-cvs-backend/internal/domain"
)

const candidateColumns = `id, created_date, created_by, modified_date, last_modified_by,
	voided, voided_reason, retired, retired_reason,
	first_name, middle_name, last_name, title, gender, email,
	preferred_contact_number, alternative_contact_number,
	address_line1, address_line2, address_line3, postcode, country, date_of_birth`

type candidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{pool: pool}
}

func (r *candidateRepository) Save(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	q := querier(ctx, r.pool)
	actor := domain.Actor(ctx)

	if candidate.ID == 0 {
		err := q.QueryRow(ctx, `
			INSERT INTO candidates (
				first_name, middle_name, last_name, title, gender, email,
				preferred_contact_number, alternative_contact_number,
				address_line1, address_line2, address_line3, postcode, country, date_of_birth,
				created_by, last_modified_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
			RETURNING id, created_date, modified_date`,
			candidate.FirstName, candidate.MiddleName, candidate.LastName, candidate.Title,
			candidate.Gender, candidate.Email,
			candidate.PreferredContactNumber, candidate.AlternativeContactNumber,
			candidate.AddressLine1, candidate.AddressLine2, candidate.AddressLine3,
			candidate.Postcode, candidate.Country, dateArg(candidate.DateOfBirth),
			actor,
		).Scan(&candidate.ID, &candidate.CreatedDate, &candidate.ModifiedDate)
		if err != nil {
			return nil, err
		}
		candidate.CreatedBy = actor
		candidate.LastModifiedBy = actor
		return candidate, nil
	}

	err := q.QueryRow(ctx, `
		UPDATE candidates
		SET first_name = $1, middle_name = $2, last_name = $3, title = $4, gender = $5, email = $6,
			preferred_contact_number = $7, alternative_contact_number = $8,
			address_line1 = $9, address_line2 = $10, address_line3 = $11, postcode = $12,
			country = $13, date_of_birth = $14,
			voided = $15, voided_reason = $16, retired = $17, retired_reason = $18,
			modified_date = now(), last_modified_by = $19
		WHERE id = $20
		RETURNING modified_date`,
		candidate.FirstName, candidate.MiddleName, candidate.LastName, candidate.Title,
		candidate.Gender, candidate.Email,
		candidate.PreferredContactNumber, candidate.AlternativeContactNumber,
		candidate.AddressLine1, candidate.AddressLine2, candidate.AddressLine3,
		candidate.Postcode, candidate.Country, dateArg(candidate.DateOfBirth),
		candidate.Voided, candidate.VoidedReason, candidate.Retired, candidate.RetiredReason,
		actor, candidate.ID,
	).Scan(&candidate.ModifiedDate)
	if err != nil {
		return nil, err
	}
	candidate.LastModifiedBy = actor
	return candidate, nil
}

func (r *candidateRepository) FindByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	row := querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	candidate, err := scanCandidate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return candidate, err
}

func (r *candidateRepository) FindAll(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCandidates(rows)
}

func (r *candidateRepository) FindAllByPortfolio(ctx context.Context, portfolioID int64) ([]domain.Candidate, error) {
	rows, err := querier(ctx, r.pool).Query(ctx, `
		SELECT `+prefixColumns("c", candidateColumns)+`
		FROM candidates c
		JOIN candidate_portfolio cp ON cp.candidate_id = c.id
		WHERE cp.portfolio_id = $1
		ORDER BY c.id`, portfolioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCandidates(rows)
}

func (r *candidateRepository) AttachPortfolio(ctx context.Context, candidateID, portfolioID int64) error {
	_, err := querier(ctx, r.pool).Exec(ctx, `
		INSERT INTO candidate_portfolio (candidate_id, portfolio_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, candidateID, portfolioID)
	return err
}

func (r *candidateRepository) HasPortfolio(ctx context.Context, candidateID, portfolioID int64) (bool, error) {
	var exists bool
	err := querier(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM candidate_portfolio
			WHERE candidate_id = $1 AND portfolio_id = $2
		)`, candidateID, portfolioID).Scan(&exists)
	return exists, err
}

func scanCandidate(s rowScanner) (*domain.Candidate, error) {
	var c domain.Candidate
	var dob *time.Time
	err := s.Scan(
		&c.ID, &c.CreatedDate, &c.CreatedBy, &c.ModifiedDate, &c.LastModifiedBy,
		&c.Voided, &c.VoidedReason, &c.Retired, &c.RetiredReason,
		&c.FirstName, &c.MiddleName, &c.LastName, &c.Title, &c.Gender, &c.Email,
		&c.PreferredContactNumber, &c.AlternativeContactNumber,
		&c.AddressLine1, &c.AddressLine2, &c.AddressLine3, &c.Postcode, &c.Country, &dob,
	)
	if err != nil {
		return nil, err
	}
	c.DateOfBirth = dateString(dob)
	return &c, nil
}

func collectCandidates(rows pgx.Rows) ([]domain.Candidate, error) {
	candidates := make([]domain.Candidate, 0)
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, rows.Err()
}
