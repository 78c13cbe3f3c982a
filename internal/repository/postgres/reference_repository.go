package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-cvs-backend/internal/domain"
)

// Referees live in the "referees" table; REFERENCES is an SQL keyword.
const referenceColumns = `id, created_date, created_by, modified_date, last_modified_by,
	voided, voided_reason, retired, retired_reason,
	name, job_title, institution, email, contact_number,
	address_line1, address_line2, address_line3, postcode, country, candidate_id`

type referenceRepository struct {
	pool *pgxpool.Pool
}

func NewReferenceRepository(pool *pgxpool.Pool) domain.ReferenceRepository {
	return &referenceRepository{pool: pool}
}

func (r *referenceRepository) Save(ctx context.Context, reference *domain.Reference) (*domain.Reference, error) {
	q := querier(ctx, r.pool)
	actor := domain.Actor(ctx)

	var candidateID *int64
	if reference.Candidate != nil {
		candidateID = &reference.Candidate.ID
	}

	if reference.ID == 0 {
		err := q.QueryRow(ctx, `
			INSERT INTO referees (
				name, job_title, institution, email, contact_number,
				address_line1, address_line2, address_line3, postcode, country,
				candidate_id, created_by, last_modified_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
			RETURNING id, created_date, modified_date`,
			reference.Name, reference.JobTitle, reference.Institution, reference.Email,
			reference.ContactNumber, reference.AddressLine1, reference.AddressLine2,
			reference.AddressLine3, reference.Postcode, reference.Country,
			candidateID, actor,
		).Scan(&reference.ID, &reference.CreatedDate, &reference.ModifiedDate)
		if err != nil {
			return nil, err
		}
		reference.CreatedBy = actor
		reference.LastModifiedBy = actor
		return reference, nil
	}

	err := q.QueryRow(ctx, `
		UPDATE referees
		SET name = $1, job_title = $2, institution = $3, email = $4, contact_number = $5,
			address_line1 = $6, address_line2 = $7, address_line3 = $8, postcode = $9, country = $10,
			candidate_id = $11,
			voided = $12, voided_reason = $13, retired = $14, retired_reason = $15,
			modified_date = now(), last_modified_by = $16
		WHERE id = $17
		RETURNING modified_date`,
		reference.Name, reference.JobTitle, reference.Institution, reference.Email,
		reference.ContactNumber, reference.AddressLine1, reference.AddressLine2,
		reference.AddressLine3, reference.Postcode, reference.Country,
		candidateID,
		reference.Voided, reference.VoidedReason, reference.Retired, reference.RetiredReason,
		actor, reference.ID,
	).Scan(&reference.ModifiedDate)
	if err != nil {
		return nil, err
	}
	reference.LastModifiedBy = actor
	return reference, nil
}

func (r *referenceRepository) FindByID(ctx context.Context, id int64) (*domain.Reference, error) {
	row := querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+referenceColumns+` FROM referees WHERE id = $1`, id)
	reference, err := scanReference(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return reference, err
}

func (r *referenceRepository) FindAll(ctx context.Context) ([]domain.Reference, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+referenceColumns+` FROM referees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReferences(rows)
}

func (r *referenceRepository) FindAllByCandidate(ctx context.Context, candidateID int64) ([]domain.Reference, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+referenceColumns+` FROM referees WHERE candidate_id = $1 ORDER BY id`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReferences(rows)
}

func scanReference(s rowScanner) (*domain.Reference, error) {
	var ref domain.Reference
	var candidateID *int64
	err := s.Scan(
		&ref.ID, &ref.CreatedDate, &ref.CreatedBy, &ref.ModifiedDate, &ref.LastModifiedBy,
		&ref.Voided, &ref.VoidedReason, &ref.Retired, &ref.RetiredReason,
		&ref.Name, &ref.JobTitle, &ref.Institution, &ref.Email, &ref.ContactNumber,
		&ref.AddressLine1, &ref.AddressLine2, &ref.AddressLine3, &ref.Postcode, &ref.Country,
		&candidateID,
	)
	if err != nil {
		return nil, err
	}
	if candidateID != nil {
		ref.Candidate = &domain.Candidate{Lifecycle: domain.Lifecycle{ID: *candidateID}}
	}
	return &ref, nil
}

func collectReferences(rows pgx.Rows) ([]domain.Reference, error) {
	references := make([]domain.Reference, 0)
	for rows.Next() {
		reference, err := scanReference(rows)
		if err != nil {
			return nil, err
		}
		references = append(references, *reference)
	}
	return references, rows.Err()
}
