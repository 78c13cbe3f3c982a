package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-cvs-backend/internal/domain"
)

const qualificationColumns = `id, created_date, created_by, modified_date, last_modified_by,
	voided, voided_reason, retired, retired_reason,
	name, institution, country, date_obtained, candidate_id, qualification_type_id`

type qualificationRepository struct {
	pool *pgxpool.Pool
}

func NewQualificationRepository(pool *pgxpool.Pool) domain.QualificationRepository {
	return &qualificationRepository{pool: pool}
}

func (r *qualificationRepository) Save(ctx context.Context, qualification *domain.Qualification) (*domain.Qualification, error) {
	q := querier(ctx, r.pool)
	actor := domain.Actor(ctx)

	var candidateID, qualificationTypeID *int64
	if qualification.Candidate != nil {
		candidateID = &qualification.Candidate.ID
	}
	if qualification.QualificationType != nil {
		qualificationTypeID = &qualification.QualificationType.ID
	}

	if qualification.ID == 0 {
		err := q.QueryRow(ctx, `
			INSERT INTO qualifications (
				name, institution, country, date_obtained,
				candidate_id, qualification_type_id, created_by, last_modified_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING id, created_date, modified_date`,
			qualification.Name, qualification.Institution, qualification.Country,
			dateArg(qualification.DateObtained), candidateID, qualificationTypeID, actor,
		).Scan(&qualification.ID, &qualification.CreatedDate, &qualification.ModifiedDate)
		if err != nil {
			return nil, err
		}
		qualification.CreatedBy = actor
		qualification.LastModifiedBy = actor
		return qualification, nil
	}

	err := q.QueryRow(ctx, `
		UPDATE qualifications
		SET name = $1, institution = $2, country = $3, date_obtained = $4,
			candidate_id = $5, qualification_type_id = $6,
			voided = $7, voided_reason = $8, retired = $9, retired_reason = $10,
			modified_date = now(), last_modified_by = $11
		WHERE id = $12
		RETURNING modified_date`,
		qualification.Name, qualification.Institution, qualification.Country,
		dateArg(qualification.DateObtained), candidateID, qualificationTypeID,
		qualification.Voided, qualification.VoidedReason,
		qualification.Retired, qualification.RetiredReason,
		actor, qualification.ID,
	).Scan(&qualification.ModifiedDate)
	if err != nil {
		return nil, err
	}
	qualification.LastModifiedBy = actor
	return qualification, nil
}

func (r *qualificationRepository) FindByID(ctx context.Context, id int64) (*domain.Qualification, error) {
	row := querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+qualificationColumns+` FROM qualifications WHERE id = $1`, id)
	qualification, err := scanQualification(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return qualification, err
}

func (r *qualificationRepository) FindAll(ctx context.Context) ([]domain.Qualification, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+qualificationColumns+` FROM qualifications ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectQualifications(rows)
}

func (r *qualificationRepository) FindAllByCandidate(ctx context.Context, candidateID int64) ([]domain.Qualification, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+qualificationColumns+` FROM qualifications WHERE candidate_id = $1 ORDER BY id`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectQualifications(rows)
}

func scanQualification(s rowScanner) (*domain.Qualification, error) {
	var q domain.Qualification
	var dateObtained *time.Time
	var candidateID, qualificationTypeID *int64
	err := s.Scan(
		&q.ID, &q.CreatedDate, &q.CreatedBy, &q.ModifiedDate, &q.LastModifiedBy,
		&q.Voided, &q.VoidedReason, &q.Retired, &q.RetiredReason,
		&q.Name, &q.Institution, &q.Country, &dateObtained, &candidateID, &qualificationTypeID,
	)
	if err != nil {
		return nil, err
	}
	q.DateObtained = dateString(dateObtained)
	if candidateID != nil {
		q.Candidate = &domain.Candidate{Lifecycle: domain.Lifecycle{ID: *candidateID}}
	}
	if qualificationTypeID != nil {
		q.QualificationType = &domain.QualificationType{Lifecycle: domain.Lifecycle{ID: *qualificationTypeID}}
	}
	return &q, nil
}

func collectQualifications(rows pgx.Rows) ([]domain.Qualification, error) {
	qualifications := make([]domain.Qualification, 0)
	for rows.Next() {
		qualification, err := scanQualification(rows)
		if err != nil {
			return nil, err
		}
		qualifications = append(qualifications, *qualification)
	}
	return qualifications, rows.Err()
}
