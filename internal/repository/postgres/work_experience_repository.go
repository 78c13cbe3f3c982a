package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-cvs-backend/internal/domain"
)

const workExperienceColumns = `id, created_date, created_by, modified_date, last_modified_by,
	voided, voided_reason, retired, retired_reason,
	organisation, country, position, start_date, end_date, candidate_id`

type workExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewWorkExperienceRepository(pool *pgxpool.Pool) domain.WorkExperienceRepository {
	return &workExperienceRepository{pool: pool}
}

func (r *workExperienceRepository) Save(ctx context.Context, workExperience *domain.WorkExperience) (*domain.WorkExperience, error) {
	q := querier(ctx, r.pool)
	actor := domain.Actor(ctx)

	var candidateID *int64
	if workExperience.Candidate != nil {
		candidateID = &workExperience.Candidate.ID
	}

	if workExperience.ID == 0 {
		err := q.QueryRow(ctx, `
			INSERT INTO work_experiences (
				organisation, country, position, start_date, end_date,
				candidate_id, created_by, last_modified_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING id, created_date, modified_date`,
			workExperience.Organisation, workExperience.Country, workExperience.Position,
			dateArg(workExperience.StartDate), dateArg(workExperience.EndDate),
			candidateID, actor,
		).Scan(&workExperience.ID, &workExperience.CreatedDate, &workExperience.ModifiedDate)
		if err != nil {
			return nil, err
		}
		workExperience.CreatedBy = actor
		workExperience.LastModifiedBy = actor
		return workExperience, nil
	}

	err := q.QueryRow(ctx, `
		UPDATE work_experiences
		SET organisation = $1, country = $2, position = $3, start_date = $4, end_date = $5,
			candidate_id = $6,
			voided = $7, voided_reason = $8, retired = $9, retired_reason = $10,
			modified_date = now(), last_modified_by = $11
		WHERE id = $12
		RETURNING modified_date`,
		workExperience.Organisation, workExperience.Country, workExperience.Position,
		dateArg(workExperience.StartDate), dateArg(workExperience.EndDate),
		candidateID,
		workExperience.Voided, workExperience.VoidedReason,
		workExperience.Retired, workExperience.RetiredReason,
		actor, workExperience.ID,
	).Scan(&workExperience.ModifiedDate)
	if err != nil {
		return nil, err
	}
	workExperience.LastModifiedBy = actor
	return workExperience, nil
}

func (r *workExperienceRepository) FindByID(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	row := querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+workExperienceColumns+` FROM work_experiences WHERE id = $1`, id)
	workExperience, err := scanWorkExperience(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return workExperience, err
}

func (r *workExperienceRepository) FindAll(ctx context.Context) ([]domain.WorkExperience, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+workExperienceColumns+` FROM work_experiences ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWorkExperiences(rows)
}

func (r *workExperienceRepository) FindAllByCandidate(ctx context.Context, candidateID int64) ([]domain.WorkExperience, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+workExperienceColumns+` FROM work_experiences WHERE candidate_id = $1 ORDER BY id`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWorkExperiences(rows)
}

func scanWorkExperience(s rowScanner) (*domain.WorkExperience, error) {
	var w domain.WorkExperience
	var startDate, endDate *time.Time
	var candidateID *int64
	err := s.Scan(
		&w.ID, &w.CreatedDate, &w.CreatedBy, &w.ModifiedDate, &w.LastModifiedBy,
		&w.Voided, &w.VoidedReason, &w.Retired, &w.RetiredReason,
		&w.Organisation, &w.Country, &w.Position, &startDate, &endDate, &candidateID,
	)
	if err != nil {
		return nil, err
	}
	w.StartDate = dateString(startDate)
	w.EndDate = dateString(endDate)
	if candidateID != nil {
		w.Candidate = &domain.Candidate{Lifecycle: domain.Lifecycle{ID: *candidateID}}
	}
	return &w, nil
}

func collectWorkExperiences(rows pgx.Rows) ([]domain.WorkExperience, error) {
	workExperiences := make([]domain.WorkExperience, 0)
	for rows.Next() {
		workExperience, err := scanWorkExperience(rows)
		if err != nil {
			return nil, err
		}
		workExperiences = append(workExperiences, *workExperience)
	}
	return workExperiences, rows.Err()
}
