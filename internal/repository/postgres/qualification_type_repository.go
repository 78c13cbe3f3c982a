package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-cvs-backend/internal/domain"
)

const qualificationTypeColumns = `id, created_date, created_by, modified_date, last_modified_by,
	voided, voided_reason, retired, retired_reason, name`

type qualificationTypeRepository struct {
	pool *pgxpool.Pool
}

func NewQualificationTypeRepository(pool *pgxpool.Pool) domain.QualificationTypeRepository {
	return &qualificationTypeRepository{pool: pool}
}

func (r *qualificationTypeRepository) Save(ctx context.Context, qualificationType *domain.QualificationType) (*domain.QualificationType, error) {
	q := querier(ctx, r.pool)
	actor := domain.Actor(ctx)

	if qualificationType.ID == 0 {
		err := q.QueryRow(ctx, `
			INSERT INTO qualification_types (name, created_by, last_modified_by)
			VALUES ($1, $2, $2)
			RETURNING id, created_date, modified_date`,
			qualificationType.Name, actor,
		).Scan(&qualificationType.ID, &qualificationType.CreatedDate, &qualificationType.ModifiedDate)
		if err != nil {
			return nil, err
		}
		qualificationType.CreatedBy = actor
		qualificationType.LastModifiedBy = actor
		return qualificationType, nil
	}

	err := q.QueryRow(ctx, `
		UPDATE qualification_types
		SET name = $1,
			voided = $2, voided_reason = $3, retired = $4, retired_reason = $5,
			modified_date = now(), last_modified_by = $6
		WHERE id = $7
		RETURNING modified_date`,
		qualificationType.Name,
		qualificationType.Voided, qualificationType.VoidedReason,
		qualificationType.Retired, qualificationType.RetiredReason,
		actor, qualificationType.ID,
	).Scan(&qualificationType.ModifiedDate)
	if err != nil {
		return nil, err
	}
	qualificationType.LastModifiedBy = actor
	return qualificationType, nil
}

func (r *qualificationTypeRepository) FindByID(ctx context.Context, id int64) (*domain.QualificationType, error) {
	row := querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+qualificationTypeColumns+` FROM qualification_types WHERE id = $1`, id)
	qualificationType, err := scanQualificationType(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return qualificationType, err
}

func (r *qualificationTypeRepository) FindAll(ctx context.Context) ([]domain.QualificationType, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+qualificationTypeColumns+` FROM qualification_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	qualificationTypes := make([]domain.QualificationType, 0)
	for rows.Next() {
		qualificationType, err := scanQualificationType(rows)
		if err != nil {
			return nil, err
		}
		qualificationTypes = append(qualificationTypes, *qualificationType)
	}
	return qualificationTypes, rows.Err()
}

func scanQualificationType(s rowScanner) (*domain.QualificationType, error) {
	var qt domain.QualificationType
	err := s.Scan(
		&qt.ID, &qt.CreatedDate, &qt.CreatedBy, &qt.ModifiedDate, &qt.LastModifiedBy,
		&qt.Voided, &qt.VoidedReason, &qt.Retired, &qt.RetiredReason,
		&qt.Name,
	)
	if err != nil {
		return nil, err
	}
	return &qt, nil
}
