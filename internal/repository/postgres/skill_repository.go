package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-cvs-backend/internal/domain"
)

const skillColumns = `id, created_date, created_by, modified_date, last_modified_by,
	voided, voided_reason, retired, retired_reason,
	description, candidate_id`

type skillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) domain.SkillRepository {
	return &skillRepository{pool: pool}
}

func (r *skillRepository) Save(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	q := querier(ctx, r.pool)
	actor := domain.Actor(ctx)

	var candidateID *int64
	if skill.Candidate != nil {
		candidateID = &skill.Candidate.ID
	}

	if skill.ID == 0 {
		err := q.QueryRow(ctx, `
			INSERT INTO skills (description, candidate_id, created_by, last_modified_by)
			VALUES ($1, $2, $3, $3)
			RETURNING id, created_date, modified_date`,
			skill.Description, candidateID, actor,
		).Scan(&skill.ID, &skill.CreatedDate, &skill.ModifiedDate)
		if err != nil {
			return nil, err
		}
		skill.CreatedBy = actor
		skill.LastModifiedBy = actor
		return skill, nil
	}

	err := q.QueryRow(ctx, `
		UPDATE skills
		SET description = $1, candidate_id = $2,
			voided = $3, voided_reason = $4, retired = $5, retired_reason = $6,
			modified_date = now(), last_modified_by = $7
		WHERE id = $8
		RETURNING modified_date`,
		skill.Description, candidateID,
		skill.Voided, skill.VoidedReason, skill.Retired, skill.RetiredReason,
		actor, skill.ID,
	).Scan(&skill.ModifiedDate)
	if err != nil {
		return nil, err
	}
	skill.LastModifiedBy = actor
	return skill, nil
}

func (r *skillRepository) FindByID(ctx context.Context, id int64) (*domain.Skill, error) {
	row := querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	skill, err := scanSkill(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return skill, err
}

func (r *skillRepository) FindAll(ctx context.Context) ([]domain.Skill, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+skillColumns+` FROM skills ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkills(rows)
}

func (r *skillRepository) FindAllByCandidate(ctx context.Context, candidateID int64) ([]domain.Skill, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE candidate_id = $1 ORDER BY id`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkills(rows)
}

func scanSkill(s rowScanner) (*domain.Skill, error) {
	var sk domain.Skill
	var candidateID *int64
	err := s.Scan(
		&sk.ID, &sk.CreatedDate, &sk.CreatedBy, &sk.ModifiedDate, &sk.LastModifiedBy,
		&sk.Voided, &sk.VoidedReason, &sk.Retired, &sk.RetiredReason,
		&sk.Description, &candidateID,
	)
	if err != nil {
		return nil, err
	}
	if candidateID != nil {
		sk.Candidate = &domain.Candidate{Lifecycle: domain.Lifecycle{ID: *candidateID}}
	}
	return &sk, nil
}

func collectSkills(rows pgx.Rows) ([]domain.Skill, error) {
	skills := make([]domain.Skill, 0)
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *skill)
	}
	return skills, rows.Err()
}
