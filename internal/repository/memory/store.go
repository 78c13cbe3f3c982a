package memory

import (
	"context"

	"go-cvs-backend/internal/domain"
)

// Store bundles one in-memory repository per entity over shared join tables.
// It backs the unit tests and makes the API runnable without postgres.
type Store struct {
	Users              *ApplicationUserRepository
	Candidates         *CandidateRepository
	Portfolios         *PortfolioRepository
	QualificationTypes *QualificationTypeRepository
	Qualifications     *QualificationRepository
	References         *ReferenceRepository
	Skills             *SkillRepository
	WorkExperiences    *WorkExperienceRepository
}

func NewStore() *Store {
	userPortfolios := newJoinTable()
	candidatePortfolios := newJoinTable()

	return &Store{
		Users:              &ApplicationUserRepository{table: newTable[domain.ApplicationUser](), portfolios: userPortfolios},
		Candidates:         &CandidateRepository{table: newTable[domain.Candidate](), portfolios: candidatePortfolios},
		Portfolios:         &PortfolioRepository{table: newTable[domain.Portfolio](), userPortfolios: userPortfolios},
		QualificationTypes: &QualificationTypeRepository{table: newTable[domain.QualificationType]()},
		Qualifications:     &QualificationRepository{table: newTable[domain.Qualification]()},
		References:         &ReferenceRepository{table: newTable[domain.Reference]()},
		Skills:             &SkillRepository{table: newTable[domain.Skill]()},
		WorkExperiences:    &WorkExperienceRepository{table: newTable[domain.WorkExperience]()},
	}
}

// TxManager satisfies domain.TxManager without transactional semantics: the
// store has no rollback, so the unit of work simply runs. The postgres
// TxManager provides the real boundary.
type TxManager struct{}

func NewTxManager() *TxManager { return &TxManager{} }

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
