package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
)

// resolveCandidateRef resolves the strict candidate reference required by the
// qualification, reference, skill and work experience add flows. Missing and
// inactive candidates both collapse into a not-found failure; only the message
// distinguishes them.
func resolveCandidateRef(ctx context.Context, candidates domain.CandidateUsecase, ref *domain.Candidate) (*domain.Candidate, error) {
	if ref == nil || ref.ID == 0 {
		return nil, apperror.NotFound("Unable to find existing CANDIDATE reference")
	}

	existing, err := candidates.GetActive(ctx, ref.ID)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			return nil, err
		}
		if appErr.Code == http.StatusLocked {
			return nil, apperror.NotFound(fmt.Sprintf("Unable to find active [CANDIDATE] %d", ref.ID))
		}
		return nil, apperror.NotFound(fmt.Sprintf("Unable to find existing [CANDIDATE] %d", ref.ID))
	}
	return existing, nil
}
