package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cvs-backend/internal/delivery/http/response"
	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(rg *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	h := &CandidateHandler{candidateUC: candidateUC}

	rg.POST("/candidates", h.Add)
	rg.GET("/candidates", h.List)
	rg.GET("/candidates/active/:id", h.GetActive)
	rg.GET("/candidates/portfolio/:id", h.ListByPortfolio)
	rg.DELETE("/candidates/:id", h.Delete)
	rg.POST("/candidates/retire/:id", h.Retire)
}

func (h *CandidateHandler) Add(c *gin.Context) {
	var payload domain.Candidate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Add(c.Request.Context(), &payload)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Created", candidate)
}

func (h *CandidateHandler) GetActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	candidate, err := h.candidateUC.GetActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", candidate)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.candidateUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deleted", nil)
}

func (h *CandidateHandler) Retire(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.candidateUC.Retire(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retired", nil)
}

func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", candidates)
}

func (h *CandidateHandler) ListByPortfolio(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	candidates, err := h.candidateUC.ListByPortfolio(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", candidates)
}
