package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cvs-backend/internal/delivery/http/response"
	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
)

type QualificationHandler struct {
	qualificationUC domain.QualificationUsecase
}

func NewQualificationHandler(rg *gin.RouterGroup, qualificationUC domain.QualificationUsecase) {
	h := &QualificationHandler{qualificationUC: qualificationUC}

	rg.POST("/qualifications", h.Add)
	rg.GET("/qualifications", h.List)
	rg.GET("/qualifications/active/:id", h.GetActive)
	rg.GET("/qualifications/candidate/:id", h.ListByCandidate)
	rg.DELETE("/qualifications/:id", h.Delete)
	rg.POST("/qualifications/retire/:id", h.Retire)
}

func (h *QualificationHandler) Add(c *gin.Context) {
	var payload domain.Qualification
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	qualification, err := h.qualificationUC.Add(c.Request.Context(), &payload)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Created", qualification)
}

func (h *QualificationHandler) GetActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	qualification, err := h.qualificationUC.GetActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", qualification)
}

func (h *QualificationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.qualificationUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deleted", nil)
}

func (h *QualificationHandler) Retire(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.qualificationUC.Retire(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retired", nil)
}

func (h *QualificationHandler) List(c *gin.Context) {
	qualifications, err := h.qualificationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", qualifications)
}

func (h *QualificationHandler) ListByCandidate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	qualifications, err := h.qualificationUC.ListByCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", qualifications)
}
