package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cvs-backend/internal/delivery/http/response"
	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
)

type QualificationTypeHandler struct {
	qualificationTypeUC domain.QualificationTypeUsecase
}

func NewQualificationTypeHandler(rg *gin.RouterGroup, qualificationTypeUC domain.QualificationTypeUsecase) {
	h := &QualificationTypeHandler{qualificationTypeUC: qualificationTypeUC}

	rg.POST("/qualificationtypes", h.Add)
	rg.GET("/qualificationtypes", h.List)
	rg.GET("/qualificationtypes/active/:id", h.GetActive)
	rg.DELETE("/qualificationtypes/:id", h.Delete)
	rg.POST("/qualificationtypes/retire/:id", h.Retire)
}

func (h *QualificationTypeHandler) Add(c *gin.Context) {
	var payload domain.QualificationType
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	qualificationType, err := h.qualificationTypeUC.Add(c.Request.Context(), &payload)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Created", qualificationType)
}

func (h *QualificationTypeHandler) GetActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	qualificationType, err := h.qualificationTypeUC.GetActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", qualificationType)
}

func (h *QualificationTypeHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.qualificationTypeUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deleted", nil)
}

func (h *QualificationTypeHandler) Retire(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.qualificationTypeUC.Retire(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retired", nil)
}

func (h *QualificationTypeHandler) List(c *gin.Context) {
	qualificationTypes, err := h.qualificationTypeUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", qualificationTypes)
}
