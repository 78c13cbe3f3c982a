package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cvs-backend/internal/delivery/http/response"
	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
)

type WorkExperienceHandler struct {
	workExperienceUC domain.WorkExperienceUsecase
}

func NewWorkExperienceHandler(rg *gin.RouterGroup, workExperienceUC domain.WorkExperienceUsecase) {
	h := &WorkExperienceHandler{workExperienceUC: workExperienceUC}

	rg.POST("/workexperiences", h.Add)
	rg.GET("/workexperiences", h.List)
	rg.GET("/workexperiences/active/:id", h.GetActive)
	rg.GET("/workexperiences/candidate/:id", h.ListByCandidate)
	rg.DELETE("/workexperiences/:id", h.Delete)
	rg.POST("/workexperiences/retire/:id", h.Retire)
}

func (h *WorkExperienceHandler) Add(c *gin.Context) {
	var payload domain.WorkExperience
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	workExperience, err := h.workExperienceUC.Add(c.Request.Context(), &payload)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Created", workExperience)
}

func (h *WorkExperienceHandler) GetActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	workExperience, err := h.workExperienceUC.GetActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", workExperience)
}

func (h *WorkExperienceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.workExperienceUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deleted", nil)
}

func (h *WorkExperienceHandler) Retire(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.workExperienceUC.Retire(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retired", nil)
}

func (h *WorkExperienceHandler) List(c *gin.Context) {
	workExperiences, err := h.workExperienceUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", workExperiences)
}

func (h *WorkExperienceHandler) ListByCandidate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	workExperiences, err := h.workExperienceUC.ListByCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", workExperiences)
}
