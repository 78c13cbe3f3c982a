package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cvs-backend/internal/delivery/http/response"
	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(rg *gin.RouterGroup, skillUC domain.SkillUsecase) {
	h := &SkillHandler{skillUC: skillUC}

	rg.POST("/skills", h.Add)
	rg.GET("/skills", h.List)
	rg.GET("/skills/active/:id", h.GetActive)
	rg.GET("/skills/candidate/:id", h.ListByCandidate)
	rg.DELETE("/skills/:id", h.Delete)
	rg.POST("/skills/retire/:id", h.Retire)
}

func (h *SkillHandler) Add(c *gin.Context) {
	var payload domain.Skill
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.Add(c.Request.Context(), &payload)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Created", skill)
}

func (h *SkillHandler) GetActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	skill, err := h.skillUC.GetActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.skillUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deleted", nil)
}

func (h *SkillHandler) Retire(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.skillUC.Retire(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retired", nil)
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", skills)
}

func (h *SkillHandler) ListByCandidate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	skills, err := h.skillUC.ListByCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", skills)
}
