package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cvs-backend/internal/delivery/http/response"
	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
)

type ReferenceHandler struct {
	referenceUC domain.ReferenceUsecase
}

func NewReferenceHandler(rg *gin.RouterGroup, referenceUC domain.ReferenceUsecase) {
	h := &ReferenceHandler{referenceUC: referenceUC}

	rg.POST("/references", h.Add)
	rg.GET("/references", h.List)
	rg.GET("/references/active/:id", h.GetActive)
	rg.GET("/references/candidate/:id", h.ListByCandidate)
	rg.DELETE("/references/:id", h.Delete)
	rg.POST("/references/retire/:id", h.Retire)
}

func (h *ReferenceHandler) Add(c *gin.Context) {
	var payload domain.Reference
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	reference, err := h.referenceUC.Add(c.Request.Context(), &payload)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Created", reference)
}

func (h *ReferenceHandler) GetActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	reference, err := h.referenceUC.GetActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", reference)
}

func (h *ReferenceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.referenceUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deleted", nil)
}

func (h *ReferenceHandler) Retire(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.referenceUC.Retire(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retired", nil)
}

func (h *ReferenceHandler) List(c *gin.Context) {
	references, err := h.referenceUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", references)
}

func (h *ReferenceHandler) ListByCandidate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	references, err := h.referenceUC.ListByCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", references)
}
