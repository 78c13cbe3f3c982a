package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cvs-backend/internal/delivery/http/response"
	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
)

type ApplicationUserHandler struct {
	userUC domain.ApplicationUserUsecase
}

func NewApplicationUserHandler(rg *gin.RouterGroup, userUC domain.ApplicationUserUsecase) {
	h := &ApplicationUserHandler{userUC: userUC}

	rg.POST("/users", h.Add)
	rg.GET("/users", h.List)
	rg.GET("/users/active/:id", h.GetActive)
	rg.DELETE("/users/:id", h.Delete)
	rg.POST("/users/retire/:id", h.Retire)
}

func (h *ApplicationUserHandler) Add(c *gin.Context) {
	var payload domain.ApplicationUser
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.userUC.Add(c.Request.Context(), &payload)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Created", user)
}

func (h *ApplicationUserHandler) GetActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userUC.GetActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", user)
}

func (h *ApplicationUserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.userUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deleted", nil)
}

func (h *ApplicationUserHandler) Retire(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.userUC.Retire(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retired", nil)
}

func (h *ApplicationUserHandler) List(c *gin.Context) {
	users, err := h.userUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", users)
}
