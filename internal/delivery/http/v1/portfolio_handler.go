package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cvs-backend/internal/delivery/http/response"
	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(rg *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	h := &PortfolioHandler{portfolioUC: portfolioUC}

	rg.POST("/portfolios", h.Add)
	rg.GET("/portfolios", h.List)
	rg.GET("/portfolios/active/:id", h.GetActive)
	rg.GET("/portfolios/name", h.GetByName)
	rg.GET("/portfolios/user/:id", h.ListByUser)
	rg.DELETE("/portfolios/:id", h.Delete)
	rg.POST("/portfolios/retire/:id", h.Retire)

	// Association endpoints; the optional body is the fallback portfolio
	// created when the target id does not resolve.
	rg.POST("/users/:id/portfolios/:portfolioId", h.AttachUser)
	rg.POST("/candidates/:id/portfolios/:portfolioId", h.AttachCandidate)
}

func (h *PortfolioHandler) Add(c *gin.Context) {
	var payload domain.Portfolio
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	portfolio, err := h.portfolioUC.Add(c.Request.Context(), &payload)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Created", portfolio)
}

func (h *PortfolioHandler) GetActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	portfolio, err := h.portfolioUC.GetActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", portfolio)
}

func (h *PortfolioHandler) GetByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.Error(apperror.BadRequest("Missing name parameter"))
		return
	}

	portfolio, err := h.portfolioUC.GetByName(c.Request.Context(), name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", portfolio)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.portfolioUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deleted", nil)
}

func (h *PortfolioHandler) Retire(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.portfolioUC.Retire(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Retired", nil)
}

func (h *PortfolioHandler) List(c *gin.Context) {
	portfolios, err := h.portfolioUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", portfolios)
}

func (h *PortfolioHandler) ListByUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	portfolios, err := h.portfolioUC.ListByUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", portfolios)
}

func (h *PortfolioHandler) AttachUser(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	portfolioID, ok := idParam(c, "portfolioId")
	if !ok {
		return
	}

	fallback, ok := h.fallbackPayload(c)
	if !ok {
		return
	}

	portfolio, err := h.portfolioUC.AttachUser(c.Request.Context(), userID, portfolioID, fallback)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", portfolio)
}

func (h *PortfolioHandler) AttachCandidate(c *gin.Context) {
	candidateID, ok := idParam(c, "id")
	if !ok {
		return
	}
	portfolioID, ok := idParam(c, "portfolioId")
	if !ok {
		return
	}

	fallback, ok := h.fallbackPayload(c)
	if !ok {
		return
	}

	portfolio, err := h.portfolioUC.AttachCandidate(c.Request.Context(), candidateID, portfolioID, fallback)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", portfolio)
}

// fallbackPayload reads the optional request body. An empty body means no
// fallback; a malformed one is a client error.
func (h *PortfolioHandler) fallbackPayload(c *gin.Context) (*domain.Portfolio, bool) {
	var payload domain.Portfolio
	err := c.ShouldBindJSON(&payload)
	if err == nil {
		return &payload, true
	}
	if errors.Is(err, io.EOF) {
		return nil, true
	}
	c.Error(apperror.BadRequest(err.Error()))
	return nil, false
}
