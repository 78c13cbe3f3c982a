package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-cvs-backend/config"
	"go-cvs-backend/internal/delivery/http/middleware"
	"go-cvs-backend/internal/delivery/http/response"
	"go-cvs-backend/internal/domain"
)

type RouterDeps struct {
	UserUC              domain.ApplicationUserUsecase
	CandidateUC         domain.CandidateUsecase
	PortfolioUC         domain.PortfolioUsecase
	QualificationTypeUC domain.QualificationTypeUsecase
	QualificationUC     domain.QualificationUsecase
	ReferenceUC         domain.ReferenceUsecase
	SkillUC             domain.SkillUsecase
	WorkExperienceUC    domain.WorkExperienceUsecase
	Config              *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run first so error responses carry the headers too.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ActingUser())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewApplicationUserHandler(v1, deps.UserUC)
	NewCandidateHandler(v1, deps.CandidateUC)
	NewPortfolioHandler(v1, deps.PortfolioUC)
	NewQualificationTypeHandler(v1, deps.QualificationTypeUC)
	NewQualificationHandler(v1, deps.QualificationUC)
	NewReferenceHandler(v1, deps.ReferenceUC)
	NewSkillHandler(v1, deps.SkillUC)
	NewWorkExperienceHandler(v1, deps.WorkExperienceUC)

	return r
}
