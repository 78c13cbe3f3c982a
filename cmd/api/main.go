package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"go-cvs-backend/config"
	v1 "go-cvs-backend/internal/delivery/http/v1"
	"go-cvs-backend/internal/repository/postgres"
	"go-cvs-backend/internal/usecase"
	"go-cvs-backend/pkg/database"
	"go-cvs-backend/pkg/logger"
	"go-cvs-backend/pkg/metrics"
	"go-cvs-backend/pkg/validation"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting CVS backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewApplicationUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	portfolioRepo := postgres.NewPortfolioRepository(dbPool)
	qualificationTypeRepo := postgres.NewQualificationTypeRepository(dbPool)
	qualificationRepo := postgres.NewQualificationRepository(dbPool)
	referenceRepo := postgres.NewReferenceRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	workExperienceRepo := postgres.NewWorkExperienceRepository(dbPool)
	txManager := postgres.NewTxManager(dbPool)

	// 5. Setup UseCases
	validate := validation.New()
	m := metrics.New()
	userUC := usecase.NewUserUsecase(userRepo, txManager, validate, m)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, txManager, validate, m)
	qualificationTypeUC := usecase.NewQualificationTypeUsecase(qualificationTypeRepo, txManager, validate, m)
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo, userUC, candidateUC, userRepo, candidateRepo, txManager, validate, m)
	qualificationUC := usecase.NewQualificationUsecase(qualificationRepo, candidateUC, qualificationTypeUC, txManager, validate, m)
	referenceUC := usecase.NewReferenceUsecase(referenceRepo, candidateUC, txManager, validate, m)
	skillUC := usecase.NewSkillUsecase(skillRepo, candidateUC, txManager, validate, m)
	workExperienceUC := usecase.NewWorkExperienceUsecase(workExperienceRepo, candidateUC, txManager, validate, m)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:              userUC,
		CandidateUC:         candidateUC,
		PortfolioUC:         portfolioUC,
		QualificationTypeUC: qualificationTypeUC,
		QualificationUC:     qualificationUC,
		ReferenceUC:         referenceUC,
		SkillUC:             skillUC,
		WorkExperienceUC:    workExperienceUC,
		Config:              cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited")
}
