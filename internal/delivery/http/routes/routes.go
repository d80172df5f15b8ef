package routes

import (
	"jobtrack/internal/config"
	"jobtrack/internal/database"
	"jobtrack/internal/delivery/http/handler"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/jwt"
	"jobtrack/internal/repository"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, usecases and handlers onto the app.
// extract-job-info is the only /api route that works without a session.
func Register(app *fiber.App, cfg config.Config, db database.DB, sessions usecase.SessionStore, client usecase.AnalysisClient) {
	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	offerRepo := repository.NewPostgresOfferRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc, sessions)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	offerUC := usecase.NewOfferUsecase(offerRepo)
	analysisUC := usecase.NewAnalysisUsecase(profileRepo, client)
	coverLetterUC := usecase.NewCoverLetterUsecase(offerRepo, profileRepo, client)

	handler.NewHealthHandler().RegisterRoutes(app)

	api := app.Group("/api")

	analysisHandler := handler.NewAnalysisHandler(analysisUC, coverLetterUC)
	analysisHandler.RegisterPublicRoutes(api)

	handler.NewAuthHandler(authUC).RegisterRoutes(api.Group("/auth"))

	protected := api.Group("", authMw.Middleware())
	analysisHandler.RegisterRoutes(protected)
	handler.NewProfileHandler(profileUC).RegisterRoutes(protected)
	handler.NewOfferHandler(offerUC).RegisterRoutes(protected)
}
