// Plik: app/main.go
package main

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"operaty-system/internal/repositories"
	"operaty-system/internal/routes"
	"operaty-system/pkg/config"
	"operaty-system/pkg/customvalidator"
	apperrors "operaty-system/pkg/errors"
	applogger "operaty-system/pkg/logger"
	"operaty-system/pkg/service"
	"operaty-system/pkg/utils"
	"operaty-system/seeders"
)

func main() {
	e := echo.New()
	e.HideBanner = true

	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("PANIKA w obsłudze żądania",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Wystąpił błąd serwera. Spróbuj ponownie.", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	absPath, err := filepath.Abs(cfg.Storage.UploadsDir)
	if err != nil {
		logger.Fatal("nie udało się ustalić ścieżki do katalogu uploads", zap.Error(err))
	}
	e.Static("/uploads", absPath)

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("błąd rejestracji reguł walidacji", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	// Repozytoria w pamięci - jedyne "bazy danych" tej aplikacji. Seeder musi
	// je zapełnić przed zarejestrowaniem tras, żeby pierwsze żądanie trafiło
	// już na kompletne dane.
	repos := &routes.Repositories{
		Zlecenie:     repositories.NewZlecenieRepository(),
		User:         repositories.NewUserRepository(),
		Notification: repositories.NewNotificationRepository(),
		Audit:        repositories.NewAuditRepository(),
	}
	if err := seeders.Run(context.Background(), repos.User, repos.Zlecenie, logger); err != nil {
		logger.Fatal("seeder nie zdołał załadować danych startowych", zap.Error(err))
	}

	loggers := &routes.Loggers{
		Main:     logger,
		Auth:     logger.Named("auth"),
		Zlecenie: logger.Named("zlecenie"),
		User:     logger.Named("user"),
	}
	routes.InitRouter(e, repos, jwtSvc, loggers, cfg)

	logger.Info("serwer wystartował", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("błąd startu serwera", zap.Error(err))
	}
}
