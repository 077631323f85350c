// Plik: internal/routes/routes.go
package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"operaty-system/internal/controllers"
	"operaty-system/internal/integrations/geocoder"
	"operaty-system/internal/integrations/kwregistry"
	"operaty-system/internal/listeners"
	"operaty-system/internal/repositories"
	"operaty-system/internal/services"
	"operaty-system/pkg/config"
	"operaty-system/pkg/eventbus"
	"operaty-system/pkg/filestorage"
	"operaty-system/pkg/middleware"
	"operaty-system/pkg/service"
)

type Loggers struct {
	Main     *zap.Logger
	Auth     *zap.Logger
	Zlecenie *zap.Logger
	User     *zap.Logger
}

// Repositories - komplet repozytoriów w pamięci. Budowane w main, bo seeder
// musi je zapełnić zanim ruszy serwer.
type Repositories struct {
	Zlecenie     repositories.ZlecenieRepositoryInterface
	User         repositories.UserRepositoryInterface
	Notification repositories.NotificationRepositoryInterface
	Audit        repositories.AuditRepositoryInterface
}

func InitRouter(e *echo.Echo, repos *Repositories, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: rejestrowanie tras")

	// --- 0. KOMPONENTY WSPÓLNE ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)
	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Storage.UploadsDir)
	if err != nil {
		loggers.Main.Fatal("nie udało się utworzyć magazynu plików", zap.Error(err))
	}

	// --- 1. SZYNA ZDARZEŃ I SŁUCHACZE ---
	bus := eventbus.New(loggers.Main)
	listeners.NewAuditListener(repos.Audit, loggers.Main).Register(bus)
	listeners.NewNotificationListener(repos.Notification, loggers.Main).Register(bus)

	// --- 2. INTEGRACJE ---
	geocoderProvider := geocoder.NewMockProvider(loggers.Main)
	kwProvider := kwregistry.NewMockProvider()

	// --- 3. SERWISY ---
	authService := services.NewAuthService(repos.User, jwtSvc, loggers.Auth)
	userService := services.NewUserService(repos.User, loggers.User)
	zlecenieService := services.NewZlecenieService(
		repos.Zlecenie, repos.User, bus, geocoderProvider, fileStorage, loggers.Zlecenie,
	)
	notificationService := services.NewNotificationService(repos.Notification)
	auditService := services.NewAuditService(repos.Audit)
	reportService := services.NewReportService(repos.Zlecenie, repos.User)
	verificationService := services.NewVerificationService(kwProvider, geocoderProvider, loggers.Main)

	// --- 4. KONTROLERY ---
	authCtrl := controllers.NewAuthController(authService, loggers.Auth)
	userCtrl := controllers.NewUserController(userService, loggers.User)
	zlecenieCtrl := controllers.NewZlecenieController(zlecenieService, loggers.Zlecenie)
	notificationCtrl := controllers.NewNotificationController(notificationService, loggers.Main)
	auditCtrl := controllers.NewAuditController(auditService, loggers.Main)
	reportCtrl := controllers.NewReportController(reportService, loggers.Main)
	dictionaryCtrl := controllers.NewDictionaryController(loggers.Main)
	verificationCtrl := controllers.NewVerificationController(verificationService, loggers.Main)

	// --- 5. TRASY ---
	registerAuthRoutes(api, authCtrl, authMW)
	registerZlecenieRoutes(api, zlecenieCtrl, authMW)
	registerUserRoutes(api, userCtrl, authMW)

	protected := api.Group("", authMW.Auth)
	protected.GET("/notifications", notificationCtrl.GetNotifications)
	protected.PATCH("/notifications/read-all", notificationCtrl.MarkAllRead)
	protected.PATCH("/notifications/:id/read", notificationCtrl.MarkRead)
	protected.GET("/audit-log", auditCtrl.GetAuditLog)
	protected.GET("/reports/settlements", reportCtrl.GetSettlements)
	protected.GET("/dictionaries", dictionaryCtrl.GetDictionaries)
	protected.POST("/verifications/kw", verificationCtrl.VerifyKW)
	protected.POST("/verifications/geocode", verificationCtrl.Geocode)
}

func registerAuthRoutes(api *echo.Group, ctrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	auth := api.Group("/auth")
	auth.POST("/login", ctrl.Login)
	auth.POST("/refresh", ctrl.RefreshToken)
	auth.GET("/me", ctrl.Me, authMW.Auth)
}

func registerUserRoutes(api *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	users := api.Group("/users", authMW.Auth)
	users.GET("", ctrl.GetUsers)
	users.GET("/appraisers", ctrl.GetAppraisers)
	users.GET("/:id", ctrl.GetUser)
	users.POST("", ctrl.CreateUser)
	users.PUT("/:id", ctrl.UpdateUser)
}
