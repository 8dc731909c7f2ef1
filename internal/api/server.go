package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campus-parking/registration-api/docs"
	v1 "github.com/campus-parking/registration-api/internal/api/handler/v1"
	"github.com/campus-parking/registration-api/internal/api/middleware"
	"github.com/campus-parking/registration-api/internal/config"
	"github.com/campus-parking/registration-api/internal/repository"
	"github.com/campus-parking/registration-api/internal/repository/dao"
	"github.com/campus-parking/registration-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	// The state repository and the in-memory inventory are shared:
	// every component reads and writes the same store, and admin
	// mutations must be visible to the selector.
	stateRepo := repository.NewStateRepository(dao.NewKVDAO(db))
	inventorySvc := s.initInventoryService()

	selectionHandler := s.initSelectionHandler(stateRepo, inventorySvc)
	registrationHandler := s.initRegistrationHandler(stateRepo, inventorySvc)
	adminHandler, adminSvc := s.initAdminHandler(stateRepo, inventorySvc)
	preferenceHandler := s.initPreferenceHandler(stateRepo)

	s.MountHandlers(selectionHandler, registrationHandler, adminHandler, preferenceHandler, adminSvc)

	return s
}

func (s *Server) initInventoryService() *service.InventoryService {
	repo := repository.NewInventoryRepository(s.Config.Inventory.Path)
	svc := service.NewInventoryService(repo)

	// A failed load leaves the inventory empty and the selector
	// degraded; the admin refresh action is the only retry.
	if err := svc.Load(); err != nil {
		zap.L().Warn("inventory unavailable at startup", zap.Error(err))
	}

	return svc
}

func (s *Server) initSelectionHandler(stateRepo *repository.StateRepository, inventorySvc *service.InventoryService) *v1.SelectionHandler {
	svc := service.NewSelectionService(stateRepo, inventorySvc)
	handler := v1.NewSelectionHandler(svc, inventorySvc)

	return handler
}

func (s *Server) initRegistrationHandler(stateRepo *repository.StateRepository, inventorySvc *service.InventoryService) *v1.RegistrationHandler {
	svc := service.NewRegistrationService(stateRepo, inventorySvc)
	handler := v1.NewRegistrationHandler(svc)

	return handler
}

func (s *Server) initAdminHandler(stateRepo *repository.StateRepository, inventorySvc *service.InventoryService) (*v1.AdminHandler, *service.AdminService) {
	svc := service.NewAdminService(s.Config.Admin, stateRepo, inventorySvc)
	handler := v1.NewAdminHandler(s.Config.API, svc)

	return handler, svc
}

func (s *Server) initPreferenceHandler(stateRepo *repository.StateRepository) *v1.PreferenceHandler {
	svc := service.NewPreferenceService(stateRepo)
	handler := v1.NewPreferenceHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	selectionHandler *v1.SelectionHandler,
	registrationHandler *v1.RegistrationHandler,
	adminHandler *v1.AdminHandler,
	preferenceHandler *v1.PreferenceHandler,
	sessions middleware.SessionVerifier,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.GET("/lots", selectionHandler.HandleListLots)
		public.GET("/lots/:lotKey/spots", selectionHandler.HandleGetLotSpots)
		public.PUT("/selection", selectionHandler.HandlePutSelection)
		public.GET("/selection", selectionHandler.HandleGetSelection)

		public.POST("/registrations", registrationHandler.HandleSubmitRegistration)
		public.GET("/registrations/current", registrationHandler.HandleGetCurrentRegistration)
		public.GET("/registrations/current/summary", registrationHandler.HandleGetConfirmationSummary)

		public.GET("/preferences/theme", preferenceHandler.HandleGetTheme)
		public.PUT("/preferences/theme", preferenceHandler.HandlePutTheme)

		public.POST("/admin/login", adminHandler.HandleLogin)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey, sessions).VerifyAdminSession())
	{
		admin.POST("/admin/logout", adminHandler.HandleLogout)
		admin.GET("/admin/stats", adminHandler.HandleGetStats)
		admin.GET("/admin/registrations", adminHandler.HandleGetRegistrations)
		admin.GET("/admin/registrations/:referenceID/summary", adminHandler.HandleGetRegistrationSummary)
		admin.DELETE("/admin/registrations/:referenceID", adminHandler.HandleDeleteRegistration)
		admin.GET("/admin/spots", adminHandler.HandleGetSpots)
		admin.POST("/admin/spots/:lotKey/:spotID/clear", adminHandler.HandleClearSpot)
		admin.POST("/admin/refresh", adminHandler.HandleRefresh)
		admin.POST("/admin/reset", adminHandler.HandleReset)
		admin.GET("/admin/export", adminHandler.HandleExport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Campus Parking Registration API"
	docs.SwaggerInfo.Description = "Student parking spot registration and administration."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
