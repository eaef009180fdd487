package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/controllers"
	"equipment-system/internal/listeners"
	"equipment-system/internal/repositories"
	"equipment-system/internal/services"
	"equipment-system/pkg/config"
	"equipment-system/pkg/eventbus"
	"equipment-system/pkg/middleware"
	"equipment-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	bus *eventbus.Bus,
	logger *zap.Logger,
	cfg *config.Config,
) {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- 1. РЕПОЗИТОРИИ ---
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	requestRepo := repositories.NewRequestRepository(dbConn, logger)
	transactionRepo := repositories.NewTransactionRepository(dbConn, logger)
	employeeRepo := repositories.NewEmployeeRepository(dbConn, logger)
	categoryRepo := repositories.NewCategoryRepository(dbConn)
	counterRepo := repositories.NewCounterRepository()
	activityRepo := repositories.NewActivityLogRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЛУШАТЕЛИ СОБЫТИЙ ---
	listeners.NewActivityListener(activityRepo, logger).Register(bus)

	// --- 3. СЕРВИСЫ ---
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	importService := services.NewEquipmentImportService(dbConn, logger)
	requestService := services.NewRequestService(
		dbConn, requestRepo, equipmentRepo, employeeRepo, transactionRepo, counterRepo, bus, logger,
	)
	transactionService := services.NewTransactionService(dbConn, transactionRepo, equipmentRepo, bus, logger)
	employeeService := services.NewEmployeeService(employeeRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, cfg.Dashboard.CacheTTL, logger)
	activityService := services.NewActivityLogService(activityRepo, logger)

	// --- 4. КОНТРОЛЛЕРЫ ---
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, importService, logger)
	requestCtrl := controllers.NewRequestController(requestService, logger)
	transactionCtrl := controllers.NewTransactionController(transactionService, logger)
	employeeCtrl := controllers.NewEmployeeController(employeeService, logger)
	categoryCtrl := controllers.NewCategoryController(categoryService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	activityCtrl := controllers.NewActivityLogController(activityService, logger)

	// --- 5. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runEquipmentRouter(secureGroup, equipmentCtrl)
	runRequestRouter(secureGroup, requestCtrl)
	runTransactionRouter(secureGroup, transactionCtrl)
	runEmployeeRouter(secureGroup, employeeCtrl)
	runCategoryRouter(secureGroup, categoryCtrl)
	runDashboardRouter(secureGroup, dashboardCtrl)
	runActivityLogRouter(secureGroup, activityCtrl)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
