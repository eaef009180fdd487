package routes

import (
	"github.com/labstack/echo/v4"

	"equipment-system/internal/controllers"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardCtrl *controllers.DashboardController) {
	secureGroup.GET("/dashboard/summary", dashboardCtrl.GetSummary)
}
