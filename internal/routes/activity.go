package routes

import (
	"github.com/labstack/echo/v4"

	"equipment-system/internal/controllers"
)

func runActivityLogRouter(secureGroup *echo.Group, activityCtrl *controllers.ActivityLogController) {
	secureGroup.GET("/activity-logs", activityCtrl.GetActivityLogs)
}
