package routes

import (
	"github.com/labstack/echo/v4"

	"equipment-system/internal/controllers"
)

func runRequestRouter(secureGroup *echo.Group, requestCtrl *controllers.RequestController) {
	{
		secureGroup.GET("/requests", requestCtrl.GetRequests)
		secureGroup.POST("/requests", requestCtrl.CreateRequest)
		secureGroup.GET("/requests/:id", requestCtrl.FindRequest)
		secureGroup.PUT("/requests/:id", requestCtrl.UpdateRequest)
		secureGroup.DELETE("/requests/:id", requestCtrl.DeleteRequest)
		secureGroup.POST("/requests/:id/approve", requestCtrl.ApproveRequest)
		secureGroup.POST("/requests/:id/reject", requestCtrl.RejectRequest)
	}
}
