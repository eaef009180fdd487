package routes

import (
	"github.com/labstack/echo/v4"

	"equipment-system/internal/controllers"
)

func runCategoryRouter(secureGroup *echo.Group, categoryCtrl *controllers.CategoryController) {
	{
		secureGroup.GET("/categories", categoryCtrl.GetCategories)
		secureGroup.POST("/categories", categoryCtrl.CreateCategory)
		secureGroup.GET("/categories/:id", categoryCtrl.FindCategory)
		secureGroup.PUT("/categories/:id", categoryCtrl.UpdateCategory)
		secureGroup.DELETE("/categories/:id", categoryCtrl.DeleteCategory)
	}
}
