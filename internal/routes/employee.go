package routes

import (
	"github.com/labstack/echo/v4"

	"equipment-system/internal/controllers"
)

func runEmployeeRouter(secureGroup *echo.Group, employeeCtrl *controllers.EmployeeController) {
	{
		secureGroup.GET("/employees", employeeCtrl.GetEmployees)
		secureGroup.POST("/employees", employeeCtrl.CreateEmployee)
		secureGroup.GET("/employees/:id", employeeCtrl.FindEmployee)
		secureGroup.PUT("/employees/:id", employeeCtrl.UpdateEmployee)
		secureGroup.DELETE("/employees/:id", employeeCtrl.DeleteEmployee)
	}
}
