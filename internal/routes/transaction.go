package routes

import (
	"github.com/labstack/echo/v4"

	"equipment-system/internal/controllers"
)

func runTransactionRouter(secureGroup *echo.Group, transactionCtrl *controllers.TransactionController) {
	{
		secureGroup.GET("/transactions", transactionCtrl.GetTransactions)
		secureGroup.GET("/transactions/:id", transactionCtrl.FindTransaction)
		secureGroup.POST("/transactions/:id/release", transactionCtrl.ReleaseTransaction)
		secureGroup.PATCH("/transactions/:id/status", transactionCtrl.UpdateTransactionStatus)
	}
}
