package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, transactionHandler *TransactionHandler, goalHandler *GoalHandler, metricsHandler *MetricsHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Goal routes
	goals := api.Group("/goals")
	goals.GET("", goalHandler.GetGoals)
	goals.POST("", goalHandler.UpsertGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/contributions", goalHandler.Contribute)

	// Metrics routes
	metrics := api.Group("/metrics")
	metrics.GET("/totals", metricsHandler.GetTotals)
	metrics.GET("/daily", metricsHandler.GetDailySeries)
	metrics.GET("/categories", metricsHandler.GetCategoryBreakdown)
}
