package main

import (
	"tracklytic/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeHandlers struct {
	health       *handlers.HealthCheckHandler
	auth         *handlers.AuthHandler
	categories   *handlers.CategoryHandler
	transactions *handlers.TransactionHandler
	budgets      *handlers.BudgetHandler
	savingPlans  *handlers.SavingPlanHandler
	recurring    *handlers.RecurringHandler
	receipts     *handlers.ReceiptHandler
	insights     *handlers.InsightHandler
	// dev is nil outside development
	dev *handlers.DevHandler
}

func newRouteHandlers(a *app) routeHandlers {
	h := routeHandlers{
		health:       handlers.NewHealthCheckHandler(a.db.DB),
		auth:         handlers.NewAuthHandler(a.auth, a.tokens, a.cfg.Cookie),
		categories:   handlers.NewCategoryHandler(a.categories),
		transactions: handlers.NewTransactionHandler(a.transactions, a.clock),
		budgets:      handlers.NewBudgetHandler(a.budgets, a.clock),
		savingPlans:  handlers.NewSavingPlanHandler(a.savingPlans, a.clock),
		recurring:    handlers.NewRecurringHandler(a.recurring),
		receipts:     handlers.NewReceiptHandler(a.receipts),
		insights:     handlers.NewInsightHandler(a.insights),
	}
	if a.cfg.IsDevelopment() {
		h.dev = handlers.NewDevHandler(a.seeder)
	}
	return h
}

func registerRoutes(e *echo.Echo, h routeHandlers, requireAuth echo.MiddlewareFunc) {
	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	auth := e.Group("/auth")
	auth.POST("/users", h.auth.Register)
	auth.POST("/jwt/create", h.auth.Login)
	auth.POST("/jwt/refresh", h.auth.RefreshToken)
	auth.POST("/logout", h.auth.Logout)
	auth.GET("/users/me", h.auth.Me, requireAuth)

	t := e.Group("/tracker", requireAuth)

	t.POST("/add/category", h.categories.Create)
	t.GET("/get/categories", h.categories.List)
	t.DELETE("/category/:id", h.categories.Delete)

	t.POST("/add/transaction", h.transactions.Create)
	t.GET("/transactions", h.transactions.List)
	t.GET("/transactions/summary", h.transactions.Summary)
	t.GET("/transactions/:id", h.transactions.Get)
	t.DELETE("/transactions/:id", h.transactions.Delete)

	t.POST("/add/general/budget", h.budgets.CreateGeneral)
	t.POST("/add/category/budget", h.budgets.CreateForCategory)
	t.PUT("/edit/general/budget/:id", h.budgets.EditGeneral)
	t.PUT("/edit/category/budget/:id", h.budgets.EditCategory)
	t.GET("/budgets", h.budgets.List)
	t.GET("/budget/status", h.budgets.Status)

	t.POST("/add/saving/plan", h.savingPlans.Create)
	t.GET("/check/saving/plan/status", h.savingPlans.CheckStatus)
	t.PUT("/renew/saving/plan/:id", h.savingPlans.Renew)
	t.GET("/user/saving/plan", h.savingPlans.List)

	t.POST("/recurring", h.recurring.Create)
	t.GET("/recurring", h.recurring.List)
	t.DELETE("/recurring/:id", h.recurring.Deactivate)

	t.POST("/transaction/upload/receipt", h.receipts.Upload)
	t.GET("/ai/insights", h.insights.Get)

	if h.dev != nil {
		e.POST("/dev/seed", h.dev.Seed, requireAuth)
	}
}
