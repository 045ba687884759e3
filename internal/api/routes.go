package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/register", handler.Register)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	employees := api.Group("/employees", handler.AuthRequired)
	employees.Get("", handler.ManagerOnly, handler.ListEmployees)
	employees.Post("", handler.ManagerOnly, handler.ProvisionEmployee)
	employees.Post("/reset-password", handler.ManagerOnly, handler.ResetEmployeePassword)
	employees.Get("/:id", handler.ManagerOnly, handler.GetEmployee)
	employees.Post("/:id/deactivate", handler.ManagerOnly, handler.DeactivateEmployee)
	employees.Get("/:id/earnings", handler.GetEmployeeEarnings)

	salaries := api.Group("/salaries", handler.AuthRequired, handler.ManagerOnly)
	salaries.Post("/recompute", handler.RecomputeSalaries)
	salaries.Get("", handler.ListSalaries)
	salaries.Post("/:id/pay", handler.MarkSalaryPaid)

	api.Get("/leaderboard", handler.AuthRequired, handler.GetLeaderboard)

	payouts := api.Group("/payout-requests", handler.AuthRequired)
	payouts.Post("", handler.SubmitPayoutRequest)
	payouts.Get("", handler.ManagerOnly, handler.ListPayoutRequests)
	payouts.Post("/:id/approve", handler.ManagerOnly, handler.ApprovePayoutRequest)
	payouts.Post("/:id/reject", handler.ManagerOnly, handler.RejectPayoutRequest)

	transactions := api.Group("/transactions", handler.AuthRequired, handler.ManagerOnly)
	transactions.Post("/:id/correct", handler.CorrectTransaction)
	transactions.Get("/:id/corrections", handler.GetTransactionCorrections)

	importGroup := api.Group("/import")
	importGroup.Post("/token", handler.AuthRequired, handler.ManagerOnly, handler.MintImportToken)
	importGroup.Post("/transactions", handler.ImportTokenRequired, handler.ImportTransactions)
}
