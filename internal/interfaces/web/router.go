package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/analytics"
	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/jhoicas/Inventario-web/internal/application/usecase"
	"github.com/jhoicas/Inventario-web/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	ReportUC    *usecase.ReportUseCase
	DashboardUC *analytics.DashboardUseCase
	Session     config.SessionConfig
}

// Router registra las rutas de la aplicación web.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)

	// Auth (público)
	app.Get("/sign-in", authHandler.SignInForm)
	app.Post("/sign-in", authHandler.SignIn)
	app.Get("/sign-up", authHandler.SignUpForm)
	app.Post("/sign-up", authHandler.SignUp)

	// Rutas protegidas (requieren cookie de sesión válida)
	protected := app.Group("/", SessionMiddleware(deps.Session))

	protected.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	})

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Show)

	productHandler := NewProductHandler(deps.ProductUC, deps.ReportUC)
	protected.Get("/inventory", productHandler.List)
	protected.Get("/inventory/report.pdf", productHandler.Report)
	protected.Post("/inventory/delete", productHandler.Delete)
	protected.Get("/add-product", productHandler.NewForm)
	protected.Post("/products", productHandler.Create)

	settingsHandler := NewSettingsHandler(deps.AuthUC)
	protected.Get("/settings", settingsHandler.Show)
	protected.Post("/settings/theme", settingsHandler.SetTheme)

	protected.Post("/sign-out", authHandler.SignOut)
}
