package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/analytics"
	"github.com/rs/zerolog/log"
)

// DashboardHandler maneja la vista del dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Show renderiza el resumen del inventario.
// GET /dashboard
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	user := CurrentUser(c)

	summary, err := h.uc.GetSummary(c.Context(), user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("dashboard falló")
		return c.Render("dashboard", fiber.Map{
			"Title":     "Dashboard",
			"User":      user,
			"Theme":     CurrentTheme(c),
			"LoadError": true,
		}, "layouts/main")
	}

	return c.Render("dashboard", fiber.Map{
		"Title":   "Dashboard",
		"User":    user,
		"Theme":   CurrentTheme(c),
		"Summary": summary,
	}, "layouts/main")
}
