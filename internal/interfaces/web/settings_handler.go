package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/rs/zerolog/log"
)

// SettingsHandler maneja la página de configuración y el tema (protegido).
type SettingsHandler struct {
	uc *auth.AuthUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *auth.AuthUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Show renderiza la configuración de la cuenta.
// GET /settings
func (h *SettingsHandler) Show(c *fiber.Ctx) error {
	user := CurrentUser(c)

	// El email no viaja en la sesión; se consulta para mostrarlo en la cuenta.
	email := ""
	if profile, err := h.uc.Profile(c.Context(), user.ID); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("perfil de configuración falló")
	} else {
		email = profile.Email
	}

	return c.Render("settings", fiber.Map{
		"Title": "Configuración",
		"User":  user,
		"Email": email,
		"Theme": CurrentTheme(c),
	}, "layouts/main")
}

// SetTheme guarda el tema elegido en cookie y vuelve a la configuración.
// Valores desconocidos caen a system.
// POST /settings/theme (campo: theme)
func (h *SettingsHandler) SetTheme(c *fiber.Ctx) error {
	theme := c.FormValue("theme")
	switch theme {
	case ThemeLight, ThemeDark:
	default:
		theme = ThemeSystem
	}
	c.Cookie(&fiber.Cookie{
		Name:     ThemeCookie,
		Value:    theme,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/settings", fiber.StatusSeeOther)
}
