package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/pkg/config"
	"github.com/jhoicas/Inventario-web/pkg/jwt"
)

// Locals keys para la identidad de la sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
)

// Cookie del tema de la interfaz (no es de sesión, no es HttpOnly).
const (
	ThemeCookie = "invorya_theme"
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// SessionMiddleware lee la cookie de sesión, valida el token y carga la
// identidad en c.Locals. Toda petición sin sesión válida se redirige a
// /sign-in antes de ejecutar cualquier acción.
func SessionMiddleware(cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cfg.CookieName)
		if token == "" {
			return c.Redirect("/sign-in", fiber.StatusSeeOther)
		}
		userID, name, err := jwt.Parse(cfg.Secret, token)
		if err != nil {
			expireSessionCookie(c, cfg.CookieName)
			return c.Redirect("/sign-in", fiber.StatusSeeOther)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, name)
		return c.Next()
	}
}

// CurrentUser devuelve la identidad del contexto (después del middleware de sesión).
func CurrentUser(c *fiber.Ctx) dto.SessionUser {
	id, _ := c.Locals(LocalUserID).(string)
	name, _ := c.Locals(LocalUserName).(string)
	return dto.SessionUser{ID: id, Name: name}
}

// CurrentTheme devuelve el tema guardado en cookie; valores desconocidos caen a system.
func CurrentTheme(c *fiber.Ctx) string {
	switch c.Cookies(ThemeCookie) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return ThemeSystem
	}
}

// setSessionCookie emite la cookie de sesión HttpOnly.
func setSessionCookie(c *fiber.Ctx, cfg config.SessionConfig, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(cfg.Expiration) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// expireSessionCookie invalida la cookie de sesión en el navegador.
func expireSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
