package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/pkg/config"
	"github.com/rs/zerolog/log"
)

// AuthHandler maneja registro, ingreso y salida (rutas públicas + sign-out).
type AuthHandler struct {
	uc  *auth.AuthUseCase
	cfg config.SessionConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg}
}

// SignInForm renderiza el formulario de ingreso.
// GET /sign-in?error=1
func (h *AuthHandler) SignInForm(c *fiber.Ctx) error {
	return c.Render("sign_in", fiber.Map{
		"Title": "Ingresar",
		"Theme": CurrentTheme(c),
		"Error": c.Query("error"),
	}, "layouts/auth")
}

// SignIn verifica credenciales, emite la cookie de sesión y redirige al dashboard.
// POST /sign-in
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect("/sign-in?error=1", fiber.StatusSeeOther)
	}
	token, _, err := h.uc.Login(c.Context(), form)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) && !errors.Is(err, domain.ErrUnauthorized) && !errors.Is(err, domain.ErrInvalidInput) {
			log.Error().Err(err).Msg("ingreso falló")
		}
		return c.Redirect("/sign-in?error=1", fiber.StatusSeeOther)
	}
	setSessionCookie(c, h.cfg, token)
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// SignUpForm renderiza el formulario de registro.
// GET /sign-up?error=1|email
func (h *AuthHandler) SignUpForm(c *fiber.Ctx) error {
	return c.Render("sign_up", fiber.Map{
		"Title": "Crear cuenta",
		"Theme": CurrentTheme(c),
		"Error": c.Query("error"),
	}, "layouts/auth")
}

// SignUp registra al usuario, emite la cookie de sesión y redirige al dashboard.
// POST /sign-up
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var form dto.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect("/sign-up?error=1", fiber.StatusSeeOther)
	}
	token, _, err := h.uc.Register(c.Context(), form)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Redirect("/sign-up?error=email", fiber.StatusSeeOther)
		}
		if !errors.Is(err, domain.ErrInvalidInput) {
			log.Error().Err(err).Msg("registro falló")
		}
		return c.Redirect("/sign-up?error=1", fiber.StatusSeeOther)
	}
	setSessionCookie(c, h.cfg, token)
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// SignOut invalida la cookie de sesión y vuelve al ingreso.
// POST /sign-out
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	expireSessionCookie(c, h.cfg.CookieName)
	return c.Redirect("/sign-in", fiber.StatusSeeOther)
}
