package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-web/internal/interfaces/web"
	"github.com/jhoicas/Inventario-web/pkg/config"
	pkgjwt "github.com/jhoicas/Inventario-web/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSessionSecret = "test-secret-key-for-unit-tests"
	testUserID        = "00000000-0000-0000-0000-000000000001"
	testUserName      = "Ana"
	testIssuer        = "invorya-test"
	testExpMin        = 60
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:     testSessionSecret,
		CookieName: "invorya_session",
		Expiration: testExpMin,
		Issuer:     testIssuer,
	}
}

// buildSessionApp construye una aplicación Fiber mínima con el middleware de
// sesión y un handler dummy que expone la identidad cargada en locals.
func buildSessionApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		web.SessionMiddleware(testSessionConfig()),
		func(c *fiber.Ctx) error {
			u := web.CurrentUser(c)
			return c.SendString(u.ID + "|" + u.Name)
		},
	)
	return app
}

func sessionToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testSessionSecret, testUserID, testUserName, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token de sesión válido")
	return tok
}

// doProtected lanza GET /protected con la cookie indicada (vacía = sin cookie).
func doProtected(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "invorya_session", Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SessionMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: cookie con token válido → pasa y los locals traen la identidad.
func TestSessionMiddleware_SesionValidaCargaIdentidad(t *testing.T) {
	app := buildSessionApp()
	resp := doProtected(t, app, sessionToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, testUserID+"|"+testUserName, string(body))
}

// Caso 2: sin cookie de sesión → redirección 303 a /sign-in, el handler no corre.
func TestSessionMiddleware_SinCookieRedirigeASignIn(t *testing.T) {
	app := buildSessionApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/sign-in", resp.Header.Get("Location"))
}

// Caso 3: token malformado → se expira la cookie y se redirige a /sign-in.
func TestSessionMiddleware_TokenInvalidoRedirigeYExpiraCookie(t *testing.T) {
	app := buildSessionApp()
	resp := doProtected(t, app, "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/sign-in", resp.Header.Get("Location"))

	var expired bool
	for _, c := range resp.Cookies() {
		if c.Name == "invorya_session" && c.Value == "" {
			expired = true
		}
	}
	assert.True(t, expired, "la cookie de sesión debe invalidarse en el navegador")
}

// Caso 4: token firmado con otro secret → 303 a /sign-in.
func TestSessionMiddleware_SecretIncorrectoRedirige(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret-completamente-distinto", testUserID, testUserName, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildSessionApp()
	resp := doProtected(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

// Caso 5: token expirado → 303 a /sign-in.
func TestSessionMiddleware_TokenExpiradoRedirige(t *testing.T) {
	tok, err := pkgjwt.Generate(testSessionSecret, testUserID, testUserName, testIssuer, -1)
	require.NoError(t, err)

	app := buildSessionApp()
	resp := doProtected(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSessionSecret, testUserID, testUserName, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, name, err := pkgjwt.Parse(testSessionSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testUserName, name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CurrentTheme
// ──────────────────────────────────────────────────────────────────────────────

// Valores desconocidos de la cookie de tema caen a system.
func TestCurrentTheme_DesconocidoCaeASystem(t *testing.T) {
	app := fiber.New()
	app.Get("/theme", func(c *fiber.Ctx) error {
		return c.SendString(web.CurrentTheme(c))
	})

	cases := map[string]string{
		"light":  "light",
		"dark":   "dark",
		"system": "system",
		"neon":   "system",
		"":       "system",
		"LIGHT":  "system",
	}
	for value, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/theme", nil)
		if value != "" {
			req.AddCookie(&http.Cookie{Name: web.ThemeCookie, Value: value})
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, want, string(body), "cookie %q", value)
	}
}
