package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/pkg/jwt"
	"github.com/jhoicas/Inventario-web/pkg/validator"
)

// fakeUserRepo almacena usuarios en memoria indexados por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func testAuthConfig() auth.SessionConfig {
	return auth.SessionConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "invorya-test",
	}
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, validator.New(), testAuthConfig())
}

func registerAna(t *testing.T, uc *auth.AuthUseCase) *dto.SessionUser {
	t.Helper()
	_, user, err := uc.Register(context.Background(), dto.RegisterForm{
		Name: "Ana", Email: "ana@example.com", Password: "secreta-123",
	})
	require.NoError(t, err)
	return user
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

// Registro válido: se persiste el usuario con hash bcrypt (nunca el password en
// claro) y el token emitido trae la identidad.
func TestRegister_EmiteSesionYHasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	token, user, err := uc.Register(context.Background(), dto.RegisterForm{
		Name: "Ana", Email: "ana@example.com", Password: "secreta-123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "Ana", user.Name)

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta-123", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "secreta")

	userID, name, err := jwt.Parse(testAuthConfig().Secret, token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
	assert.Equal(t, "Ana", name)
}

// Email ya registrado → ErrEmailAlreadyExists, sin token.
func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	registerAna(t, uc)

	token, user, err := uc.Register(context.Background(), dto.RegisterForm{
		Name: "Otra Ana", Email: "ana@example.com", Password: "otra-clave-9",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

// Email malformado o password corto fallan la validación.
func TestRegister_EntradaInvalida(t *testing.T) {
	cases := []struct {
		name string
		form dto.RegisterForm
	}{
		{"email malformado", dto.RegisterForm{Name: "Ana", Email: "no-es-email", Password: "secreta-123"}},
		{"password corto", dto.RegisterForm{Name: "Ana", Email: "ana@example.com", Password: "corta"}},
		{"nombre vacío", dto.RegisterForm{Name: "", Email: "ana@example.com", Password: "secreta-123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newAuthUC(newFakeUserRepo())
			_, _, err := uc.Register(context.Background(), tc.form)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	registered := registerAna(t, uc)

	token, user, err := uc.Login(context.Background(), dto.LoginForm{
		Email: "ana@example.com", Password: "secreta-123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	registerAna(t, uc)

	_, _, err := uc.Login(context.Background(), dto.LoginForm{
		Email: "ana@example.com", Password: "equivocada-99",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Profile
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_DevuelveCuentaDeLaSesion(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	registered := registerAna(t, uc)

	profile, err := uc.Profile(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", profile.Email)
	assert.Equal(t, "Ana", profile.Name)
}

func TestProfile_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Profile(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, _, err := uc.Login(context.Background(), dto.LoginForm{
		Email: "nadie@example.com", Password: "cualquiera-1",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
