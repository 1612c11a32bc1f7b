package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
	"github.com/jhoicas/Inventario-web/pkg/jwt"
	"github.com/jhoicas/Inventario-web/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// SessionConfig configuración para la emisión de tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, ingreso y sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	val      validator.Validator
	cfg      SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, val validator.Validator, cfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, val: val, cfg: cfg}
}

// Register crea un usuario: hashea el password con bcrypt, persiste y emite el
// token de sesión. Devuelve ErrEmailAlreadyExists si el email ya está en uso.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterForm) (string, *dto.SessionUser, error) {
	if err := uc.val.Validate(in); err != nil {
		return "", nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}
	return uc.issueSession(user)
}

// Login verifica email/password y emite el token de sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginForm) (string, *dto.SessionUser, error) {
	if err := uc.val.Validate(in); err != nil {
		return "", nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	return uc.issueSession(user)
}

// Profile devuelve el usuario de la sesión (datos de cuenta para configuración).
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (uc *AuthUseCase) issueSession(user *entity.User) (string, *dto.SessionUser, error) {
	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Name, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, &dto.SessionUser{ID: user.ID, Name: user.Name}, nil
}
