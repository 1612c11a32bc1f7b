package dto

// RegisterForm entrada del formulario de registro.
type RegisterForm struct {
	Name     string `form:"name" validate:"required,min=1,max=200"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

// LoginForm entrada del formulario de ingreso.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SessionUser identidad autenticada del request (desde la cookie de sesión).
type SessionUser struct {
	ID   string
	Name string
}
