package entity

import "time"

// User representa un usuario de la aplicación. Cada usuario solo ve y opera
// sobre sus propios productos.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
}
