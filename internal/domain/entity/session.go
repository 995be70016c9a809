package entity

import "time"

// Session identidad verificada de quien llama (token JWT o Firebase).
// OwnerID puede venir vacío para farmacéuticos cuyo token no lleva el claim.
type Session struct {
	UserID  string
	OwnerID string
	Role    string
}

// CachedProfile perfil de usuario guardado localmente (último conocido).
type CachedProfile struct {
	UserID    string
	OwnerID   string
	Role      string
	UpdatedAt time.Time
}
