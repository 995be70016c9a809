// Package tenant resuelve el dueño (tenant) bajo el cual se leen y escriben los
// documentos de una sesión.
package tenant

import (
	"context"
	"strings"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ProfileCache perfil local del usuario (último conocido). Devuelve nil, nil si no hay.
type ProfileCache interface {
	CachedProfile(ctx context.Context, userID string) (*entity.CachedProfile, error)
}

// ResolveTenantID determina el tenant de la sesión:
//  1. dueño autenticado → su propio UserID;
//  2. claim OwnerID en el token;
//  3. perfil guardado localmente para el usuario.
//
// Sin ninguno de los anteriores devuelve domain.ErrNotAuthenticated.
func ResolveTenantID(ctx context.Context, session *entity.Session, cache ProfileCache) (string, error) {
	if session == nil || strings.TrimSpace(session.UserID) == "" {
		return "", domain.ErrNotAuthenticated
	}
	if session.Role == entity.RoleOwner {
		return strings.TrimSpace(session.UserID), nil
	}
	if owner := strings.TrimSpace(session.OwnerID); owner != "" {
		return owner, nil
	}
	if cache == nil {
		return "", domain.ErrNotAuthenticated
	}
	profile, err := cache.CachedProfile(ctx, session.UserID)
	if err != nil || profile == nil {
		return "", domain.ErrNotAuthenticated
	}
	if owner := strings.TrimSpace(profile.OwnerID); owner != "" {
		return owner, nil
	}
	return "", domain.ErrNotAuthenticated
}
