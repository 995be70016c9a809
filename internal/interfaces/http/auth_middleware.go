package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/tenant"
	"github.com/jhoicas/Farmacia-api/pkg/jwt"
)

// Locals keys para la sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalTenantID = "tenant_id"
	LocalRole     = "role"
)

// SessionVerifier valida un token Bearer y devuelve la sesión. Hay dos implementaciones:
// JWTVerifier (tokens propios) y el verificador de ID tokens de Firebase.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Session, error)
}

// JWTVerifier verifica tokens firmados con pkg/jwt.
type JWTVerifier struct {
	Secret string
}

func (v JWTVerifier) Verify(_ context.Context, token string) (*entity.Session, error) {
	claims, err := jwt.Parse(v.Secret, token)
	if err != nil {
		return nil, err
	}
	return &entity.Session{UserID: claims.UserID, OwnerID: claims.OwnerID, Role: claims.Role}, nil
}

// AuthMiddleware valida el Bearer Token, resuelve el tenant y carga user_id, tenant_id y role en c.Locals.
// El usuario también viaja en el UserContext para que los casos de uso registren quién escribió.
func AuthMiddleware(verifier SessionVerifier, profiles tenant.ProfileCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}

		ctx := c.UserContext()
		session, err := verifier.Verify(ctx, tokenString)
		if err != nil || session == nil || session.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		tenantID, err := tenant.ResolveTenantID(ctx, session, profiles)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NOT_AUTHENTICATED", Message: "no se pudo determinar la farmacia del usuario"})
		}

		role := session.Role
		if role == "" && profiles != nil {
			if p, perr := profiles.CachedProfile(ctx, session.UserID); perr == nil && p != nil {
				role = p.Role
			}
		}

		c.Locals(LocalUserID, session.UserID)
		c.Locals(LocalTenantID, tenantID)
		c.Locals(LocalRole, role)
		c.SetUserContext(tenant.WithUser(ctx, session.UserID))
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados. Usar después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetTenantID devuelve el dueño (tenant) resuelto para la sesión.
func GetTenantID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalTenantID).(string)
	return s
}

func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
