package firebase

import (
	"context"
	"fmt"
	"strings"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// IDTokenVerifier lo cumple *auth.Client.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// TokenVerifier convierte un ID token de Firebase en una sesión.
// Los custom claims owner_id y role los asigna el backoffice al crear farmacéuticos.
type TokenVerifier struct {
	auth IDTokenVerifier
}

// NewAuthClient inicializa la app de Firebase y devuelve su cliente de Auth.
func NewAuthClient(ctx context.Context, projectID, credentialsFile string) (*auth.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: crear app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: cliente auth: %w", err)
	}
	return client, nil
}

func NewTokenVerifier(a IDTokenVerifier) *TokenVerifier {
	return &TokenVerifier{auth: a}
}

func (v *TokenVerifier) Verify(ctx context.Context, idToken string) (*entity.Session, error) {
	token, err := v.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	uid := strings.TrimSpace(token.UID)
	if uid == "" {
		return nil, domain.ErrUnauthorized
	}
	return &entity.Session{
		UserID:  uid,
		OwnerID: claimString(token.Claims, "owner_id"),
		Role:    claimString(token.Claims, "role"),
	}, nil
}

func claimString(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return strings.TrimSpace(s)
}
