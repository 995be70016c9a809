package firestoredb

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// mapErr traduce los códigos gRPC de Firestore a errores de dominio.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return domain.ErrNotFound
	case codes.AlreadyExists:
		return fmt.Errorf("firestore: %s: %w", op, domain.ErrDuplicate)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("firestore: %s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("firestore: %s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("firestore: %s: %w", op, err)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
