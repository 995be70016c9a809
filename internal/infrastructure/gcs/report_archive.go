package gcs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/jhoicas/Farmacia-api/internal/application/report"
)

var _ report.Archive = (*ReportArchive)(nil)

// ReportArchive guarda los PDF generados en un bucket de Cloud Storage.
type ReportArchive struct {
	Client *storage.Client
	Bucket string
}

// NewClient crea el cliente de Storage; credentialsFile vacío usa las credenciales del entorno.
func NewClient(ctx context.Context, credentialsFile string) (*storage.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	c, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: crear cliente: %w", err)
	}
	return c, nil
}

func NewReportArchive(client *storage.Client, bucket string) *ReportArchive {
	return &ReportArchive{Client: client, Bucket: strings.TrimSpace(bucket)}
}

// Upload sobrescribe el objeto si ya existe (un reporte por farmacia y mes).
func (a *ReportArchive) Upload(ctx context.Context, objectName, contentType string, data []byte) error {
	if a == nil || a.Client == nil {
		return errors.New("gcs: cliente nil")
	}
	if a.Bucket == "" {
		return errors.New("gcs: bucket vacío")
	}
	obj := strings.TrimSpace(objectName)
	if obj == "" {
		return errors.New("gcs: nombre de objeto vacío")
	}

	w := a.Client.Bucket(a.Bucket).Object(obj).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("gcs: escribir %s: %w", obj, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs: cerrar %s: %w", obj, err)
	}
	return nil
}
