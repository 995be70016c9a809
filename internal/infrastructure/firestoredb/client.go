package firestoredb

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Client envuelve el cliente de Firestore y expone Ping para el monitor de conectividad.
type Client struct {
	FS        *firestore.Client
	ProjectID string
}

// NewClient inicializa el cliente. Con credentialsFile vacío usa las credenciales por defecto del entorno.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	fs, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: crear cliente: %w", err)
	}
	return &Client{FS: fs, ProjectID: projectID}, nil
}

// Ping hace una lectura mínima; Firestore no tiene un endpoint de salud propio.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.FS == nil {
		return fmt.Errorf("firestore: ping: cliente nil")
	}
	iter := c.FS.Collections(ctx)
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return mapErr("ping", err)
	}
	return nil
}

func (c *Client) Close() error {
	if c == nil || c.FS == nil {
		return nil
	}
	return c.FS.Close()
}

func (c *Client) tenant(tenantID string) *firestore.DocumentRef {
	return c.FS.Collection("tenants").Doc(tenantID)
}
