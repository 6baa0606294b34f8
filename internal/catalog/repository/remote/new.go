package remote

import (
	"fmt"

	"storefront/internal/catalog/repository"
	"storefront/pkg/dummyjson"
	"storefront/pkg/log"
)

type implRepository struct {
	client dummyjson.IDummyJSON
	l      log.Logger
}

// New creates a catalog Repository backed by the remote catalog collaborator.
func New(client dummyjson.IDummyJSON, l log.Logger) repository.Repository {
	if client == nil {
		panic("catalog/repository/remote: client is required")
	}
	return &implRepository{client: client, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/remote.%s", method)
}
