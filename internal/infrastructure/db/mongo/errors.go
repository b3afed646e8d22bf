package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

// mapStorageError translates a driver error into the domain taxonomy at the
// port boundary. The match is total: duplicate keys become Duplicate, absent
// documents are handled by the callers before reaching here, and every other
// fault collapses into Internal so no raw driver error crosses a port.
func mapStorageError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case mongo.IsDuplicateKeyError(err):
		return domain.Duplicate("entity already exists")
	default:
		return domain.Internalf("%s: %v", op, err)
	}
}
