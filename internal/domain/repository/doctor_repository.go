package repository

import (
	"context"
	"errors"

	"medical-agent-webhook/internal/domain/entity"
)

// ErrStoreUnavailable wraps any failure to reach or query the directory store
var ErrStoreUnavailable = errors.New("doctor directory unavailable")

// DoctorRepository is the read-only doctor directory. Implementations must
// return every doctor satisfying all predicates of the query.
type DoctorRepository interface {
	FindByQuery(ctx context.Context, query *entity.DirectoryQuery) ([]entity.Doctor, error)
}
