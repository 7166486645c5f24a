package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"medical-agent-webhook/internal/domain/entity"
	domainRepo "medical-agent-webhook/internal/domain/repository"
)

type memoryDoctorRepository struct {
	mu      sync.RWMutex
	doctors []entity.Doctor
}

// NewMemoryDoctorRepository serves the directory from a fixed in-process list,
// returned in insertion order
func NewMemoryDoctorRepository(doctors []entity.Doctor) domainRepo.DoctorRepository {
	return &memoryDoctorRepository{doctors: doctors}
}

// LoadMemoryDoctorRepository reads a JSON array of doctors from path
func LoadMemoryDoctorRepository(path string) (domainRepo.DoctorRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory seed file: %w", err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(data, &doctors); err != nil {
		return nil, fmt.Errorf("decode directory seed file: %w", err)
	}

	return NewMemoryDoctorRepository(doctors), nil
}

func (r *memoryDoctorRepository) FindByQuery(ctx context.Context, query *entity.DirectoryQuery) ([]entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrStoreUnavailable, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []entity.Doctor
	for i := range r.doctors {
		if query.Matches(&r.doctors[i]) {
			result = append(result, r.doctors[i])
		}
	}
	return result, nil
}
