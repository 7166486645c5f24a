package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"medical-agent-webhook/internal/domain/entity"
	domainRepo "medical-agent-webhook/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDirectory() []entity.Doctor {
	return []entity.Doctor{
		{Name: "Dr. Smith", Specialty: "Cardiology", City: "Springfield"},
		{Name: "Dr. Jones", Specialty: "Dermatology", City: "Springfield"},
		{Name: "Dr. Green", Specialty: "Cardiology", City: "Springfield"},
		{Name: "Dr. Brown", Specialty: "Cardiology", City: "Shelbyville"},
	}
}

func TestMemoryDoctorRepository_FindByQuery(t *testing.T) {
	repo := NewMemoryDoctorRepository(sampleDirectory())

	doctors, err := repo.FindByQuery(context.Background(), cardiologyQuery())
	require.NoError(t, err)

	require.Len(t, doctors, 2)
	assert.Equal(t, "Dr. Smith", doctors[0].Name)
	assert.Equal(t, "Dr. Green", doctors[1].Name)
}

func TestMemoryDoctorRepository_NoMatch(t *testing.T) {
	repo := NewMemoryDoctorRepository(sampleDirectory())

	doctors, err := repo.FindByQuery(context.Background(),
		entity.NewDirectoryQuery().Where(entity.DirectoryFieldCity, "Ogdenville"))
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestMemoryDoctorRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryDoctorRepository(sampleDirectory())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindByQuery(ctx, cardiologyQuery())
	assert.ErrorIs(t, err, domainRepo.ErrStoreUnavailable)
}

func TestLoadMemoryDoctorRepository(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doctors.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name":"Dr. Smith","specialty":"Cardiology","city":"Springfield","availability":{"2099-01-10":["09:00","10:00"]}}
	]`), 0o600))

	repo, err := LoadMemoryDoctorRepository(path)
	require.NoError(t, err)

	doctors, err := repo.FindByQuery(context.Background(), cardiologyQuery())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, []string{"09:00", "10:00"}, doctors[0].Availability["2099-01-10"])

	_, err = LoadMemoryDoctorRepository(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"name":`), 0o600))
	_, err = LoadMemoryDoctorRepository(broken)
	assert.Error(t, err)
}
