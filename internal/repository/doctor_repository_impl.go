package repository

import (
	"context"
	"errors"
	"fmt"

	"medical-agent-webhook/internal/domain/entity"
	domainRepo "medical-agent-webhook/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// directoryColumns lists the fields a predicate may filter on
var directoryColumns = map[string]string{
	entity.DirectoryFieldSpecialty: "specialty",
	entity.DirectoryFieldCity:      "city",
	entity.DirectoryFieldName:      "name",
}

type doctorRepository struct {
	db    *gorm.DB
	log   *logrus.Logger
	table string
}

// NewDoctorRepository returns a gorm-backed directory reading from table
func NewDoctorRepository(db *gorm.DB, log *logrus.Logger, table string) domainRepo.DoctorRepository {
	if table == "" {
		table = entity.Doctor{}.TableName()
	}
	return &doctorRepository{
		db:    db,
		log:   log,
		table: table,
	}
}

func (r *doctorRepository) FindByQuery(ctx context.Context, query *entity.DirectoryQuery) ([]entity.Doctor, error) {
	tx := r.db.WithContext(ctx).Table(r.table)

	for _, p := range query.Predicates {
		column, ok := directoryColumns[p.Field]
		if !ok {
			return nil, fmt.Errorf("%w: unknown directory field %q", domainRepo.ErrStoreUnavailable, p.Field)
		}
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: column}, Value: p.Value})
	}

	var doctors []entity.Doctor
	if err := tx.Find(&doctors).Error; err != nil {
		r.logStoreError(query, err)
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrStoreUnavailable, err)
	}
	return doctors, nil
}

func (r *doctorRepository) logStoreError(query *entity.DirectoryQuery, err error) {
	fields := logrus.Fields{
		"table": r.table,
		"query": query.String(),
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields["pg_code"] = pgErr.Code
		fields["pg_message"] = pgErr.Message
	}

	r.log.WithFields(fields).Warnf("Failed to query doctor directory: %+v", err)
}
