package remote

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// GormSource implements Source on a gorm connection. Resource names are
// table names.
type GormSource struct {
	db *gorm.DB
}

// NewGormSource wraps db.
func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

// FetchCollection implements Source.FetchCollection.
func (s *GormSource) FetchCollection(ctx context.Context, resource string, q Query, dst any) error {
	tx := s.db.WithContext(ctx).Table(resource)
	if q.OrderBy != "" {
		tx = tx.Order(q.OrderBy)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if err := tx.Find(dst).Error; err != nil {
		return classify("fetch", resource, err)
	}
	return nil
}

// FetchJoined implements Source.FetchJoined. Each relation is preloaded as a
// gorm association of the destination row type.
func (s *GormSource) FetchJoined(ctx context.Context, resource string, relations []string, dst any) error {
	tx := s.db.WithContext(ctx).Table(resource)
	for _, rel := range relations {
		tx = tx.Preload(rel)
	}
	if err := tx.Find(dst).Error; err != nil {
		return classify("fetch joined", resource, err)
	}
	return nil
}

// InsertRecord implements Source.InsertRecord.
func (s *GormSource) InsertRecord(ctx context.Context, resource string, record any) error {
	if err := s.db.WithContext(ctx).Table(resource).Create(record).Error; err != nil {
		return classify("insert", resource, err)
	}
	return nil
}

func classify(op, resource string, err error) *Error {
	kind := KindUnavailable
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case missingTable(err):
		kind = KindNotProvisioned
	}
	return &Error{Op: op, Resource: resource, Kind: kind, Err: err}
}

// missingTable matches the driver messages for an absent table: SQLite says
// "no such table", PostgreSQL says `relation "x" does not exist`.
func missingTable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such table") || strings.Contains(msg, "does not exist")
}

var _ Source = (*GormSource)(nil)
