package gormrepo

import (
	"context"

	eventlogDomain "stockroom-backend/internal/domain/eventlog"

	"gorm.io/gorm"
)

type EventLogRepository struct{ db *gorm.DB }

func NewEventLogRepository(db *gorm.DB) *EventLogRepository { return &EventLogRepository{db: db} }

func (r *EventLogRepository) Append(ctx context.Context, e *eventlogDomain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventLogRepository) List(ctx context.Context, limit, offset int) ([]eventlogDomain.Event, error) {
	q := r.db.WithContext(ctx).Order("timestamp DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var out []eventlogDomain.Event
	err := q.Find(&out).Error
	return out, err
}
