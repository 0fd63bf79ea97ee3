package eventlog

import "time"

type EventType string

const (
	MaterialCreated EventType = "material_created"
	MaterialUpdated EventType = "material_updated"
	MaterialDeleted EventType = "material_deleted"
	BatchAdded      EventType = "batch_added"
	StockAlert      EventType = "stock_alert"
)

// Event is an append-only audit record of material and batch lifecycle
// events. It is never updated or deleted.
type Event struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex).
	EventID     string    `gorm:"column:event_id;type:char(32);not null;uniqueIndex:ux_event_logs_event_id"`
	EventType   EventType `gorm:"column:event_type;size:32;not null;index"`
	Description string    `gorm:"column:description;size:255;not null"`
	Details     *string   `gorm:"column:details;type:text"`
	Timestamp   time.Time `gorm:"column:timestamp;autoCreateTime;index"`
}

func (Event) TableName() string { return "event_logs" }
