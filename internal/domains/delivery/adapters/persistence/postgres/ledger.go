package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
)

var _ ports.Ledger = (*Ledger)(nil)

// Ledger persists delivery records in PostgreSQL using GORM. Schema is owned by platform/migrations.
type Ledger struct {
	db *gorm.DB
}

// NewLedger wires a PostgreSQL-backed ledger. Caller manages DB lifecycle.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// deliveryRecord maps a ledger entry to the deliveries table.
type deliveryRecord struct {
	BatchID     string         `gorm:"primaryKey;column:batch_id;size:64"`
	OrderNum    string         `gorm:"column:order_num;size:128;index"`
	ShirtCount  int            `gorm:"column:shirt_count"`
	Styles      pq.StringArray `gorm:"column:styles;type:text[]"`
	Courier     string         `gorm:"column:courier;type:varchar(32)"`
	DeliveredAt time.Time      `gorm:"column:delivered_at;index"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
}

func (deliveryRecord) TableName() string { return "deliveries" }

// Record inserts a ledger entry.
func (l *Ledger) Record(ctx context.Context, record domain.Record) error {
	if err := l.ensureDB(); err != nil {
		return err
	}
	row := toRecord(record)
	return l.db.WithContext(ctx).Create(&row).Error
}

// List returns up to limit entries, newest first.
func (l *Ledger) List(ctx context.Context, limit int) ([]domain.Record, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	query := l.db.WithContext(ctx).Order("delivered_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []deliveryRecord
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	records := make([]domain.Record, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toDomain())
	}
	return records, nil
}

// PurgeBefore deletes entries delivered before cutoff and returns how many were removed.
func (l *Ledger) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := l.ensureDB(); err != nil {
		return 0, err
	}
	result := l.db.WithContext(ctx).Where("delivered_at < ?", cutoff).Delete(&deliveryRecord{})
	return result.RowsAffected, result.Error
}

func (l *Ledger) ensureDB() error {
	if l == nil || l.db == nil {
		return errors.New("postgres delivery ledger not configured")
	}
	return nil
}

func toRecord(record domain.Record) deliveryRecord {
	return deliveryRecord{
		BatchID:     record.BatchID,
		OrderNum:    record.OrderNum,
		ShirtCount:  record.ShirtCount,
		Styles:      pq.StringArray(append([]string(nil), record.Styles...)),
		Courier:     record.Courier,
		DeliveredAt: record.DeliveredAt.UTC(),
	}
}

func (r deliveryRecord) toDomain() domain.Record {
	return domain.Record{
		BatchID:     r.BatchID,
		OrderNum:    r.OrderNum,
		ShirtCount:  r.ShirtCount,
		Styles:      []string(r.Styles),
		Courier:     r.Courier,
		DeliveredAt: r.DeliveredAt,
	}
}
