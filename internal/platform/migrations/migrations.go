package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the delivery ledger.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&deliveryRecord{})
}

// Delivery schema mirrors the delivery ledger Postgres adapter.
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
