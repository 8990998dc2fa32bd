package mapper

import (
	"time"

	deliverydomain "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// ToDomainShirts flattens a transport batch. A nil batch yields no shirts.
func ToDomainShirts(packed *contracts.PackedShirts) []deliverydomain.Shirt {
	if packed == nil || len(packed.Shirts) == 0 {
		return nil
	}
	shirts := make([]deliverydomain.Shirt, 0, len(packed.Shirts))
	for _, shirt := range packed.Shirts {
		shirts = append(shirts, deliverydomain.Shirt{StyleName: shirt.Style.Name, ImageRef: shirt.Style.ImageURL})
	}
	return shirts
}

// FromDomainRecord converts a ledger entry to the transport representation.
func FromDomainRecord(record deliverydomain.Record) contracts.DeliveryRecord {
	styles := record.Styles
	if styles == nil {
		styles = []string{}
	}
	return contracts.DeliveryRecord{
		BatchID:     record.BatchID,
		OrderNum:    record.OrderNum,
		ShirtCount:  record.ShirtCount,
		Styles:      styles,
		Courier:     record.Courier,
		DeliveredAt: record.DeliveredAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainRecords converts ledger entries, never returning nil.
func FromDomainRecords(records []deliverydomain.Record) []contracts.DeliveryRecord {
	out := make([]contracts.DeliveryRecord, 0, len(records))
	for _, record := range records {
		out = append(out, FromDomainRecord(record))
	}
	return out
}
