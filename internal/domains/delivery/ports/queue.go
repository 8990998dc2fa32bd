package ports

import "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"

// DispatchQueue is the FIFO of batches awaiting delivery.
// Enqueue and Poll are individually atomic; Poll removes what it returns.
type DispatchQueue interface {
	Enqueue(batch domain.Batch)
	Poll() (domain.Batch, bool)
	Len() int
}
