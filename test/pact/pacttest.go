//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"
)

// Participants. Each stage consumes the next one downstream.
const (
	DeliveryProvider = "delivery-stage"
	StylingProvider  = "styling-stage"
	StylingConsumer  = "styling-stage"
	ShoppingConsumer = "shopping-stage"
)

const (
	StateDeliveryAccepting = "delivery is accepting batches"
	StateDeliveryOutage    = "delivery is failing every dispatch"
	StateStylingCatalog    = "styling catalog is seeded"
	StateStylingAccepting  = "styling and delivery are accepting orders"
)

const (
	ExampleOrderNum  = "pact-order-1"
	OutageOrderNum   = "pact-order-outage"
	ExampleStyleName = "style1"
	ExampleImageRef  = "style1Image"
	ExampleQuantity  = 3

	UUIDPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`
	ExampleUUID = "5f0c6b8e-3a51-4c2e-9f76-2d1b0c9a7e11"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for a consumer/provider pair.
func PactFile(t testing.TB, consumer, provider string) string {
	t.Helper()
	return filepath.Join(PactDir(t), consumer+"-"+provider+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// Switch is a fault policy provider states can flip between always-fail and never-fail.
type Switch struct {
	failing atomic.Bool
}

// Set makes every subsequent roll fail when failing is true.
func (s *Switch) Set(failing bool) {
	s.failing.Store(failing)
}

// ShouldFail implements the fault policy interface.
func (s *Switch) ShouldFail(int) bool {
	return s.failing.Load()
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
