package visits

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/friendsincode/brandpage/internal/events"
	"github.com/friendsincode/brandpage/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(&models.Visit{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return New(database, events.NewBus())
}

func waitForCount(t *testing.T, svc *Service, siteID string, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		n, err := svc.CountBySite(context.Background(), siteID)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if n == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("visit count never reached %d", want)
}

func TestRecordInsertsAsynchronously(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	siteID := uuid.NewString()
	svc.Record(siteID, "direct", "test-agent")
	svc.Record(siteID, "direct", "test-agent")
	svc.Record(uuid.NewString(), "direct", "other")

	waitForCount(t, svc, siteID, 2)
}

func TestRecordWithoutSiteIDIsDropped(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	svc.Record("", "direct", "agent")

	var n int64
	time.Sleep(50 * time.Millisecond)
	if err := svc.db.Model(&models.Visit{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("empty site id must not be inserted, got %d rows", n)
	}
}
