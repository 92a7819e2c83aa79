package booking

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lokascout/lokascout/internal/db"
	"github.com/lokascout/lokascout/internal/property"
	"github.com/lokascout/lokascout/internal/user"
)

type fixtures struct {
	repo       *Repository
	propertyID int64
	userID     int64
}

func testSetup(t *testing.T) fixtures {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})

	scout, err := user.NewRepository(d).Insert(&user.User{
		Name:  "Maria Santos",
		Email: "maria@example.com",
		Role:  user.RoleScout,
	})
	if err != nil {
		t.Fatalf("insert scout: %v", err)
	}

	p, err := property.NewRepository(d).Insert(&property.Property{
		ScoutID:  scout.ID,
		Name:     "Boracay Beach Resort",
		Location: "Boracay, Aklan",
		Category: property.CategoryBeach,
		Price:    5000,
		Status:   property.StatusActive,
	})
	if err != nil {
		t.Fatalf("insert property: %v", err)
	}

	return fixtures{repo: NewRepository(d), propertyID: p.ID, userID: scout.ID}
}

func TestCreateComputesTotal(t *testing.T) {
	f := testSetup(t)

	b, err := f.repo.Create(f.propertyID, f.userID, "2026-03-10", "2026-03-12", 5000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Status != StatusPending {
		t.Errorf("status = %q, want pending", b.Status)
	}
	// 3 inclusive days at 5000/day
	if b.Total != 15000 {
		t.Errorf("total = %d, want 15000", b.Total)
	}
}

func TestCreateRejectsBadRange(t *testing.T) {
	f := testSetup(t)

	if _, err := f.repo.Create(f.propertyID, f.userID, "2026-03-12", "2026-03-10", 5000); err == nil {
		t.Error("expected error for inverted range")
	}
	if _, err := f.repo.Create(f.propertyID, f.userID, "soon", "2026-03-10", 5000); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestGetMissingReportsNotFound(t *testing.T) {
	f := testSetup(t)

	_, err := f.repo.GetByID(999999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLifecycle(t *testing.T) {
	f := testSetup(t)

	b, err := f.repo.Create(f.propertyID, f.userID, "2026-03-10", "2026-03-10", 5000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	b, err = f.repo.UpdateStatus(b.ID, StatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if b.Status != StatusConfirmed {
		t.Errorf("status = %q, want confirmed", b.Status)
	}

	b, err = f.repo.UpdateStatus(b.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if b.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", b.Status)
	}

	// Completed is terminal
	_, err = f.repo.UpdateStatus(b.ID, StatusCancelled)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	f := testSetup(t)

	b, err := f.repo.Create(f.propertyID, f.userID, "2026-03-10", "2026-03-10", 5000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.repo.UpdateStatus(b.ID, Status("done")); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestListFilters(t *testing.T) {
	f := testSetup(t)

	first, err := f.repo.Create(f.propertyID, f.userID, "2026-03-10", "2026-03-11", 5000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := f.repo.Create(f.propertyID, f.userID, "2026-04-01", "2026-04-02", 5000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.repo.UpdateStatus(second.ID, StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	all, err := f.repo.List(ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d bookings, want 2", len(all))
	}
	// Newest shoot date first
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("order = [%d %d], want [%d %d]", all[0].ID, all[1].ID, second.ID, first.ID)
	}

	pending, err := f.repo.List(ListOptions{Status: StatusPending})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != first.ID {
		t.Errorf("pending = %d bookings", len(pending))
	}

	byProp, err := f.repo.List(ListOptions{PropertyID: &f.propertyID})
	if err != nil {
		t.Fatalf("list by property: %v", err)
	}
	if len(byProp) != 2 {
		t.Errorf("by property = %d bookings, want 2", len(byProp))
	}
}
