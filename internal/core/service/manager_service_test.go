package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
)

type stubManagerRepo struct {
	nextID   int64
	managers map[int64]*domain.Manager
}

func newStubManagerRepo() *stubManagerRepo {
	return &stubManagerRepo{managers: map[int64]*domain.Manager{}}
}

func (r *stubManagerRepo) Create(_ context.Context, manager *domain.Manager) (*domain.Manager, error) {
	r.nextID++
	manager.ID = r.nextID
	r.managers[manager.ID] = manager
	return manager, nil
}

func (r *stubManagerRepo) Update(_ context.Context, manager *domain.Manager) (*domain.Manager, error) {
	if _, ok := r.managers[manager.ID]; !ok {
		return nil, domain.ErrManagerNotFound
	}
	r.managers[manager.ID] = manager
	return manager, nil
}

func (r *stubManagerRepo) Delete(_ context.Context, id int64) error {
	delete(r.managers, id)
	return nil
}

func (r *stubManagerRepo) FindByID(_ context.Context, id int64) (*domain.Manager, error) {
	manager, ok := r.managers[id]
	if !ok {
		return nil, domain.ErrManagerNotFound
	}
	return manager, nil
}

func (r *stubManagerRepo) List(_ context.Context) ([]*domain.Manager, error) {
	var out []*domain.Manager
	for _, m := range r.managers {
		out = append(out, m)
	}
	return out, nil
}

func (r *stubManagerRepo) SearchByName(_ context.Context, firstName, lastName string) ([]*domain.Manager, error) {
	var out []*domain.Manager
	for _, m := range r.managers {
		if firstName != "" && !strings.EqualFold(m.FirstName, firstName) {
			continue
		}
		if lastName != "" && !strings.EqualFold(m.LastName, lastName) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *stubManagerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.managers)), nil
}

type stubAllocationRepo struct {
	nextID      int64
	allocations map[int64]*domain.Allocation
}

func newStubAllocationRepo() *stubAllocationRepo {
	return &stubAllocationRepo{allocations: map[int64]*domain.Allocation{}}
}

func (r *stubAllocationRepo) Create(_ context.Context, allocation *domain.Allocation) (*domain.Allocation, error) {
	r.nextID++
	allocation.ID = r.nextID
	r.allocations[allocation.ID] = allocation
	return allocation, nil
}

func (r *stubAllocationRepo) Delete(_ context.Context, id int64) error {
	delete(r.allocations, id)
	return nil
}

func (r *stubAllocationRepo) FindByID(_ context.Context, id int64) (*domain.Allocation, error) {
	allocation, ok := r.allocations[id]
	if !ok {
		return nil, domain.ErrAllocationNotFound
	}
	return allocation, nil
}

func (r *stubAllocationRepo) List(_ context.Context) ([]*domain.Allocation, error) {
	var out []*domain.Allocation
	for _, a := range r.allocations {
		out = append(out, a)
	}
	return out, nil
}

func (r *stubAllocationRepo) ListByManager(_ context.Context, managerID int64) ([]*domain.Allocation, error) {
	var out []*domain.Allocation
	for _, a := range r.allocations {
		if a.ManagerID == managerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAllocationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.allocations)), nil
}

func (r *stubAllocationRepo) CountByManager(_ context.Context, managerID int64) (int64, error) {
	var n int64
	for _, a := range r.allocations {
		if a.ManagerID == managerID {
			n++
		}
	}
	return n, nil
}

func TestManagerService_CreateValidation(t *testing.T) {
	svc := NewManagerService(newStubManagerRepo(), newStubAllocationRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.ManagerInput{LastName: "Smith"}); !errors.Is(err, domain.ErrInvalidManager) {
		t.Fatalf("expected ErrInvalidManager for missing first name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.ManagerInput{FirstName: "Jane"}); !errors.Is(err, domain.ErrInvalidManager) {
		t.Fatalf("expected ErrInvalidManager for missing last name, got %v", err)
	}
}

func TestManagerService_CreateAndUpdate(t *testing.T) {
	repo := newStubManagerRepo()
	svc := NewManagerService(repo, newStubAllocationRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ManagerInput{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an allocated ID")
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.ManagerInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Mobile:    "0400000000",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LastName != "Doe" || updated.Mobile != "0400000000" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), 999, ports.ManagerInput{FirstName: "A", LastName: "B"}); !errors.Is(err, domain.ErrManagerNotFound) {
		t.Fatalf("expected ErrManagerNotFound for unknown id, got %v", err)
	}
}

func TestManagerService_DeleteUnknown(t *testing.T) {
	svc := NewManagerService(newStubManagerRepo(), newStubAllocationRepo(), zerolog.Nop())
	if err := svc.Delete(context.Background(), 42); !errors.Is(err, domain.ErrManagerNotFound) {
		t.Fatalf("expected ErrManagerNotFound, got %v", err)
	}
}

func TestManagerService_Search(t *testing.T) {
	repo := newStubManagerRepo()
	svc := NewManagerService(repo, newStubAllocationRepo(), zerolog.Nop())

	for _, input := range []ports.ManagerInput{
		{FirstName: "Jane", LastName: "Smith"},
		{FirstName: "John", LastName: "Smith"},
		{FirstName: "Jane", LastName: "Brown"},
	} {
		if _, err := svc.Create(context.Background(), input); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	smiths, err := svc.Search(context.Background(), "", "smith")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(smiths) != 2 {
		t.Fatalf("expected 2 Smiths, got %d", len(smiths))
	}
}

func TestManagerService_Stats(t *testing.T) {
	managers := newStubManagerRepo()
	allocations := newStubAllocationRepo()
	svc := NewManagerService(managers, allocations, zerolog.Nop())

	manager, err := svc.Create(context.Background(), ports.ManagerInput{FirstName: "Jane", LastName: "Smith"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, propertyID := range []int64{10, 11, 12} {
		if _, err := allocations.Create(context.Background(), &domain.Allocation{ManagerID: manager.ID, PropertyID: propertyID}); err != nil {
			t.Fatalf("allocate: %v", err)
		}
	}
	// Another manager's allocation must not be counted.
	if _, err := allocations.Create(context.Background(), &domain.Allocation{ManagerID: 99, PropertyID: 13}); err != nil {
		t.Fatalf("allocate: %v", err)
	}

	stats, err := svc.Stats(context.Background(), manager.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PropertyCount != 3 {
		t.Fatalf("expected property count 3, got %d", stats.PropertyCount)
	}
	if stats.Manager.ID != manager.ID {
		t.Fatalf("stats returned wrong manager: %+v", stats.Manager)
	}

	if _, err := svc.Stats(context.Background(), 404); !errors.Is(err, domain.ErrManagerNotFound) {
		t.Fatalf("expected ErrManagerNotFound, got %v", err)
	}
}
