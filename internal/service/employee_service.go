package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Staff/internal/cache"
	dom "Staff/internal/domain"
	"Staff/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var ErrNotFound = errors.New("not found")

// EmployeeService is the access layer between handlers and the employee store.
// Every store failure comes back wrapped with a descriptive message; a missing
// or malformed id comes back as ErrNotFound.
type EmployeeService struct {
	repo  repo.EmployeeRepo
	cache *cache.EmployeeCache
	sf    singleflight.Group
}

// NewEmployeeService creates an EmployeeService. If c is nil, caching is disabled.
func NewEmployeeService(r repo.EmployeeRepo, c *cache.EmployeeCache) *EmployeeService {
	return &EmployeeService{repo: r, cache: c}
}

// List returns all employee records in insertion order. Empty slice if none.
func (s *EmployeeService) List(ctx context.Context) ([]dom.Employee, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, fmt.Errorf("fetch employees: %w", err)
		}
		return v.([]dom.Employee), nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch employees: %w", err)
	}
	return list, nil
}

// GetByID returns the record at id. ErrNotFound if no such record, or if id
// is not a well-formed identifier.
func (s *EmployeeService) GetByID(ctx context.Context, id string) (dom.Employee, error) {
	if !validID(id) {
		return dom.Employee{}, ErrNotFound
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Employee{}, ErrNotFound
		}
		return dom.Employee{}, fmt.Errorf("fetch employee: %w", err)
	}
	return e, nil
}

// Create persists a new record and returns it with its assigned id.
func (s *EmployeeService) Create(ctx context.Context, f dom.EmployeeFields) (dom.Employee, error) {
	e, err := s.repo.Create(ctx, trimFields(f))
	if err != nil {
		return dom.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	s.invalidateCache(ctx)
	return e, nil
}

// Update fully replaces the five mutable fields of the record at id. A field
// left empty in f overwrites the stored value with an empty string; callers
// must resend the full form.
func (s *EmployeeService) Update(ctx context.Context, id string, f dom.EmployeeFields) (dom.Employee, error) {
	if !validID(id) {
		return dom.Employee{}, ErrNotFound
	}
	e, err := s.repo.Update(ctx, id, trimFields(f))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Employee{}, ErrNotFound
		}
		return dom.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	s.invalidateCache(ctx)
	return e, nil
}

// Delete removes the record at id and returns its last-known state.
func (s *EmployeeService) Delete(ctx context.Context, id string) (dom.Employee, error) {
	if !validID(id) {
		return dom.Employee{}, ErrNotFound
	}
	e, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Employee{}, ErrNotFound
		}
		return dom.Employee{}, fmt.Errorf("delete employee: %w", err)
	}
	s.invalidateCache(ctx)
	return e, nil
}

func (s *EmployeeService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func validID(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}

func trimFields(f dom.EmployeeFields) dom.EmployeeFields {
	return dom.EmployeeFields{
		Name:             strings.TrimSpace(f.Name),
		Position:         strings.TrimSpace(f.Position),
		Department:       strings.TrimSpace(f.Department),
		ContactInfo:      strings.TrimSpace(f.ContactInfo),
		EmploymentStatus: strings.TrimSpace(f.EmploymentStatus),
	}
}
