package repo

import (
	"context"

	dom "Staff/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EmployeeRepo provides employee record persistence.
type EmployeeRepo interface {
	List(ctx context.Context) ([]dom.Employee, error)
	GetByID(ctx context.Context, id string) (dom.Employee, error)
	Create(ctx context.Context, f dom.EmployeeFields) (dom.Employee, error)
	Update(ctx context.Context, id string, f dom.EmployeeFields) (dom.Employee, error)
	Delete(ctx context.Context, id string) (dom.Employee, error)
}

// PGEmployeeRepo implements EmployeeRepo with Postgres.
type PGEmployeeRepo struct {
	db *pgxpool.Pool
}

// NewPGEmployeeRepo returns a new PGEmployeeRepo.
func NewPGEmployeeRepo(db *pgxpool.Pool) *PGEmployeeRepo {
	return &PGEmployeeRepo{db: db}
}

func (r *PGEmployeeRepo) List(ctx context.Context) ([]dom.Employee, error) {
	query := `
		SELECT id, name, position, department, contact_info, employment_status, created_at, updated_at
		FROM employees ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Employee
	for rows.Next() {
		var e dom.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.Department, &e.ContactInfo,
			&e.EmploymentStatus, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *PGEmployeeRepo) GetByID(ctx context.Context, id string) (dom.Employee, error) {
	query := `
		SELECT id, name, position, department, contact_info, employment_status, created_at, updated_at
		FROM employees WHERE id = $1`
	var e dom.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Position, &e.Department, &e.ContactInfo,
		&e.EmploymentStatus, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *PGEmployeeRepo) Create(ctx context.Context, f dom.EmployeeFields) (dom.Employee, error) {
	query := `
		INSERT INTO employees (name, position, department, contact_info, employment_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, position, department, contact_info, employment_status, created_at, updated_at`
	var e dom.Employee
	err := r.db.QueryRow(ctx, query, f.Name, f.Position, f.Department, f.ContactInfo, f.EmploymentStatus).Scan(
		&e.ID, &e.Name, &e.Position, &e.Department, &e.ContactInfo,
		&e.EmploymentStatus, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Update replaces all five mutable fields of the record at id.
func (r *PGEmployeeRepo) Update(ctx context.Context, id string, f dom.EmployeeFields) (dom.Employee, error) {
	query := `
		UPDATE employees
		SET name = $2, position = $3, department = $4, contact_info = $5, employment_status = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, position, department, contact_info, employment_status, created_at, updated_at`
	var e dom.Employee
	err := r.db.QueryRow(ctx, query, id, f.Name, f.Position, f.Department, f.ContactInfo, f.EmploymentStatus).Scan(
		&e.ID, &e.Name, &e.Position, &e.Department, &e.ContactInfo,
		&e.EmploymentStatus, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Delete removes the record at id and returns its last state.
func (r *PGEmployeeRepo) Delete(ctx context.Context, id string) (dom.Employee, error) {
	query := `
		DELETE FROM employees WHERE id = $1
		RETURNING id, name, position, department, contact_info, employment_status, created_at, updated_at`
	var e dom.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Position, &e.Department, &e.ContactInfo,
		&e.EmploymentStatus, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}
