package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) repository.UserRepository { return &UserRepo{db: db} }

const userCols = `id, email, name, role, department, phone, active, created_at, updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var u models.Account
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Department, &u.Phone, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create stores the bcrypt hash in password_h. Email uniqueness is
// case-insensitive (unique index on lower(email)).
func (r *UserRepo) Create(ctx context.Context, email, name string, role models.Role, department, passwordHash string) (*models.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, `
		INSERT INTO users (email, name, role, department, password_h)
		VALUES (lower($1),$2,$3,$4,$5)
		RETURNING `+userCols,
		email, name, role, department, passwordHash))
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.Account, string, error) {
	var u models.Account
	var ph string
	err := r.db.QueryRow(ctx, `
		SELECT `+userCols+`, password_h
		FROM users WHERE lower(email) = lower($1)`, email).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Department, &u.Phone, &u.Active, &u.CreatedAt, &u.UpdatedAt, &ph)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", repository.ErrNotFound
		}
		return nil, "", err
	}
	return &u, ph, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

// List returns a filtered, paginated page of accounts plus the total
// count for the same filter set.
func (r *UserRepo) List(ctx context.Context, q string, role models.Role, active *bool, limit, offset int) ([]models.Account, int, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	clauses := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(q); s != "" {
		p := "%" + s + "%"
		args = append(args, p, p)
		clauses = append(clauses, "(email ILIKE $"+itoa(len(args)-1)+" OR name ILIKE $"+itoa(len(args))+")")
	}
	if role != "" {
		args = append(args, role)
		clauses = append(clauses, "role = $"+itoa(len(args)))
	}
	if active != nil {
		args = append(args, *active)
		clauses = append(clauses, "active = $"+itoa(len(args)))
	}

	countSQL := `SELECT COUNT(*) FROM users WHERE ` + strings.Join(clauses, " AND ")
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	listSQL := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE %s
		ORDER BY created_at ASC
		LIMIT $%d OFFSET $%d
	`, userCols, strings.Join(clauses, " AND "), len(args)-1, len(args))
	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.Account
	for rows.Next() {
		u, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *u)
	}
	return out, total, rows.Err()
}

func (r *UserRepo) UpdateRole(ctx context.Context, id string, role models.Role) (*models.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, `
		UPDATE users
		SET role=$1, updated_at=now()
		WHERE id=$2
		RETURNING `+userCols, role, id))
}

func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) (*models.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, `
		UPDATE users
		SET active=$1, updated_at=now()
		WHERE id=$2
		RETURNING `+userCols, active, id))
}

func (r *UserRepo) UpdateBasic(ctx context.Context, id, name, department, phone string) (*models.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, `
		UPDATE users
		SET name=$1, department=$2, phone=$3, updated_at=now()
		WHERE id=$4
		RETURNING `+userCols, name, department, phone, id))
}

func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_h=$1, updated_at=now()
		WHERE id=$2
	`, passwordHash, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
