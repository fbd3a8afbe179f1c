package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"

	"github.com/google/uuid"
)

var ErrEmailTaken = errors.New("email already registered")

type userRecord struct {
	account models.Account
	hash    string
}

type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*userRecord
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]*userRecord)}
}

func (r *UserRepo) Create(_ context.Context, email, name string, role models.Role, department, passwordHash string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, rec := range r.users {
		if strings.EqualFold(rec.account.Email, email) {
			return nil, ErrEmailTaken
		}
	}

	now := time.Now()
	u := models.Account{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       name,
		Role:       role,
		Department: department,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.users[u.ID] = &userRecord{account: u, hash: passwordHash}
	cp := u
	return &cp, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.Account, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.users {
		if strings.EqualFold(rec.account.Email, strings.TrimSpace(email)) {
			cp := rec.account
			return &cp, rec.hash, nil
		}
	}
	return nil, "", repository.ErrNotFound
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := rec.account
	return &cp, nil
}

func (r *UserRepo) List(_ context.Context, q string, role models.Role, active *bool, limit, offset int) ([]models.Account, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q = strings.ToLower(strings.TrimSpace(q))
	var out []models.Account
	for _, rec := range r.users {
		u := rec.account
		if q != "" &&
			!strings.Contains(strings.ToLower(u.Email), q) &&
			!strings.Contains(strings.ToLower(u.Name), q) {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		if active != nil && u.Active != *active {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })

	total := len(out)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return out[offset:end], total, nil
}

func (r *UserRepo) mutate(id string, fn func(*userRecord)) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	fn(rec)
	rec.account.UpdatedAt = time.Now()
	cp := rec.account
	return &cp, nil
}

func (r *UserRepo) UpdateRole(_ context.Context, id string, role models.Role) (*models.Account, error) {
	return r.mutate(id, func(rec *userRecord) { rec.account.Role = role })
}

func (r *UserRepo) SetActive(_ context.Context, id string, active bool) (*models.Account, error) {
	return r.mutate(id, func(rec *userRecord) { rec.account.Active = active })
}

func (r *UserRepo) UpdateBasic(_ context.Context, id, name, department, phone string) (*models.Account, error) {
	return r.mutate(id, func(rec *userRecord) {
		rec.account.Name = name
		rec.account.Department = department
		rec.account.Phone = phone
	})
}

func (r *UserRepo) UpdatePasswordHash(_ context.Context, id, passwordHash string) error {
	_, err := r.mutate(id, func(rec *userRecord) { rec.hash = passwordHash })
	return err
}
