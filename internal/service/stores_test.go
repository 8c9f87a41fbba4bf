package service

import (
	"context"
	"sort"
	"sync"

	"github.com/focusflow/focusflow-go/internal/model"
	"github.com/focusflow/focusflow-go/internal/repository"
)

// memUserStore is an in-memory UserStore for tests.
type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]model.User // keyed by email
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]model.User)}
}

func (m *memUserStore) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = *user
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

// memTaskStore is an in-memory TaskStore for tests.
type memTaskStore struct {
	mu    sync.Mutex
	tasks map[string]model.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[string]model.Task)}
}

func (m *memTaskStore) Create(_ context.Context, task *model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[task.ID] = *task
	return nil
}

func (m *memTaskStore) GetByID(_ context.Context, id string) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	return &task, nil
}

func (m *memTaskStore) List(_ context.Context) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(func(model.Task) bool { return true }), nil
}

func (m *memTaskStore) ListByOwner(_ context.Context, userID int64) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(func(t model.Task) bool {
		return t.Owner.Valid && t.Owner.UserID == userID
	}), nil
}

func (m *memTaskStore) Update(_ context.Context, task *model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[task.ID] = *task
	return nil
}

func (m *memTaskStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *memTaskStore) snapshot(keep func(model.Task) bool) []model.Task {
	var out []model.Task
	for _, t := range m.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
