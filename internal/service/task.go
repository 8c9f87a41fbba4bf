package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/focusflow/focusflow-go/internal/model"
	"github.com/focusflow/focusflow-go/internal/repository"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrTaskNotFound    = errors.New("todo not found")
	ErrNotOwner        = errors.New("not authorized")
)

// TaskStore is the persistence surface TaskService depends on.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id string) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	ListByOwner(ctx context.Context, userID int64) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id string) error
}

// TaskService handles the todo lifecycle. Every operation takes the
// caller identity from the access guard; an anonymous caller is the
// zero Owner.
type TaskService struct {
	store TaskStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

// List returns the caller's tasks, newest first. An anonymous caller
// sees every task.
func (s *TaskService) List(ctx context.Context, caller model.Owner) ([]model.TaskResponse, error) {
	var (
		tasks []model.Task
		err   error
	)
	if caller.Valid {
		tasks, err = s.store.ListByOwner(ctx, caller.UserID)
	} else {
		tasks, err = s.store.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return tasksToResponse(tasks), nil
}

// Create stores a new task owned by the caller, or unowned when the
// caller is anonymous.
func (s *TaskService) Create(ctx context.Context, caller model.Owner, req model.CreateTaskRequest) (model.TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.TaskResponse{}, ErrTitleRequired
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return model.TaskResponse{}, ErrInvalidPriority
	}

	task := model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Priority:    priority,
		Owner:       caller,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.Create(ctx, &task); err != nil {
		return model.TaskResponse{}, err
	}

	return taskToResponse(task), nil
}

// Update applies a partial update to a task. Absent fields keep their
// stored values.
func (s *TaskService) Update(ctx context.Context, caller model.Owner, taskID string, req model.UpdateTaskRequest) (model.TaskResponse, error) {
	task, err := s.load(ctx, caller, taskID)
	if err != nil {
		return model.TaskResponse{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return model.TaskResponse{}, ErrTitleRequired
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = strings.TrimSpace(*req.Description)
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return model.TaskResponse{}, ErrInvalidPriority
		}
		task.Priority = *req.Priority
	}

	if err := s.store.Update(ctx, task); err != nil {
		return model.TaskResponse{}, err
	}

	return taskToResponse(*task), nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, caller model.Owner, taskID string) error {
	if _, err := s.load(ctx, caller, taskID); err != nil {
		return err
	}

	err := s.store.Delete(ctx, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}

// ToggleComplete flips a task's completed flag and persists it.
func (s *TaskService) ToggleComplete(ctx context.Context, caller model.Owner, taskID string) (model.TaskResponse, error) {
	task, err := s.load(ctx, caller, taskID)
	if err != nil {
		return model.TaskResponse{}, err
	}

	task.Completed = !task.Completed

	if err := s.store.Update(ctx, task); err != nil {
		return model.TaskResponse{}, err
	}

	return taskToResponse(*task), nil
}

// load fetches a task and applies the uniform ownership policy: the
// mutation is refused only when the task has an owner and the caller
// carries a different identity.
func (s *TaskService) load(ctx context.Context, caller model.Owner, taskID string) (*model.Task, error) {
	task, err := s.store.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if !caller.MayModify(task.Owner) {
		return nil, ErrNotOwner
	}
	return task, nil
}

// tasksToResponse converts a slice of Task to a slice of TaskResponse.
func tasksToResponse(tasks []model.Task) []model.TaskResponse {
	result := make([]model.TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = taskToResponse(t)
	}
	return result
}

func taskToResponse(task model.Task) model.TaskResponse {
	resp := model.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
	}
	if task.Owner.Valid {
		ownerID := task.Owner.UserID
		resp.OwnerID = &ownerID
	}
	return resp
}
