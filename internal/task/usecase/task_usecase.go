package usecase

import (
	"strings"

	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/domain"
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/repository"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/clock"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/fuzzy"

	"github.com/google/uuid"
)

const changedEvent = "tasks.changed"

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo repository.TaskRepository
	clock    clock.Clock
	notifier Notifier
}

// NewTaskUsecase creates a new instance of taskUsecase. notifier may be
// nil when no push channel is wired (tests).
func NewTaskUsecase(taskRepo repository.TaskRepository, clk clock.Clock, notifier Notifier) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		clock:    clk,
		notifier: notifier,
	}
}

func (u *taskUsecase) Add(userID, text, priority, category string) (*domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		// Empty submissions never reach the store.
		return nil, nil
	}

	if category == "" {
		category = "General"
	}

	task := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Text:      text,
		Completed: false,
		Priority:  domain.ParsePriority(priority),
		Category:  category,
		CreatedAt: u.clock.Now(),
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	u.publishChanged(userID)
	return task, nil
}

func (u *taskUsecase) Toggle(userID, id string) (*domain.Task, error) {
	task, err := u.owned(userID, id)
	if task == nil || err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	if task.Completed {
		now := u.clock.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	u.publishChanged(userID)
	return task, nil
}

func (u *taskUsecase) Edit(userID, id, newText string) (*domain.Task, error) {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return nil, nil
	}

	task, err := u.owned(userID, id)
	if task == nil || err != nil {
		return nil, err
	}

	task.Text = newText
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	u.publishChanged(userID)
	return task, nil
}

func (u *taskUsecase) Delete(userID, id string) error {
	task, err := u.owned(userID, id)
	if err != nil {
		return err
	}
	if task == nil {
		// Deleting an absent id is a no-op.
		return nil
	}

	if err := u.taskRepo.Delete(task.ID); err != nil {
		return err
	}

	u.publishChanged(userID)
	return nil
}

func (u *taskUsecase) List(userID string) ([]*domain.Task, error) {
	return u.taskRepo.FindByUserID(userID)
}

func (u *taskUsecase) Search(userID, query string) ([]*domain.Task, error) {
	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return tasks, nil
	}

	matched := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if fuzzy.Match(query, t.Text, 2) || fuzzy.Match(query, t.Category, 1) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// owned resolves a task only when it exists and belongs to userID;
// anything else is (nil, nil) so callers treat it as a no-op.
func (u *taskUsecase) owned(userID, id string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, nil
	}
	return task, nil
}

func (u *taskUsecase) publishChanged(userID string) {
	if u.notifier != nil {
		u.notifier.Publish(userID, changedEvent, map[string]string{"kind": "task"})
	}
}
