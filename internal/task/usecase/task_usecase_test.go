package usecase

import (
	"testing"
	"time"

	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/domain"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTaskRepo is an in-memory TaskRepository. New tasks are prepended
// so FindByUserID returns newest-first like the real store.
type fakeTaskRepo struct {
	tasks []*domain.Task
}

func (r *fakeTaskRepo) Create(task *domain.Task) error {
	r.tasks = append([]*domain.Task{task}, r.tasks...)
	return nil
}

func (r *fakeTaskRepo) FindByID(id string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) FindByUserID(userID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(task *domain.Task) error {
	for i, t := range r.tasks {
		if t.ID == task.ID {
			r.tasks[i] = task
			return nil
		}
	}
	return nil
}

func (r *fakeTaskRepo) Delete(id string) error {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeNotifier struct {
	events []string
}

func (n *fakeNotifier) Publish(userID, name string, payload interface{}) {
	n.events = append(n.events, name)
}

var testNow = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func newTestUsecase() (TaskUsecase, *fakeTaskRepo, *fakeNotifier) {
	repo := &fakeTaskRepo{}
	notifier := &fakeNotifier{}
	return NewTaskUsecase(repo, clock.Fixed(testNow), notifier), repo, notifier
}

func TestAddCreatesTask(t *testing.T) {
	uc, repo, notifier := newTestUsecase()

	task, err := uc.Add("guest", "Buy milk", "LOW", "")
	require.NoError(t, err)
	require.NotNil(t, task)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "guest", task.UserID)
	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, domain.PriorityLow, task.Priority)
	assert.Equal(t, "General", task.Category)
	assert.Equal(t, testNow, task.CreatedAt)
	assert.Nil(t, task.CompletedAt)

	assert.Len(t, repo.tasks, 1)
	assert.Equal(t, []string{"tasks.changed"}, notifier.events)
}

func TestAddGrowsCollectionByOne(t *testing.T) {
	uc, repo, _ := newTestUsecase()

	for i := 1; i <= 5; i++ {
		_, err := uc.Add("guest", "task", "", "")
		require.NoError(t, err)
		assert.Len(t, repo.tasks, i)
	}
}

func TestAddEmptyTextIsNoOp(t *testing.T) {
	uc, repo, notifier := newTestUsecase()

	for _, text := range []string{"", "   ", "\t\n"} {
		task, err := uc.Add("guest", text, "high", "Work")
		require.NoError(t, err)
		assert.Nil(t, task)
	}

	assert.Empty(t, repo.tasks)
	assert.Empty(t, notifier.events)
}

func TestAddTrimsText(t *testing.T) {
	uc, _, _ := newTestUsecase()

	task, err := uc.Add("guest", "  Write report  ", "HIGH", "Work")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "Write report", task.Text)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, "Work", task.Category)
}

func TestAddDefaultsPriorityToMedium(t *testing.T) {
	uc, _, _ := newTestUsecase()

	task, err := uc.Add("guest", "task", "urgent-ish", "")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
}

func TestToggleIsSelfInverse(t *testing.T) {
	uc, _, _ := newTestUsecase()

	task, err := uc.Add("guest", "task", "", "")
	require.NoError(t, err)

	toggled, err := uc.Toggle("guest", task.ID)
	require.NoError(t, err)
	require.NotNil(t, toggled)
	assert.True(t, toggled.Completed)
	require.NotNil(t, toggled.CompletedAt)
	assert.Equal(t, testNow, *toggled.CompletedAt)

	back, err := uc.Toggle("guest", task.ID)
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.False(t, back.Completed)
	assert.Nil(t, back.CompletedAt)
}

func TestToggleUnknownIDIsNoOp(t *testing.T) {
	uc, _, notifier := newTestUsecase()

	task, err := uc.Toggle("guest", "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, task)
	assert.Empty(t, notifier.events)
}

func TestToggleForeignTaskIsNoOp(t *testing.T) {
	uc, _, _ := newTestUsecase()

	task, err := uc.Add("alice", "task", "", "")
	require.NoError(t, err)

	got, err := uc.Toggle("guest", task.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	stored, err := uc.List("alice")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].Completed)
}

func TestEditReplacesText(t *testing.T) {
	uc, _, _ := newTestUsecase()

	task, err := uc.Add("guest", "old text", "", "")
	require.NoError(t, err)

	edited, err := uc.Edit("guest", task.ID, "new text")
	require.NoError(t, err)
	require.NotNil(t, edited)
	assert.Equal(t, "new text", edited.Text)
	assert.Equal(t, testNow, edited.CreatedAt)
}

func TestEditUnknownIDIsNoOp(t *testing.T) {
	uc, _, _ := newTestUsecase()

	edited, err := uc.Edit("guest", "no-such-id", "new text")
	require.NoError(t, err)
	assert.Nil(t, edited)
}

func TestDeleteRemovesTask(t *testing.T) {
	uc, repo, _ := newTestUsecase()

	task, err := uc.Add("guest", "task", "", "")
	require.NoError(t, err)

	require.NoError(t, uc.Delete("guest", task.ID))
	assert.Empty(t, repo.tasks)
}

func TestDeleteAbsentIDIsNoOp(t *testing.T) {
	uc, repo, notifier := newTestUsecase()

	_, err := uc.Add("guest", "task", "", "")
	require.NoError(t, err)
	notifier.events = nil

	require.NoError(t, uc.Delete("guest", "no-such-id"))
	assert.Len(t, repo.tasks, 1)
	assert.Empty(t, notifier.events)
}

func TestListIsScopedToUser(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, err := uc.Add("guest", "guest task", "", "")
	require.NoError(t, err)
	_, err = uc.Add("alice", "alice task", "", "")
	require.NoError(t, err)

	tasks, err := uc.List("guest")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "guest task", tasks[0].Text)
}

func TestSearchMatchesLoosely(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, err := uc.Add("guest", "Buy groceries", "", "Errands")
	require.NoError(t, err)
	_, err = uc.Add("guest", "Write report", "", "Work")
	require.NoError(t, err)

	// Typo within edit distance still matches.
	results, err := uc.Search("guest", "grocereis")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Buy groceries", results[0].Text)

	// Empty query returns everything.
	all, err := uc.Search("guest", "  ")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
