package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/domain"
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/repository"
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/usecase"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTaskRepo struct {
	tasks []*domain.Task
}

func (r *memTaskRepo) Create(task *domain.Task) error {
	r.tasks = append([]*domain.Task{task}, r.tasks...)
	return nil
}

func (r *memTaskRepo) FindByID(id string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTaskRepo) FindByUserID(userID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) Update(task *domain.Task) error {
	for i, t := range r.tasks {
		if t.ID == task.ID {
			r.tasks[i] = task
		}
	}
	return nil
}

func (r *memTaskRepo) Delete(id string) error {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ repository.TaskRepository = (*memTaskRepo)(nil)

// newTestRouter wires the handler behind a stub scope middleware that
// always resolves the guest collection.
func newTestRouter() (*gin.Engine, *memTaskRepo) {
	gin.SetMode(gin.TestMode)

	repo := &memTaskRepo{}
	uc := usecase.NewTaskUsecase(repo, clock.Fixed(time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)), nil)
	h := NewTaskHandler(uc)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "guest") })
	r.GET("/api/tasks", h.GetTasks)
	r.POST("/api/tasks", h.CreateTask)
	r.GET("/api/tasks/search", h.SearchTasks)
	r.PATCH("/api/tasks/:id/toggle", h.ToggleTask)
	r.PUT("/api/tasks/:id", h.EditTask)
	r.DELETE("/api/tasks/:id", h.DeleteTask)
	return r, repo
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTask(t *testing.T) {
	r, repo := newTestRouter()

	w := doJSON(r, "POST", "/api/tasks", `{"text": "Buy milk", "priority": "LOW"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var task domain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, "Buy milk", task.Text)
	assert.Equal(t, domain.PriorityLow, task.Priority)
	assert.Len(t, repo.tasks, 1)
}

func TestCreateTaskEmptyTextAnswersNoContent(t *testing.T) {
	r, repo := newTestRouter()

	w := doJSON(r, "POST", "/api/tasks", `{"text": "   "}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.tasks)
}

func TestGetTasksEmptyCollection(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(r, "GET", "/api/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tasks []*domain.Task `json:"tasks"`
		Total int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Tasks)
	assert.Zero(t, resp.Total)
}

func TestToggleUnknownIDAnswersNoContent(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(r, "PATCH", "/api/tasks/no-such-id/toggle", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestToggleRoundTrip(t *testing.T) {
	r, repo := newTestRouter()

	doJSON(r, "POST", "/api/tasks", `{"text": "Buy milk"}`)
	id := repo.tasks[0].ID

	w := doJSON(r, "PATCH", "/api/tasks/"+id+"/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)

	var task domain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
}

func TestDeleteAbsentIDStillAnswersOK(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(r, "DELETE", "/api/tasks/no-such-id", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchTasks(t *testing.T) {
	r, _ := newTestRouter()

	doJSON(r, "POST", "/api/tasks", `{"text": "Buy groceries"}`)
	doJSON(r, "POST", "/api/tasks", `{"text": "Write report"}`)

	w := doJSON(r, "GET", "/api/tasks/search?q=groceries", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tasks []*domain.Task `json:"tasks"`
		Total int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Buy groceries", resp.Tasks[0].Text)
}
