package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	habitUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/usecase"
	metricUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/usecase"
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/stats"
	taskUsecase "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/usecase"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/ai"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/clock"
)

const readyEvent = "insights.ready"

// fallbackInsights is substituted whenever the provider call fails.
// It must always render; the panel has no error state.
func fallbackInsights() *ai.Insights {
	return &ai.Insights{
		ProductivityScore: 0,
		Summary:           "Coach is offline. Keep pushing through your protocols!",
		Suggestions:       []string{"Drink more water.", "Review your monthly goals manually."},
	}
}

// onboardingInsights is returned for an empty collection, without
// calling the remote provider.
func onboardingInsights(kind string) *ai.Insights {
	if kind == KindHabit {
		return &ai.Insights{
			ProductivityScore: 0,
			Summary:           "Add your core protocols to start your habit-forming journey.",
			Suggestions:       []string{"Set a screen time limit.", "Add a morning routine."},
		}
	}
	return &ai.Insights{
		ProductivityScore: 0,
		Summary:           "Add your first tasks to start your productivity journey.",
		Suggestions:       []string{"Write down one small task.", "Pick a priority for your day."},
	}
}

type insightJob struct {
	userID string
	kind   string
	gen    uint64
}

// insightUsecase implements InsightUsecase. A per-user generation
// counter makes late-arriving results no-ops: a job only applies its
// result if no newer Refresh or Dismiss happened in the meantime.
type insightUsecase struct {
	taskUc    taskUsecase.TaskUsecase
	habitUc   habitUsecase.HabitUsecase
	metricUc  metricUsecase.MetricUsecase
	aiService ai.InsightService
	notifier  Notifier
	clock     clock.Clock
	timeout   time.Duration

	jobQueue chan insightJob
	workerWg sync.WaitGroup

	mu     sync.Mutex
	gens   map[string]uint64
	states map[string]PanelState
}

// NewInsightUsecase creates the usecase and starts its worker pool.
// aiService may be nil; every request then resolves to the fallback.
func NewInsightUsecase(
	taskUc taskUsecase.TaskUsecase,
	habitUc habitUsecase.HabitUsecase,
	metricUc metricUsecase.MetricUsecase,
	aiService ai.InsightService,
	notifier Notifier,
	clk clock.Clock,
	timeout time.Duration,
	workers int,
) InsightUsecase {
	if workers <= 0 {
		workers = 2
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	u := &insightUsecase{
		taskUc:    taskUc,
		habitUc:   habitUc,
		metricUc:  metricUc,
		aiService: aiService,
		notifier:  notifier,
		clock:     clk,
		timeout:   timeout,
		jobQueue:  make(chan insightJob, 64),
		gens:      make(map[string]uint64),
		states:    make(map[string]PanelState),
	}

	for i := 0; i < workers; i++ {
		u.workerWg.Add(1)
		go u.worker(i)
	}
	log.Printf("[Insight] Started %d workers", workers)

	return u
}

func (u *insightUsecase) Get(userID string) PanelState {
	u.mu.Lock()
	defer u.mu.Unlock()

	state, ok := u.states[userID]
	if !ok {
		return PanelState{Status: StatusIdle}
	}
	return state
}

func (u *insightUsecase) RequestNow(ctx context.Context, userID, kind string) *ai.Insights {
	gen := u.bumpGeneration(userID)
	insights, fallback := u.generate(ctx, userID, normalizeKind(kind))
	u.apply(userID, gen, insights, fallback)
	return insights
}

func (u *insightUsecase) Refresh(userID, kind string) {
	gen := u.bumpGeneration(userID)

	u.mu.Lock()
	u.states[userID] = PanelState{Status: StatusLoading}
	u.mu.Unlock()

	select {
	case u.jobQueue <- insightJob{userID: userID, kind: normalizeKind(kind), gen: gen}:
	default:
		// Queue full: resolve immediately with the fallback rather than
		// leaving the panel stuck in loading.
		log.Printf("[Insight] Job queue full, falling back for user %s", userID)
		u.apply(userID, gen, fallbackInsights(), true)
	}
}

func (u *insightUsecase) Dismiss(userID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.gens[userID]++
	delete(u.states, userID)
}

func (u *insightUsecase) Stop() {
	close(u.jobQueue)
	u.workerWg.Wait()
	log.Println("[Insight] All workers stopped")
}

func (u *insightUsecase) worker(id int) {
	defer u.workerWg.Done()

	for job := range u.jobQueue {
		insights, fallback := u.generate(context.Background(), job.userID, job.kind)
		u.apply(job.userID, job.gen, insights, fallback)
	}

	log.Printf("[Insight] Worker %d stopped", id)
}

// generate builds the snapshot and asks the provider, degrading to the
// onboarding or fallback payload. The bool result reports fallback use.
func (u *insightUsecase) generate(ctx context.Context, userID, kind string) (*ai.Insights, bool) {
	snapshot, err := u.buildSnapshot(userID, kind)
	if err != nil {
		log.Printf("[Insight] Snapshot error for user %s: %v", userID, err)
		return fallbackInsights(), true
	}

	if snapshot.Empty() {
		return onboardingInsights(kind), false
	}

	if u.aiService == nil {
		return fallbackInsights(), true
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	insights, err := u.aiService.GenerateInsights(ctx, snapshot)
	if err != nil {
		log.Printf("[Insight] Provider error for user %s: %v", userID, err)
		return fallbackInsights(), true
	}
	return insights, false
}

// apply stores the result unless a newer request or a Dismiss has
// superseded this generation.
func (u *insightUsecase) apply(userID string, gen uint64, insights *ai.Insights, fallback bool) {
	u.mu.Lock()
	if u.gens[userID] != gen {
		u.mu.Unlock()
		log.Printf("[Insight] Dropping stale result for user %s (gen %d)", userID, gen)
		return
	}
	state := PanelState{Status: StatusReady, Insights: insights, Fallback: fallback}
	u.states[userID] = state
	u.mu.Unlock()

	if u.notifier != nil {
		u.notifier.Publish(userID, readyEvent, state)
	}
}

func (u *insightUsecase) bumpGeneration(userID string) uint64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.gens[userID]++
	return u.gens[userID]
}

// buildSnapshot renders the collection into provider-neutral lines.
func (u *insightUsecase) buildSnapshot(userID, kind string) (ai.Snapshot, error) {
	now := u.clock.Now()

	if kind == KindHabit {
		habits, err := u.habitUc.List(userID)
		if err != nil {
			return ai.Snapshot{}, err
		}

		items := make([]string, 0, len(habits))
		for _, h := range habits {
			items = append(items, fmt.Sprintf("%s: %d/%d days", h.Name, len(h.CompletedDays), h.Goal))
		}

		metricSummary := ""
		if u.metricUc != nil {
			metrics, err := u.metricUc.Recent(userID, 7)
			if err != nil {
				return ai.Snapshot{}, err
			}
			for i, m := range metrics {
				if i > 0 {
					metricSummary += " | "
				}
				metricSummary += fmt.Sprintf("Date: %s, Screen: %dmin, Mood: %d/10", m.Date, m.ScreenTime, m.Mood)
			}
		}

		compliance := stats.MonthlyCompliance(habits, now)
		return ai.Snapshot{
			Kind:          KindHabit,
			Items:         items,
			MetricSummary: metricSummary,
			StatsSummary:  fmt.Sprintf("monthly compliance %d%% (%d of %d)", compliance.Rate, compliance.Done, compliance.Expected),
		}, nil
	}

	tasks, err := u.taskUc.List(userID)
	if err != nil {
		return ai.Snapshot{}, err
	}

	items := make([]string, 0, len(tasks))
	for _, t := range tasks {
		status := "open"
		if t.Completed {
			status = "done"
		}
		items = append(items, fmt.Sprintf("%s [%s, %s]", t.Text, status, t.Priority))
	}

	lifetime := stats.LifetimeTaskStats(tasks)
	return ai.Snapshot{
		Kind:         KindTask,
		Items:        items,
		StatsSummary: fmt.Sprintf("%d of %d done, completion rate %d%%", lifetime.Completed, lifetime.Total, lifetime.CompletionRate),
	}, nil
}

func normalizeKind(kind string) string {
	if kind == KindHabit {
		return KindHabit
	}
	return KindTask
}
