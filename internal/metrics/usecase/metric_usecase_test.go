package usecase

import (
	"sort"
	"testing"
	"time"

	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/metrics/domain"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMetricRepo keys records by (user, date) and lists them date-ascending.
type fakeMetricRepo struct {
	records map[string]*domain.DailyMetric
}

func newFakeMetricRepo() *fakeMetricRepo {
	return &fakeMetricRepo{records: map[string]*domain.DailyMetric{}}
}

func (r *fakeMetricRepo) Upsert(metric *domain.DailyMetric) error {
	m := *metric
	r.records[m.UserID+"|"+m.Date] = &m
	return nil
}

func (r *fakeMetricRepo) FindByUserID(userID string) ([]*domain.DailyMetric, error) {
	var out []*domain.DailyMetric
	for _, m := range r.records {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

var testNow = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func newTestUsecase() (MetricUsecase, *fakeMetricRepo) {
	repo := newFakeMetricRepo()
	return NewMetricUsecase(repo, clock.Fixed(testNow)), repo
}

func TestUpsertDefaultsDateToToday(t *testing.T) {
	uc, _ := newTestUsecase()

	got, err := uc.Upsert("guest", domain.DailyMetric{Mood: 7, Energy: 6})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", got.Date)
	assert.Equal(t, "guest", got.UserID)
}

func TestUpsertReplacesSameDate(t *testing.T) {
	uc, repo := newTestUsecase()

	_, err := uc.Upsert("guest", domain.DailyMetric{Date: "2026-08-27", Mood: 3, Energy: 4, Achievement: "old"})
	require.NoError(t, err)
	_, err = uc.Upsert("guest", domain.DailyMetric{Date: "2026-08-27", Mood: 8, Energy: 9})
	require.NoError(t, err)

	all, err := repo.FindByUserID("guest")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 8, all[0].Mood)
	// The whole record is replaced, prior fields don't survive.
	assert.Empty(t, all[0].Achievement)
}

func TestUpsertClampsOutOfRangeValues(t *testing.T) {
	uc, _ := newTestUsecase()

	got, err := uc.Upsert("guest", domain.DailyMetric{
		Date:       "2026-08-28",
		Mood:       15,
		Energy:     -3,
		ScreenTime: -60,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, got.Mood)
	assert.Equal(t, 1, got.Energy)
	assert.Equal(t, 0, got.ScreenTime)
}

func TestListOrdersByDate(t *testing.T) {
	uc, _ := newTestUsecase()

	for _, date := range []string{"2026-08-27", "2026-08-25", "2026-08-26"} {
		_, err := uc.Upsert("guest", domain.DailyMetric{Date: date, Mood: 5, Energy: 5})
		require.NoError(t, err)
	}

	all, err := uc.List("guest")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2026-08-25", all[0].Date)
	assert.Equal(t, "2026-08-27", all[2].Date)
}

func TestRecentReturnsTrailingRecords(t *testing.T) {
	uc, _ := newTestUsecase()

	for _, date := range []string{"2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27"} {
		_, err := uc.Upsert("guest", domain.DailyMetric{Date: date, Mood: 5, Energy: 5})
		require.NoError(t, err)
	}

	recent, err := uc.Recent("guest", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2026-08-26", recent[0].Date)
	assert.Equal(t, "2026-08-27", recent[1].Date)

	// n <= 0 or n larger than the history returns everything.
	all, err := uc.Recent("guest", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
