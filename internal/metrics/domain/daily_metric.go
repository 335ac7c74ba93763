package domain

// DateLayout is the calendar-date key format for metric records.
const DateLayout = "2006-01-02"

// DailyMetric is the subjective self-report for one calendar date.
// There is at most one record per user per date; writes replace the
// whole record for that date.
type DailyMetric struct {
	UserID      string `json:"user_id" gorm:"primaryKey"`
	Date        string `json:"date" gorm:"primaryKey"` // YYYY-MM-DD
	ScreenTime  int    `json:"screen_time"`            // minutes
	Mood        int    `json:"mood"`                   // 1..10
	Energy      int    `json:"energy"`                 // 1..10
	Achievement string `json:"achievement,omitempty"`
}

// Clamp forces the subjective fields into their valid ranges instead of
// rejecting the submission.
func (m *DailyMetric) Clamp() {
	m.Mood = clamp(m.Mood, 1, 10)
	m.Energy = clamp(m.Energy, 1, 10)
	if m.ScreenTime < 0 {
		m.ScreenTime = 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
