package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DefaultGoal is the monthly target applied when none is given,
// matching the client form default.
const DefaultGoal = 20

// DaySet is a set of day-of-month numbers (1..31), kept sorted and
// unique. It is persisted as a JSON array in a text column.
type DaySet []int

// Contains reports whether day is in the set.
func (s DaySet) Contains(day int) bool {
	for _, d := range s {
		if d == day {
			return true
		}
	}
	return false
}

// Toggle returns the set with day added if absent, removed if present.
// Days outside 1..31 are ignored. Toggling twice restores the input.
func (s DaySet) Toggle(day int) DaySet {
	if day < 1 || day > 31 {
		return s
	}
	out := make(DaySet, 0, len(s)+1)
	found := false
	for _, d := range s {
		if d == day {
			found = true
			continue
		}
		out = append(out, d)
	}
	if !found {
		out = append(out, day)
		sort.Ints(out)
	}
	return out
}

// Value implements driver.Valuer for JSON storage.
func (s DaySet) Value() (driver.Value, error) {
	if s == nil {
		s = DaySet{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner. Corrupted stored JSON decodes to an
// empty set rather than failing the whole row load.
func (s *DaySet) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = DaySet{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported day set column type %T", value)
	}

	var days []int
	if err := json.Unmarshal(data, &days); err != nil {
		*s = DaySet{}
		return nil
	}
	*s = days
	return nil
}

// Habit is a recurring protocol tracked against a monthly goal.
type Habit struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"index;not null"`
	Name          string    `json:"name" gorm:"not null"`
	Goal          int       `json:"goal"`
	CompletedDays DaySet    `json:"completed_days" gorm:"type:text"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
}
