package usecase

import (
	"strings"

	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/domain"
	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/repository"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/clock"

	"github.com/google/uuid"
)

const changedEvent = "habits.changed"

// habitUsecase implements HabitUsecase
type habitUsecase struct {
	habitRepo repository.HabitRepository
	clock     clock.Clock
	notifier  Notifier
}

// NewHabitUsecase creates a new instance of habitUsecase. notifier may
// be nil when no push channel is wired (tests).
func NewHabitUsecase(habitRepo repository.HabitRepository, clk clock.Clock, notifier Notifier) HabitUsecase {
	return &habitUsecase{
		habitRepo: habitRepo,
		clock:     clk,
		notifier:  notifier,
	}
}

func (u *habitUsecase) Add(userID, name string, goal int, category string) (*domain.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	if goal <= 0 {
		goal = domain.DefaultGoal
	}
	if category == "" {
		category = "General"
	}

	habit := &domain.Habit{
		ID:            uuid.New().String(),
		UserID:        userID,
		Name:          name,
		Goal:          goal,
		CompletedDays: domain.DaySet{},
		Category:      category,
		CreatedAt:     u.clock.Now(),
	}

	if err := u.habitRepo.Create(habit); err != nil {
		return nil, err
	}

	u.publishChanged(userID)
	return habit, nil
}

func (u *habitUsecase) ToggleDay(userID, id string, day int) (*domain.Habit, error) {
	habit, err := u.owned(userID, id)
	if habit == nil || err != nil {
		return nil, err
	}

	habit.CompletedDays = habit.CompletedDays.Toggle(day)
	if err := u.habitRepo.Update(habit); err != nil {
		return nil, err
	}

	u.publishChanged(userID)
	return habit, nil
}

func (u *habitUsecase) Edit(userID, id, newName string) (*domain.Habit, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, nil
	}

	habit, err := u.owned(userID, id)
	if habit == nil || err != nil {
		return nil, err
	}

	habit.Name = newName
	if err := u.habitRepo.Update(habit); err != nil {
		return nil, err
	}

	u.publishChanged(userID)
	return habit, nil
}

func (u *habitUsecase) Delete(userID, id string) error {
	habit, err := u.owned(userID, id)
	if err != nil {
		return err
	}
	if habit == nil {
		return nil
	}

	if err := u.habitRepo.Delete(habit.ID); err != nil {
		return err
	}

	u.publishChanged(userID)
	return nil
}

func (u *habitUsecase) List(userID string) ([]*domain.Habit, error) {
	return u.habitRepo.FindByUserID(userID)
}

func (u *habitUsecase) owned(userID, id string) (*domain.Habit, error) {
	habit, err := u.habitRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if habit == nil || habit.UserID != userID {
		return nil, nil
	}
	return habit, nil
}

func (u *habitUsecase) publishChanged(userID string) {
	if u.notifier != nil {
		u.notifier.Publish(userID, changedEvent, map[string]string{"kind": "habit"})
	}
}
