package services

import (
	"time"

	"github.com/jb24000/fittrackerpro/models"
)

// Fixed daily targets surfaced on the dashboard.
const (
	StepsGoal = 10000
	WaterGoal = 8
)

type DashboardSummary struct {
	CaloriesConsumed   int64   `json:"calories_consumed"`
	CaloriesBurned     int64   `json:"calories_burned"`
	NetCalories        int64   `json:"net_calories"`
	CalorieGoal        int     `json:"calorie_goal"`
	RemainingCalories  int64   `json:"remaining_calories"`
	Steps              int64   `json:"steps"`
	StepsGoal          int     `json:"steps_goal"`
	WaterGlasses       int64   `json:"water_glasses"`
	WaterGoal          int     `json:"water_goal"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type SummaryService struct {
	logs     ActivityLogStore
	counters DailyCounterStore
}

func NewSummaryService(logs ActivityLogStore, counters DailyCounterStore) *SummaryService {
	return &SummaryService{logs: logs, counters: counters}
}

// Summarize derives the dashboard view for the given reference date. It is a
// pure read: repeated calls over unchanged data return identical results.
// Absent logs and counters read as 0; a zero calorie goal yields 0 progress
// rather than a division fault. Progress is capped at 100 but may go
// negative when exercise outweighs intake.
func (s *SummaryService) Summarize(user *models.User, day time.Time) (*DashboardSummary, error) {
	foodCalories, err := s.logs.SumFoodCalories(user.ID, day)
	if err != nil {
		return nil, err
	}
	exerciseCalories, err := s.logs.SumExerciseCalories(user.ID, day)
	if err != nil {
		return nil, err
	}
	steps, _, err := s.counters.Get(user.ID, day, models.CounterSteps)
	if err != nil {
		return nil, err
	}
	water, _, err := s.counters.Get(user.ID, day, models.CounterWater)
	if err != nil {
		return nil, err
	}

	netCalories := foodCalories - exerciseCalories
	goal := user.DailyCalorieGoal

	progress := 0.0
	if goal > 0 {
		progress = float64(netCalories) / float64(goal) * 100
		if progress > 100 {
			progress = 100
		}
	}

	return &DashboardSummary{
		CaloriesConsumed:   foodCalories,
		CaloriesBurned:     exerciseCalories,
		NetCalories:        netCalories,
		CalorieGoal:        goal,
		RemainingCalories:  int64(goal) - netCalories,
		Steps:              steps,
		StepsGoal:          StepsGoal,
		WaterGlasses:       water,
		WaterGoal:          WaterGoal,
		ProgressPercentage: progress,
	}, nil
}
