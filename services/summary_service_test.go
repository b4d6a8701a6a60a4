package services

import (
	"testing"
	"time"

	"github.com/jb24000/fittrackerpro/models"
)

// stubLogStore and stubCounterStore satisfy the store contracts with canned
// totals so the aggregation math can be tested without a database.

type stubLogStore struct {
	foodCalories     int64
	exerciseCalories int64
}

func (s *stubLogStore) AppendFood(*models.FoodLog) error         { return nil }
func (s *stubLogStore) AppendExercise(*models.ExerciseLog) error { return nil }
func (s *stubLogStore) AppendWeight(*models.WeightLog) error     { return nil }
func (s *stubLogStore) FoodForDay(uint, time.Time) ([]models.FoodLog, error) {
	return nil, nil
}
func (s *stubLogStore) ExerciseForDay(uint, time.Time) ([]models.ExerciseLog, error) {
	return nil, nil
}
func (s *stubLogStore) WeightHistory(uint, int) ([]models.WeightLog, error) {
	return nil, nil
}
func (s *stubLogStore) SumFoodCalories(uint, time.Time) (int64, error) {
	return s.foodCalories, nil
}
func (s *stubLogStore) SumExerciseCalories(uint, time.Time) (int64, error) {
	return s.exerciseCalories, nil
}

type stubCounterStore struct {
	values map[models.CounterKind]int64
}

func (s *stubCounterStore) Get(_ uint, _ time.Time, kind models.CounterKind) (int64, bool, error) {
	v, ok := s.values[kind]
	return v, ok, nil
}
func (s *stubCounterStore) Upsert(uint, time.Time, models.CounterKind, int64) error {
	return nil
}

// newStubSummaryService wires a SummaryService over stub stores.
func newStubSummaryService(food, exercise int64, counters map[models.CounterKind]int64) *SummaryService {
	return NewSummaryService(
		&stubLogStore{foodCalories: food, exerciseCalories: exercise},
		&stubCounterStore{values: counters},
	)
}

// TestSummarize_Basic pins the arithmetic: food 2200, exercise 300, goal
// 2000 → net 1900, remaining 100, progress 95%.
func TestSummarize_Basic(t *testing.T) {
	svc := newStubSummaryService(2200, 300, map[models.CounterKind]int64{
		models.CounterSteps: 5400,
		models.CounterWater: 6,
	})
	user := &models.User{DailyCalorieGoal: 2000}

	got, err := svc.Summarize(user, time.Now())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if got.NetCalories != 1900 {
		t.Errorf("NetCalories = %d, want 1900", got.NetCalories)
	}
	if got.RemainingCalories != 100 {
		t.Errorf("RemainingCalories = %d, want 100", got.RemainingCalories)
	}
	if got.ProgressPercentage != 95 {
		t.Errorf("ProgressPercentage = %v, want 95", got.ProgressPercentage)
	}
	if got.Steps != 5400 || got.WaterGlasses != 6 {
		t.Errorf("counters = %d steps / %d glasses, want 5400 / 6", got.Steps, got.WaterGlasses)
	}
	if got.StepsGoal != 10000 || got.WaterGoal != 8 {
		t.Errorf("fixed goals = %d / %d, want 10000 / 8", got.StepsGoal, got.WaterGoal)
	}
}

// TestSummarize_ZeroGoal verifies a zero calorie goal yields 0 progress
// rather than a division fault.
func TestSummarize_ZeroGoal(t *testing.T) {
	svc := newStubSummaryService(1500, 0, nil)
	user := &models.User{DailyCalorieGoal: 0}

	got, err := svc.Summarize(user, time.Now())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got.ProgressPercentage != 0 {
		t.Errorf("ProgressPercentage = %v, want 0 for zero goal", got.ProgressPercentage)
	}
}

// TestSummarize_ProgressClamping verifies the 100 upper cap and that
// negative progress (exercise exceeding intake) is left unclamped.
func TestSummarize_ProgressClamping(t *testing.T) {
	over := newStubSummaryService(5000, 0, nil)
	got, err := over.Summarize(&models.User{DailyCalorieGoal: 2000}, time.Now())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got.ProgressPercentage != 100 {
		t.Errorf("over-goal progress = %v, want capped at 100", got.ProgressPercentage)
	}

	under := newStubSummaryService(200, 1000, nil)
	got, err = under.Summarize(&models.User{DailyCalorieGoal: 2000}, time.Now())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got.ProgressPercentage != -40 {
		t.Errorf("negative progress = %v, want -40 (unclamped below 0)", got.ProgressPercentage)
	}
	if got.NetCalories != -800 || got.RemainingCalories != 2800 {
		t.Errorf("net/remaining = %d/%d, want -800/2800", got.NetCalories, got.RemainingCalories)
	}
}

// TestSummarize_AbsentCountersReadAsZero verifies that missing counter rows
// surface as 0, not an error.
func TestSummarize_AbsentCountersReadAsZero(t *testing.T) {
	svc := newStubSummaryService(0, 0, nil)
	got, err := svc.Summarize(&models.User{DailyCalorieGoal: 2000}, time.Now())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got.Steps != 0 || got.WaterGlasses != 0 {
		t.Errorf("absent counters = %d / %d, want 0 / 0", got.Steps, got.WaterGlasses)
	}
}

// TestSummarize_Idempotent verifies repeated calls over unchanged stores
// return identical summaries.
func TestSummarize_Idempotent(t *testing.T) {
	svc := newStubSummaryService(1800, 400, map[models.CounterKind]int64{models.CounterWater: 3})
	user := &models.User{DailyCalorieGoal: 2200}

	first, err := svc.Summarize(user, time.Now())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	second, err := svc.Summarize(user, time.Now())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if *first != *second {
		t.Errorf("summaries differ across identical calls: %+v vs %+v", first, second)
	}
}
