package services

import (
	"time"

	"github.com/jb24000/fittrackerpro/models"

	"gorm.io/gorm"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// ActivityLogStore is the contract for the immutable, append-only activity
// logs. Sums return 0 when no rows match; lists are most-recent-first.
type ActivityLogStore interface {
	AppendFood(log *models.FoodLog) error
	AppendExercise(log *models.ExerciseLog) error
	// AppendWeight stores the log entry and updates the user's current
	// weight in the same transaction.
	AppendWeight(log *models.WeightLog) error

	FoodForDay(userID uint, day time.Time) ([]models.FoodLog, error)
	ExerciseForDay(userID uint, day time.Time) ([]models.ExerciseLog, error)
	WeightHistory(userID uint, limit int) ([]models.WeightLog, error)

	SumFoodCalories(userID uint, day time.Time) (int64, error)
	SumExerciseCalories(userID uint, day time.Time) (int64, error)
}

type GormLogStore struct {
	db *gorm.DB
}

func NewLogStore(db *gorm.DB) *GormLogStore {
	return &GormLogStore{db: db}
}

func (s *GormLogStore) AppendFood(log *models.FoodLog) error {
	return s.db.Create(log).Error
}

func (s *GormLogStore) AppendExercise(log *models.ExerciseLog) error {
	return s.db.Create(log).Error
}

func (s *GormLogStore) AppendWeight(log *models.WeightLog) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(log).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", log.UserID).
			Update("weight", log.Weight).Error
	})
}

func (s *GormLogStore) FoodForDay(userID uint, day time.Time) ([]models.FoodLog, error) {
	start := dayStartLocal(day)
	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, start.Add(24*time.Hour)).
		Order("created_at desc").
		Find(&logs).Error
	return logs, err
}

func (s *GormLogStore) ExerciseForDay(userID uint, day time.Time) ([]models.ExerciseLog, error) {
	start := dayStartLocal(day)
	var logs []models.ExerciseLog
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, start.Add(24*time.Hour)).
		Order("created_at desc").
		Find(&logs).Error
	return logs, err
}

func (s *GormLogStore) WeightHistory(userID uint, limit int) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (s *GormLogStore) SumFoodCalories(userID uint, day time.Time) (int64, error) {
	start := dayStartLocal(day)
	var total int64
	err := s.db.Model(&models.FoodLog{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, start.Add(24*time.Hour)).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&total).Error
	return total, err
}

func (s *GormLogStore) SumExerciseCalories(userID uint, day time.Time) (int64, error) {
	start := dayStartLocal(day)
	var total int64
	err := s.db.Model(&models.ExerciseLog{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, start.Add(24*time.Hour)).
		Select("COALESCE(SUM(calories_burned), 0)").
		Scan(&total).Error
	return total, err
}
