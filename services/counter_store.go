package services

import (
	"errors"
	"time"

	"github.com/jb24000/fittrackerpro/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyCounterStore is the contract for per-user-per-day scalar counters
// (steps, water). A counter holds the latest written value for its day;
// writes replace, they never accumulate.
type DailyCounterStore interface {
	// Get returns the counter value for the day, with found=false when no
	// row exists yet. Callers treat absent as 0.
	Get(userID uint, day time.Time, kind models.CounterKind) (value int64, found bool, err error)
	// Upsert atomically inserts or replaces the row for (user, day, kind).
	Upsert(userID uint, day time.Time, kind models.CounterKind, value int64) error
}

type GormCounterStore struct {
	db *gorm.DB
}

func NewCounterStore(db *gorm.DB) *GormCounterStore {
	return &GormCounterStore{db: db}
}

func (s *GormCounterStore) Get(userID uint, day time.Time, kind models.CounterKind) (int64, bool, error) {
	var counter models.DailyCounter
	err := s.db.
		Where("user_id = ? AND day = ? AND kind = ?", userID, dayStartLocal(day), kind).
		First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return counter.Value, true, nil
}

// Upsert relies on the (user_id, day, kind) unique index: a single
// INSERT ... ON CONFLICT DO UPDATE, so two concurrent first writes for the
// same key cannot produce duplicate rows or surface a constraint violation.
func (s *GormCounterStore) Upsert(userID uint, day time.Time, kind models.CounterKind, value int64) error {
	counter := models.DailyCounter{
		UserID: userID,
		Day:    dayStartLocal(day),
		Kind:   kind,
		Value:  value,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}, {Name: "kind"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&counter).Error
}
