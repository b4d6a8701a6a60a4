package models

import (
	"time"

	"gorm.io/gorm"
)

type CounterKind string

const (
	CounterSteps CounterKind = "steps"
	CounterWater CounterKind = "water"
)

// DailyCounter holds one replace-on-write scalar per (user, day, kind).
// Day is truncated to local midnight. The composite unique index backs the
// atomic insert-or-replace upsert; writers must never check-then-insert.
type DailyCounter struct {
	gorm.Model
	UserID uint        `gorm:"not null;uniqueIndex:idx_counter_user_day_kind"`
	Day    time.Time   `gorm:"not null;uniqueIndex:idx_counter_user_day_kind"`
	Kind   CounterKind `gorm:"size:16;not null;uniqueIndex:idx_counter_user_day_kind"`
	Value  int64       `gorm:"not null"`
}
