package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jb24000/fittrackerpro/config"
	"github.com/jb24000/fittrackerpro/models"
	"github.com/jb24000/fittrackerpro/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupLogRouter wires the log handlers over an in-memory database with a
// stub auth layer that fixes the caller as user 1.
func setupLogRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodLog{},
		&models.ExerciseLog{},
		&models.WeightLog{},
		&models.DailyCounter{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Next()
	})
	r.POST("/water/log", LogWater)
	r.POST("/steps/log", LogSteps)
	r.POST("/food/log", LogFood)
	r.POST("/exercise/log", LogExercise)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// TestLogWater_AcceptsZeroGlasses verifies that 0 is a loggable value: the
// zero value must not be rejected as a missing field, and the counter row
// must hold 0.
func TestLogWater_AcceptsZeroGlasses(t *testing.T) {
	r := setupLogRouter(t)

	if w := postJSON(r, "/water/log", `{"glasses": 0}`); w.Code != http.StatusOK {
		t.Fatalf("logging 0 glasses returned %d: %s", w.Code, w.Body.String())
	}

	value, found, err := services.NewCounterStore(config.DB).Get(1, time.Now(), models.CounterWater)
	if err != nil {
		t.Fatalf("get counter: %v", err)
	}
	if !found || value != 0 {
		t.Errorf("water counter = (%d, %v), want (0, true)", value, found)
	}
}

// TestLogSteps_AcceptsZero mirrors the water case for the steps counter,
// and checks that a later nonzero write still replaces the zero.
func TestLogSteps_AcceptsZero(t *testing.T) {
	r := setupLogRouter(t)

	if w := postJSON(r, "/steps/log", `{"steps": 0}`); w.Code != http.StatusOK {
		t.Fatalf("logging 0 steps returned %d: %s", w.Code, w.Body.String())
	}
	if w := postJSON(r, "/steps/log", `{"steps": 1200}`); w.Code != http.StatusOK {
		t.Fatalf("logging 1200 steps returned %d: %s", w.Code, w.Body.String())
	}

	value, _, err := services.NewCounterStore(config.DB).Get(1, time.Now(), models.CounterSteps)
	if err != nil {
		t.Fatalf("get counter: %v", err)
	}
	if value != 1200 {
		t.Errorf("steps counter = %d, want 1200", value)
	}
}

// TestLogWater_MissingFieldRejected verifies presence is still enforced:
// a body without the glasses key is a 400, not an implicit zero write.
func TestLogWater_MissingFieldRejected(t *testing.T) {
	r := setupLogRouter(t)

	if w := postJSON(r, "/water/log", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing glasses returned %d, want 400", w.Code)
	}

	var count int64
	config.DB.Model(&models.DailyCounter{}).Count(&count)
	if count != 0 {
		t.Errorf("counter rows = %d, want 0 after rejected write", count)
	}
}

// TestLogFood_AcceptsZeroCalories verifies a zero-calorie food entry (water,
// black coffee) is stored rather than failing validation.
func TestLogFood_AcceptsZeroCalories(t *testing.T) {
	r := setupLogRouter(t)

	body := `{"food_name": "black coffee", "calories": 0, "quantity": 1, "unit": "cup", "meal_type": "breakfast"}`
	if w := postJSON(r, "/food/log", body); w.Code != http.StatusCreated {
		t.Fatalf("logging 0-calorie food returned %d: %s", w.Code, w.Body.String())
	}

	var log models.FoodLog
	if err := config.DB.First(&log).Error; err != nil {
		t.Fatalf("load food log: %v", err)
	}
	if log.Calories != 0 || log.FoodName != "black coffee" {
		t.Errorf("stored log = %q/%d, want black coffee/0", log.FoodName, log.Calories)
	}
}

// TestLogExercise_AcceptsZeroDuration verifies a zero-minute entry binds
// and yields zero computed calories.
func TestLogExercise_AcceptsZeroDuration(t *testing.T) {
	r := setupLogRouter(t)

	body := `{"exercise_name": "running", "duration": 0, "intensity": "high"}`
	if w := postJSON(r, "/exercise/log", body); w.Code != http.StatusCreated {
		t.Fatalf("logging 0-duration exercise returned %d: %s", w.Code, w.Body.String())
	}

	var log models.ExerciseLog
	if err := config.DB.First(&log).Error; err != nil {
		t.Fatalf("load exercise log: %v", err)
	}
	if log.Duration != 0 || log.CaloriesBurned != 0 {
		t.Errorf("stored log = %d min / %d kcal, want 0 / 0", log.Duration, log.CaloriesBurned)
	}
}
