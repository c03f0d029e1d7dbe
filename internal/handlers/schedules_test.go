package handlers

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"example.com/selfcare/backend/internal/models"
)

// TestToScheduleResponseValidJSON проверяет передачу дней как есть.
func TestToScheduleResponseValidJSON(t *testing.T) {
	schedule := models.SavedSchedule{
		ID:   uuid.New(),
		Kind: models.ScheduleKindMeal,
		Days: []byte(`[{"day":"Monday"}]`),
	}

	got := toScheduleResponse(schedule)
	if string(got.Days) != `[{"day":"Monday"}]` {
		t.Errorf("Days = %s", got.Days)
	}
}

// TestToScheduleResponseMalformedJSON проверяет подмену битого JSON пустым
// массивом вместо ошибки.
func TestToScheduleResponseMalformedJSON(t *testing.T) {
	schedule := models.SavedSchedule{
		ID:   uuid.New(),
		Kind: models.ScheduleKindWorkout,
		Days: []byte(`{"day": broken`),
	}

	got := toScheduleResponse(schedule)
	if string(got.Days) != "[]" {
		t.Errorf("Days = %s, want []", got.Days)
	}

	if _, err := json.Marshal(got); err != nil {
		t.Fatalf("response must stay marshalable: %v", err)
	}
}
