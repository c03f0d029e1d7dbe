package models

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

type ScheduleKind string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"

	ScheduleKindWorkout ScheduleKind = "workout"
	ScheduleKindMeal    ScheduleKind = "meal"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserProfile — строка user_profile: профиль и производные метрики здоровья.
type UserProfile struct {
	UserID           uuid.UUID `json:"user_id"`
	Username         string    `json:"username"`
	Gender           *Gender   `json:"gender,omitempty"`
	Age              *int      `json:"age,omitempty"`
	BloodType        *string   `json:"blood_type,omitempty"`
	HeightCM         *float64  `json:"height,omitempty"`
	WeightKG         *float64  `json:"weight,omitempty"`
	BMI              *float64  `json:"bmi,omitempty"`
	BMICategory      *string   `json:"bmi_category,omitempty"`
	BMR              *int      `json:"bmr,omitempty"`
	TDEE             *int      `json:"tdee,omitempty"`
	AvatarURL        *string   `json:"avatar_url,omitempty"`
	IsSetupCompleted bool      `json:"is_setup_completed"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// OnboardingSnapshot — снимок анкеты на момент завершения онбординга.
type OnboardingSnapshot struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	Gender      Gender    `json:"gender"`
	HeightCM    float64   `json:"height"`
	WeightKG    float64   `json:"weight"`
	Age         int       `json:"age"`
	BloodType   string    `json:"blood_type"`
	BMI         float64   `json:"bmi"`
	BMICategory string    `json:"bmi_category"`
	CreatedAt   time.Time `json:"created_at"`
}

// SavedSchedule — сохраненное недельное расписание (еда или тренировки).
// Days хранит сгенерированные дни в исходном JSON-виде.
type SavedSchedule struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	Kind      ScheduleKind `json:"kind"`
	Days      []byte       `json:"-"`
	CreatedAt time.Time    `json:"created_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}

// PasswordReset — выданный токен сброса пароля.
type PasswordReset struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	TokenHash string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
