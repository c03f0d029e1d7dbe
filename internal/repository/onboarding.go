package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/selfcare/backend/internal/models"
)

type OnboardingRepository struct {
	db *pgxpool.Pool
}

// NewOnboardingRepository создает репозиторий снимков онбординга.
func NewOnboardingRepository(db *pgxpool.Pool) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

// Create сохраняет снимок анкеты.
func (r *OnboardingRepository) Create(ctx context.Context, snapshot models.OnboardingSnapshot) (models.OnboardingSnapshot, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO users_onboarding (id, user_id, username, gender, height_cm, weight_kg, age, blood_type, bmi, bmi_category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at`,
		snapshot.ID, snapshot.UserID, snapshot.Username, snapshot.Gender,
		snapshot.HeightCM, snapshot.WeightKG, snapshot.Age, snapshot.BloodType,
		snapshot.BMI, snapshot.BMICategory,
	).Scan(&snapshot.CreatedAt)
	if err != nil {
		return snapshot, err
	}

	return snapshot, nil
}

// Latest возвращает последний снимок анкеты пользователя.
func (r *OnboardingRepository) Latest(ctx context.Context, userID uuid.UUID) (models.OnboardingSnapshot, error) {
	var snapshot models.OnboardingSnapshot

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, username, gender, height_cm, weight_kg, age, blood_type, bmi, bmi_category, created_at
		 FROM users_onboarding
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID,
	).Scan(
		&snapshot.ID, &snapshot.UserID, &snapshot.Username, &snapshot.Gender,
		&snapshot.HeightCM, &snapshot.WeightKG, &snapshot.Age, &snapshot.BloodType,
		&snapshot.BMI, &snapshot.BMICategory, &snapshot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return snapshot, ErrNotFound
		}
		return snapshot, err
	}

	return snapshot, nil
}
