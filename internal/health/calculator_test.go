package health

import (
	"testing"

	"example.com/selfcare/backend/internal/models"
)

// TestBMIKnownValue проверяет расчет BMI на эталонных входах.
func TestBMIKnownValue(t *testing.T) {
	bmi, err := BMI(70, 175)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bmi != 22.9 {
		t.Fatalf("expected 22.9, got %v", bmi)
	}
	if got := BMICategory(bmi); got != "Normal" {
		t.Fatalf("expected Normal, got %s", got)
	}
}

// TestBMIInvalidInput проверяет ошибку на неположительных входах.
func TestBMIInvalidInput(t *testing.T) {
	if _, err := BMI(0, 175); err == nil {
		t.Fatal("expected error for zero weight")
	}
	if _, err := BMI(70, -1); err == nil {
		t.Fatal("expected error for negative height")
	}
}

// TestBMICategoryThresholds проверяет границы категорий ВОЗ.
func TestBMICategoryThresholds(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{18.4, "Underweight"},
		{18.5, "Normal"},
		{24.9, "Normal"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30.0, "Obese"},
		{34.9, "Obese"},
		{35.0, "Morbidly Obese"},
	}

	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %s, want %s", tc.bmi, got, tc.want)
		}
	}
}

// TestBMIStatusLabelVariant проверяет азиатские пороги статуса (23/25).
func TestBMIStatusLabelVariant(t *testing.T) {
	if got := BMIStatusLabel(23.5); got != "Overweight" {
		t.Fatalf("expected Overweight at 23.5, got %s", got)
	}
	if got := BMIStatusLabel(22.9); got != "Normal" {
		t.Fatalf("expected Normal at 22.9, got %s", got)
	}
	if got := BMIStatusLabel(25.0); got != "Obese" {
		t.Fatalf("expected Obese at 25.0, got %s", got)
	}
}

// TestBMRMale проверяет мужскую формулу Миффлина-Сан Жеора:
// 10*70 + 6.25*175 - 5*25 + 5 = 1673.75 → 1674.
func TestBMRMale(t *testing.T) {
	bmr, err := BMR(models.GenderMale, 70, 175, 25)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bmr != 1674 {
		t.Fatalf("expected 1674, got %d", bmr)
	}
}

// TestBMRFemale проверяет женскую формулу: та же сумма, но -161 вместо +5.
func TestBMRFemale(t *testing.T) {
	bmr, err := BMR(models.GenderFemale, 70, 175, 25)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bmr != 1508 {
		t.Fatalf("expected 1508, got %d", bmr)
	}
}

// TestBMRInvalid проверяет отказ на неизвестном поле и плохом возрасте.
func TestBMRInvalid(t *testing.T) {
	if _, err := BMR(models.Gender("other"), 70, 175, 25); err == nil {
		t.Fatal("expected error for unknown gender")
	}
	if _, err := BMR(models.GenderMale, 70, 175, 0); err == nil {
		t.Fatal("expected error for zero age")
	}
	if _, err := BMR(models.GenderMale, 70, 175, 200); err == nil {
		t.Fatal("expected error for age over 130")
	}
}

// TestTDEEModerate проверяет расчет TDEE: round(1674 * 1.55) = 2595.
func TestTDEEModerate(t *testing.T) {
	tdee, err := TDEE(1674, ActivityModerate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tdee != 2595 {
		t.Fatalf("expected 2595, got %d", tdee)
	}
}

// TestTDEEUnknownLevel проверяет ошибку при неизвестном уровне активности.
func TestTDEEUnknownLevel(t *testing.T) {
	if _, err := TDEE(1674, ActivityLevel("intense")); err == nil {
		t.Fatal("expected error for unknown activity level")
	}
}

// TestGoals проверяет сдвиги ±250/±500 от TDEE.
func TestGoals(t *testing.T) {
	goals := Goals(2595)
	if goals.Maintain != 2595 || goals.MildLoss != 2345 || goals.Loss != 2095 ||
		goals.MildGain != 2845 || goals.Gain != 3095 {
		t.Fatalf("unexpected goals: %+v", goals)
	}
}
