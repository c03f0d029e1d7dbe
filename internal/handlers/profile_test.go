package handlers

import (
	"testing"

	"example.com/selfcare/backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

// TestApplyProfileUpdateMerge проверяет, что непереданные поля не трогаются.
func TestApplyProfileUpdateMerge(t *testing.T) {
	blood := "O"
	profile := models.UserProfile{
		Username:  "nok",
		BloodType: &blood,
		Age:       intPtr(30),
	}

	merged, err := applyProfileUpdate(profile, UpdateProfileRequest{Username: strPtr("  fah  ")})
	if err != nil {
		t.Fatalf("applyProfileUpdate() error = %v", err)
	}

	if merged.Username != "fah" {
		t.Errorf("Username = %q, want fah", merged.Username)
	}
	if merged.BloodType == nil || *merged.BloodType != "O" {
		t.Error("expected blood type to be kept")
	}
	if merged.Age == nil || *merged.Age != 30 {
		t.Error("expected age to be kept")
	}
}

// TestApplyProfileUpdateRecomputesBMI проверяет перезапись BMI при наличии
// роста и веса после слияния.
func TestApplyProfileUpdateRecomputesBMI(t *testing.T) {
	staleBMI := 99.9
	profile := models.UserProfile{
		Username: "nok",
		HeightCM: floatPtr(175),
		BMI:      &staleBMI,
	}

	merged, err := applyProfileUpdate(profile, UpdateProfileRequest{WeightKG: floatPtr(70)})
	if err != nil {
		t.Fatalf("applyProfileUpdate() error = %v", err)
	}

	if merged.BMI == nil || *merged.BMI != 22.9 {
		t.Fatalf("BMI = %v, want 22.9", merged.BMI)
	}
	if merged.BMICategory == nil || *merged.BMICategory != "Normal" {
		t.Fatalf("BMICategory = %v, want Normal", merged.BMICategory)
	}
}

// TestApplyProfileUpdateRecomputesBMR проверяет пересчет BMR, когда известны
// пол и возраст.
func TestApplyProfileUpdateRecomputesBMR(t *testing.T) {
	gender := models.GenderMale
	profile := models.UserProfile{
		Username: "nok",
		Gender:   &gender,
		Age:      intPtr(25),
		HeightCM: floatPtr(175),
	}

	merged, err := applyProfileUpdate(profile, UpdateProfileRequest{WeightKG: floatPtr(70)})
	if err != nil {
		t.Fatalf("applyProfileUpdate() error = %v", err)
	}

	if merged.BMR == nil || *merged.BMR != 1674 {
		t.Fatalf("BMR = %v, want 1674", merged.BMR)
	}
}

// TestApplyProfileUpdateNoRecomputeWithoutWeight проверяет, что без веса
// метрики не трогаются.
func TestApplyProfileUpdateNoRecomputeWithoutWeight(t *testing.T) {
	profile := models.UserProfile{Username: "nok"}

	merged, err := applyProfileUpdate(profile, UpdateProfileRequest{HeightCM: floatPtr(170)})
	if err != nil {
		t.Fatalf("applyProfileUpdate() error = %v", err)
	}

	if merged.BMI != nil {
		t.Errorf("BMI = %v, want nil", *merged.BMI)
	}
}

// TestApplyProfileUpdateEmptyUsername проверяет отказ на пустом имени.
func TestApplyProfileUpdateEmptyUsername(t *testing.T) {
	profile := models.UserProfile{Username: "nok"}

	if _, err := applyProfileUpdate(profile, UpdateProfileRequest{Username: strPtr("   ")}); err == nil {
		t.Fatal("expected error for blank username")
	}
}

// TestAvatarExtension проверяет сопоставление MIME-типов расширениям.
func TestAvatarExtension(t *testing.T) {
	cases := []struct {
		contentType string
		ext         string
		ok          bool
	}{
		{"image/png", ".png", true},
		{"image/jpeg", ".jpg", true},
		{"image/webp", ".webp", true},
		{"image/gif", "", false},
		{"application/pdf", "", false},
	}

	for _, tc := range cases {
		ext, ok := avatarExtension(tc.contentType)
		if ext != tc.ext || ok != tc.ok {
			t.Errorf("avatarExtension(%q) = (%q, %v), want (%q, %v)", tc.contentType, ext, ok, tc.ext, tc.ok)
		}
	}
}
