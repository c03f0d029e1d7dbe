package auth

import "testing"

// TestPasswordStrengthScores проверяет баллы на характерных паролях.
func TestPasswordStrengthScores(t *testing.T) {
	cases := []struct {
		password string
		score    int
		strong   bool
	}{
		{"", 0, false},
		{"abc", 1, false},
		{"abcdefgh", 2, false},
		{"Abcdefgh", 3, false},
		{"Abcdefg1", 4, true},
		{"ABCDEF12", 3, false},
		{"Ab1", 3, false},
	}

	for _, tc := range cases {
		got := PasswordStrength(tc.password)
		if got.Score != tc.score {
			t.Errorf("PasswordStrength(%q).Score = %d, want %d", tc.password, got.Score, tc.score)
		}
		if got.IsStrong() != tc.strong {
			t.Errorf("PasswordStrength(%q).IsStrong() = %v, want %v", tc.password, got.IsStrong(), tc.strong)
		}
	}
}

// TestPasswordStrengthChecklist проверяет разбивку по требованиям.
func TestPasswordStrengthChecklist(t *testing.T) {
	got := PasswordStrength("Abcdefg1")
	if !got.Checklist.MinLength || !got.Checklist.Lowercase || !got.Checklist.Uppercase || !got.Checklist.Digit {
		t.Fatalf("expected all checks to pass, got %+v", got.Checklist)
	}

	got = PasswordStrength("abcdefgh")
	if got.Checklist.Uppercase || got.Checklist.Digit {
		t.Fatalf("expected uppercase and digit checks to fail, got %+v", got.Checklist)
	}
}

// TestHashTokenRoundTrip проверяет сравнение токена с его хэшем.
func TestHashTokenRoundTrip(t *testing.T) {
	token := "sample-refresh-token"
	hash := HashToken(token)

	if !CompareTokenHash(hash, token) {
		t.Fatal("expected hash to match token")
	}
	if CompareTokenHash(hash, "other-token") {
		t.Fatal("expected hash mismatch for different token")
	}
}
