package envconfig

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("STREAK_TEST_VALUE", "set")
	if got := Get("STREAK_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("expected set, got %s", got)
	}
	if got := Get("STREAK_TEST_VALUE_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("STREAK_TEST_INT", "42")
	if got := GetInt("STREAK_TEST_INT", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	t.Setenv("STREAK_TEST_INT", "not-a-number")
	if got := GetInt("STREAK_TEST_INT", 7); got != 7 {
		t.Fatalf("expected fallback for unparseable value, got %d", got)
	}

	if got := GetInt("STREAK_TEST_INT_MISSING", 7); got != 7 {
		t.Fatalf("expected fallback for missing value, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	if err := Validate(payload{}); err == nil {
		t.Fatal("expected error for missing required field")
	}
	if err := Validate(payload{Name: "inkwell"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
