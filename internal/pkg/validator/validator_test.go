package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"john", "j.doe", "user_1", "a-b-c", "abc"}
	invalid := []string{"ab", "", "john doe", "user@host", "ユーザー"}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = false, want true", username)
		}
	}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = true, want false", username)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "today"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"08:30", "00:00", "23:59"}
	invalid := []string{"24:00", "8:300", "0830", "", "noon"}
	for _, value := range valid {
		if _, ok := IsValidClockTime(value); !ok {
			t.Errorf("IsValidClockTime(%q) = false, want true", value)
		}
	}
	for _, value := range invalid {
		if _, ok := IsValidClockTime(value); ok {
			t.Errorf("IsValidClockTime(%q) = true, want false", value)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "password", Message: "password too short"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["username"] != "username is required" {
		t.Errorf("ToMap()[username] = %q", m["username"])
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
