package inputval

import (
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.co.in", true},
		{"user+tag@example.com", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"user @example.com", false},
		{"user@exam ple.com", false},
		{"user@@example.com", false},
		{"user@example.com ", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidate_RequiredAndMax(t *testing.T) {
	type input struct {
		Name  string `validate:"required,max=10" label:"Name"`
		Email string `validate:"required" label:"Email"`
	}

	result := Validate(input{Name: "Asha", Email: "asha@example.com"})
	if result.HasErrors() {
		t.Errorf("Validate() unexpected errors: %s", result.All())
	}

	result = Validate(input{Email: "asha@example.com"})
	if !result.HasErrors() {
		t.Fatal("Validate() expected error for missing Name")
	}
	if result.First() != "Name is required." {
		t.Errorf("First() = %q, want %q", result.First(), "Name is required.")
	}

	result = Validate(input{Name: "much too long for the cap", Email: "asha@example.com"})
	if !result.HasErrors() {
		t.Fatal("Validate() expected error for over-length Name")
	}
}
