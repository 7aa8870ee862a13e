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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-03-01", "2024-12-31", "1999-01-01"}
	invalid := []string{"2024-13-01", "2024-03-32", "01-03-2024", "2024/03/01", "2024-3-1", "", "today"}
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

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("012345") {
		t.Error("IsNumeric(\"012345\") = false, want true")
	}
	if IsNumeric("12a45") {
		t.Error("IsNumeric(\"12a45\") = true, want false")
	}
	if IsNumeric("") {
		t.Error("IsNumeric(\"\") = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "date must be YYYY-MM-DD"},
	}
	if errs.Error() != "name: name is required; date: date must be YYYY-MM-DD" {
		t.Errorf("unexpected Error(): %q", errs.Error())
	}
	m := errs.ToMap()
	if m["name"] != "name is required" || m["date"] != "date must be YYYY-MM-DD" {
		t.Errorf("unexpected ToMap(): %v", m)
	}
}
