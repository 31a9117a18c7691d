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

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"pending", "processed", "failed"}
	if !IsInSlice("processed", slice) {
		t.Errorf("IsInSlice(%q) = false, want true", "processed")
	}
	if IsInSlice("draft", slice) {
		t.Errorf("IsInSlice(%q) = true, want false", "draft")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "period", Message: "must be in YYYY-MM format"},
		{Field: "reason", Message: "is required"},
	}
	if errs.Error() != "period: must be in YYYY-MM format; reason: is required" {
		t.Errorf("unexpected Error(): %q", errs.Error())
	}
	m := errs.ToMap()
	if m["period"] != "must be in YYYY-MM format" || m["reason"] != "is required" {
		t.Errorf("unexpected ToMap(): %v", m)
	}
}
