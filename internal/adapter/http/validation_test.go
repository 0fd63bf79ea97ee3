package http

import (
	"errors"
	"testing"
)

func TestMaterialTypeValidation(t *testing.T) {
	type P struct {
		Type string `validate:"materialtype"`
	}
	cv := NewValidator()

	for _, s := range []string{"consumable", "equipment"} {
		if err := cv.Validate(P{Type: s}); err != nil {
			t.Fatalf("expected valid materialtype %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{"", "Consumable", "EQUIPMENT", "tool", "consumables"} {
		err := cv.Validate(P{Type: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Type", "consumable or equipment") {
			t.Fatalf("expected materialtype message for %q, got: %+v", s, fe)
		}
	}
}

func TestDateValidation(t *testing.T) {
	type P struct {
		Expiration string `validate:"required,datetime=2006-01-02"`
	}
	cv := NewValidator()

	for _, s := range []string{"2026-01-31", "2024-02-29"} {
		if err := cv.Validate(P{Expiration: s}); err != nil {
			t.Fatalf("expected valid date %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{"31-01-2026", "2026/01/31", "2026-13-01", "not-a-date"} {
		err := cv.Validate(P{Expiration: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Expiration", "2006-01-02") {
			t.Fatalf("expected datetime message for %q, got: %+v", s, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string `validate:"required"`
		Min  int    `validate:"gte=10"`
		Max  int    `validate:"lte=5"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name: "", // required
		Min:  9,  // gte=10
		Max:  6,  // lte=5
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	// required
	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	// gte
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	// lte
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
