package assessment

import (
	"testing"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/questionbank"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

func TestValidateResponseValue(t *testing.T) {
	Init(nil, nil, nil, nil, questionbank.Default(), localization.Default())

	singleChoice, ok := questionByID("gov_1")
	if !ok {
		t.Fatal("question gov_1 missing from bank")
	}
	multiChoice, ok := questionByID("sec_1")
	if !ok {
		t.Fatal("question sec_1 missing from bank")
	}
	freeText, ok := questionByID("gov_3")
	if !ok {
		t.Fatal("question gov_3 missing from bank")
	}

	t.Run("single choice with valid option", func(t *testing.T) {
		if err := validateResponseValue(singleChoice, types.SingleValue("yes")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("single choice with unknown option", func(t *testing.T) {
		if err := validateResponseValue(singleChoice, types.SingleValue("maybe")); err != ErrUnknownOption {
			t.Errorf("expected ErrUnknownOption, got: %v", err)
		}
	})

	t.Run("single choice with multi value", func(t *testing.T) {
		if err := validateResponseValue(singleChoice, types.MultiValue("yes")); err != ErrInvalidResponseValue {
			t.Errorf("expected ErrInvalidResponseValue, got: %v", err)
		}
	})

	t.Run("multi choice with valid selection", func(t *testing.T) {
		if err := validateResponseValue(multiChoice, types.MultiValue("mfa", "encryption")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("multi choice with one unknown value", func(t *testing.T) {
		if err := validateResponseValue(multiChoice, types.MultiValue("mfa", "firewall")); err != ErrUnknownOption {
			t.Errorf("expected ErrUnknownOption, got: %v", err)
		}
	})

	t.Run("multi choice with single value", func(t *testing.T) {
		if err := validateResponseValue(multiChoice, types.SingleValue("mfa")); err != ErrInvalidResponseValue {
			t.Errorf("expected ErrInvalidResponseValue, got: %v", err)
		}
	})

	t.Run("free text accepts any text", func(t *testing.T) {
		if err := validateResponseValue(freeText, types.SingleValue("Director of Risk Management")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestIsKnownArea(t *testing.T) {
	Init(nil, nil, nil, nil, questionbank.Default(), localization.Default())

	for _, area := range types.AssessmentAreas() {
		if !isKnownArea(area) {
			t.Errorf("expected area to be known: %s", area)
		}
	}
	if isKnownArea("finance") {
		t.Error("expected area to be unknown: finance")
	}
}

func TestQuestionByID(t *testing.T) {
	Init(nil, nil, nil, nil, questionbank.Default(), localization.Default())

	if _, ok := questionByID("gov_1"); !ok {
		t.Error("expected to find question gov_1")
	}
	if _, ok := questionByID("ghost_9"); ok {
		t.Error("did not expect to find question ghost_9")
	}
}
