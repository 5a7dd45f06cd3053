package questionbank

import (
	"testing"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

func TestDefaultBankIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("default question bank is invalid: %s", err.Error())
	}
}

func TestDefaultBankTextResolves(t *testing.T) {
	catalog := localization.Default()

	for _, q := range Default() {
		for _, lang := range []string{localization.LANG_EN, localization.LANG_FR} {
			if !catalog.Has(lang, q.PromptID) {
				t.Errorf("question %s prompt has no %s translation", q.ID, lang)
			}
			for _, opt := range q.Options {
				if !catalog.Has(lang, opt.LabelID) {
					t.Errorf("question %s option %s has no %s translation", q.ID, opt.Value, lang)
				}
			}
			if q.FlagMessageID != "" && !catalog.Has(lang, q.FlagMessageID) {
				t.Errorf("question %s flag message has no %s translation", q.ID, lang)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	t.Run("duplicate question ID", func(t *testing.T) {
		questions := []types.Question{
			{ID: "q1", Area: types.AREA_DATA, Type: types.QUESTION_TYPE_FREE_TEXT},
			{ID: "q1", Area: types.AREA_DATA, Type: types.QUESTION_TYPE_FREE_TEXT},
		}
		if err := Validate(questions); err == nil {
			t.Error("expected error for duplicate IDs")
		}
	})

	t.Run("unknown dependency target", func(t *testing.T) {
		questions := []types.Question{
			{ID: "q1", Area: types.AREA_DATA, Type: types.QUESTION_TYPE_FREE_TEXT,
				DependsOn: &types.Dependency{QuestionID: "missing", Values: []string{"x"}}},
		}
		if err := Validate(questions); err == nil {
			t.Error("expected error for unknown dependency target")
		}
	})

	t.Run("flag trigger without matching option", func(t *testing.T) {
		questions := []types.Question{
			{ID: "q1", Area: types.AREA_DATA, Type: types.QUESTION_TYPE_SINGLE_CHOICE,
				Options:           []types.QuestionOption{{Value: "yes"}},
				FlagTriggerValues: []string{"nope"}},
		}
		if err := Validate(questions); err == nil {
			t.Error("expected error for dangling flag trigger")
		}
	})

	t.Run("unknown question type is tolerated", func(t *testing.T) {
		questions := []types.Question{
			{ID: "q1", Area: types.AREA_DATA, Type: "matrix"},
		}
		if err := Validate(questions); err != nil {
			t.Errorf("unknown type must not fail validation: %s", err.Error())
		}
	})
}
