package engine

import (
	"testing"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

func testCatalog() *localization.Catalog {
	return localization.NewCatalog(map[string]map[string]string{
		localization.LANG_EN: {
			localization.KEY_GENERIC_FLAG: "A risk condition was flagged for question %s",
			"flags.custom":                "Custom warning",
		},
		localization.LANG_FR: {
			localization.KEY_GENERIC_FLAG: "Une condition de risque a été signalée pour la question %s",
			"flags.custom":                "Avertissement personnalisé",
		},
	})
}

func TestIsFlagged(t *testing.T) {
	question := types.Question{
		ID:                "sec_1",
		Type:              types.QUESTION_TYPE_MULTI_CHOICE,
		FlagTriggerValues: []string{"none"},
	}

	t.Run("question without triggers never flags", func(t *testing.T) {
		q := types.Question{ID: "q", Type: types.QUESTION_TYPE_SINGLE_CHOICE}
		r := types.Response{QuestionID: "q", Value: types.SingleValue("anything")}
		if IsFlagged(q, r, true) {
			t.Error("question without trigger values must not flag")
		}
	})

	t.Run("unanswered question is not flagged", func(t *testing.T) {
		if IsFlagged(question, types.Response{}, false) {
			t.Error("unanswered question must not flag")
		}
	})

	t.Run("disjoint selection does not flag", func(t *testing.T) {
		r := types.Response{QuestionID: "sec_1", Value: types.MultiValue("mfa", "encryption")}
		if IsFlagged(question, r, true) {
			t.Error("selection without trigger member must not flag")
		}
	})

	t.Run("intersecting selection flags", func(t *testing.T) {
		r := types.Response{QuestionID: "sec_1", Value: types.MultiValue("none")}
		if !IsFlagged(question, r, true) {
			t.Error("selection containing trigger value must flag")
		}
	})

	t.Run("single value member of trigger set flags", func(t *testing.T) {
		q := types.Question{ID: "q", Type: types.QUESTION_TYPE_SINGLE_CHOICE, FlagTriggerValues: []string{"no", "never"}}
		r := types.Response{QuestionID: "q", Value: types.SingleValue("never")}
		if !IsFlagged(q, r, true) {
			t.Error("single value in trigger set must flag")
		}
	})
}

func TestEvaluateFlags(t *testing.T) {
	catalog := testCatalog()
	questions := []types.Question{
		{ID: "q1", Type: types.QUESTION_TYPE_SINGLE_CHOICE, FlagTriggerValues: []string{"no"}, FlagMessageID: "flags.custom"},
		{ID: "q2", Type: types.QUESTION_TYPE_MULTI_CHOICE, FlagTriggerValues: []string{"none"}},
	}

	t.Run("custom and generic messages", func(t *testing.T) {
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("no")},
			"q2": {QuestionID: "q2", Value: types.MultiValue("none")},
		}
		flags := EvaluateFlags(questions, responses, catalog, localization.LANG_EN)
		if len(flags) != 2 {
			t.Fatalf("expected 2 flags, got %d", len(flags))
		}
		if flags[0] != "Custom warning" {
			t.Errorf("unexpected custom message: %s", flags[0])
		}
		if flags[1] != "A risk condition was flagged for question q2" {
			t.Errorf("unexpected generic message: %s", flags[1])
		}
	})

	t.Run("language selects translation", func(t *testing.T) {
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("no")},
		}
		flags := EvaluateFlags(questions, responses, catalog, localization.LANG_FR)
		if len(flags) != 1 || flags[0] != "Avertissement personnalisé" {
			t.Errorf("unexpected flags: %v", flags)
		}
	})

	t.Run("missing message key falls back to the key", func(t *testing.T) {
		withMissingKey := []types.Question{
			{ID: "q3", Type: types.QUESTION_TYPE_SINGLE_CHOICE, FlagTriggerValues: []string{"no"}, FlagMessageID: "flags.not_configured"},
		}
		responses := map[string]types.Response{
			"q3": {QuestionID: "q3", Value: types.SingleValue("no")},
		}
		flags := EvaluateFlags(withMissingKey, responses, catalog, localization.LANG_EN)
		if len(flags) != 1 || flags[0] != "flags.not_configured" {
			t.Errorf("expected raw key fallback, got %v", flags)
		}
	})

	t.Run("adding and removing a flagged response is monotonic", func(t *testing.T) {
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("no")},
		}
		before := len(EvaluateFlags(questions, responses, catalog, localization.LANG_EN))

		responses["q2"] = types.Response{QuestionID: "q2", Value: types.MultiValue("none")}
		after := len(EvaluateFlags(questions, responses, catalog, localization.LANG_EN))
		if after != before+1 {
			t.Errorf("expected flag count to grow by one, before %d after %d", before, after)
		}

		delete(responses, "q2")
		removed := len(EvaluateFlags(questions, responses, catalog, localization.LANG_EN))
		if removed != before {
			t.Errorf("expected flag count to return to %d, got %d", before, removed)
		}
	})
}
