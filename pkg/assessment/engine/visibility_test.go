package engine

import (
	"testing"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

func TestShouldShow(t *testing.T) {
	q := types.Question{
		ID:   "q2",
		Area: types.AREA_SECURITY,
		Type: types.QUESTION_TYPE_SINGLE_CHOICE,
		DependsOn: &types.Dependency{
			QuestionID: "q1",
			Values:     []string{"a", "b"},
		},
	}

	t.Run("without dependency always visible", func(t *testing.T) {
		independent := types.Question{ID: "q1", Type: types.QUESTION_TYPE_SINGLE_CHOICE}
		if !ShouldShow(independent, map[string]types.Response{}) {
			t.Error("question without dependency should be visible")
		}
	})

	t.Run("controlling question unanswered", func(t *testing.T) {
		if ShouldShow(q, map[string]types.Response{}) {
			t.Error("question should be hidden while controlling question is unanswered")
		}
	})

	t.Run("single value member of trigger set", func(t *testing.T) {
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("b")},
		}
		if !ShouldShow(q, responses) {
			t.Error("expected visible for value in trigger set")
		}
	})

	t.Run("single value not in trigger set", func(t *testing.T) {
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("c")},
		}
		if ShouldShow(q, responses) {
			t.Error("expected hidden for value outside trigger set")
		}
	})

	t.Run("multi value intersecting trigger set", func(t *testing.T) {
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.MultiValue("x", "a")},
		}
		if !ShouldShow(q, responses) {
			t.Error("expected visible for intersecting selection")
		}
	})

	t.Run("multi value disjoint from trigger set", func(t *testing.T) {
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.MultiValue("x", "y")},
		}
		if ShouldShow(q, responses) {
			t.Error("expected hidden for disjoint selection")
		}
	})

	t.Run("multi value against single trigger value", func(t *testing.T) {
		dependent := types.Question{
			ID: "q3",
			DependsOn: &types.Dependency{
				QuestionID: "q1",
				Values:     []string{"mfa"},
			},
		}
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.MultiValue("mfa", "encryption")},
		}
		if !ShouldShow(dependent, responses) {
			t.Error("expected visible when trigger value is member of selection")
		}
	})
}

func TestVisibleQuestions(t *testing.T) {
	questions := []types.Question{
		{ID: "q1", Area: types.AREA_DATA, Type: types.QUESTION_TYPE_SINGLE_CHOICE},
		{ID: "q2", Area: types.AREA_DATA, DependsOn: &types.Dependency{QuestionID: "q1", Values: []string{"yes"}}},
	}

	t.Run("dependent hidden without controlling answer", func(t *testing.T) {
		visible := VisibleQuestions(questions, map[string]types.Response{})
		if len(visible) != 1 || visible[0].ID != "q1" {
			t.Errorf("unexpected visible questions: %v", visible)
		}
	})

	t.Run("dependent shown after controlling answer", func(t *testing.T) {
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("yes")},
		}
		visible := VisibleQuestions(questions, responses)
		if len(visible) != 2 {
			t.Errorf("unexpected visible questions: %v", visible)
		}
	})
}
