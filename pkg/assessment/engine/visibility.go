package engine

import (
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

// ShouldShow decides whether a question is visible given the current
// response set. Questions without a dependency are always visible. A
// dependent question is hidden until its controlling question is answered;
// once answered, the controlling value is matched against the dependency
// values with set-intersection semantics: a multi value matches if any
// selected element is among the dependency values, a single value matches
// if it is among them.
func ShouldShow(question types.Question, responses map[string]types.Response) bool {
	if question.DependsOn == nil {
		return true
	}

	controlling, ok := responses[question.DependsOn.QuestionID]
	if !ok {
		return false
	}

	return controlling.Value.IntersectsAny(question.DependsOn.Values)
}

// VisibleQuestions filters the catalog down to the questions visible under
// the current response set, preserving catalog order.
func VisibleQuestions(questions []types.Question, responses map[string]types.Response) []types.Question {
	visible := []types.Question{}
	for _, q := range questions {
		if ShouldShow(q, responses) {
			visible = append(visible, q)
		}
	}
	return visible
}
