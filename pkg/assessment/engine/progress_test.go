package engine

import (
	"testing"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

func TestNextAutoStatus(t *testing.T) {
	questions := []types.Question{
		{ID: "q1", Area: types.AREA_SECURITY, Type: types.QUESTION_TYPE_SINGLE_CHOICE, Required: true},
		{ID: "q2", Area: types.AREA_SECURITY, Type: types.QUESTION_TYPE_SINGLE_CHOICE, Required: true},
		{ID: "q3", Area: types.AREA_SECURITY, Type: types.QUESTION_TYPE_SINGLE_CHOICE, Required: true},
	}
	assignment := types.Assignment{
		AssignmentID: "a1",
		Area:         types.AREA_SECURITY,
		Status:       types.ASSIGNMENT_STATUS_NOT_STARTED,
	}

	t.Run("no responses keeps not_started", func(t *testing.T) {
		status := NextAutoStatus(assignment, questions, map[string]types.Response{})
		if status != types.ASSIGNMENT_STATUS_NOT_STARTED {
			t.Errorf("unexpected status: %s", status)
		}
	})

	t.Run("first response moves to in_progress", func(t *testing.T) {
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("yes")},
		}
		status := NextAutoStatus(assignment, questions, responses)
		if status != types.ASSIGNMENT_STATUS_IN_PROGRESS {
			t.Errorf("unexpected status: %s", status)
		}
	})

	t.Run("all responses move to completed", func(t *testing.T) {
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("yes")},
			"q2": {QuestionID: "q2", Value: types.SingleValue("yes")},
			"q3": {QuestionID: "q3", Value: types.SingleValue("yes")},
		}
		status := NextAutoStatus(assignment, questions, responses)
		if status != types.ASSIGNMENT_STATUS_COMPLETED {
			t.Errorf("unexpected status: %s", status)
		}
	})

	t.Run("hidden required question does not block completion", func(t *testing.T) {
		withDependent := append(questions, types.Question{
			ID: "q4", Area: types.AREA_SECURITY, Type: types.QUESTION_TYPE_SINGLE_CHOICE, Required: true,
			DependsOn: &types.Dependency{QuestionID: "q1", Values: []string{"no"}},
		})
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("yes")},
			"q2": {QuestionID: "q2", Value: types.SingleValue("yes")},
			"q3": {QuestionID: "q3", Value: types.SingleValue("yes")},
		}
		status := NextAutoStatus(assignment, withDependent, responses)
		if status != types.ASSIGNMENT_STATUS_COMPLETED {
			t.Errorf("unexpected status: %s", status)
		}
	})

	t.Run("unanswered optional question does not block completion", func(t *testing.T) {
		withOptional := append(questions, types.Question{
			ID: "q5", Area: types.AREA_SECURITY, Type: types.QUESTION_TYPE_LONG_TEXT,
		})
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("yes")},
			"q2": {QuestionID: "q2", Value: types.SingleValue("yes")},
			"q3": {QuestionID: "q3", Value: types.SingleValue("yes")},
		}
		status := NextAutoStatus(assignment, withOptional, responses)
		if status != types.ASSIGNMENT_STATUS_COMPLETED {
			t.Errorf("unexpected status: %s", status)
		}
	})

	t.Run("question subset restricts the scope", func(t *testing.T) {
		scoped := assignment
		scoped.QuestionIDs = []string{"q1"}
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("yes")},
		}
		status := NextAutoStatus(scoped, questions, responses)
		if status != types.ASSIGNMENT_STATUS_COMPLETED {
			t.Errorf("unexpected status: %s", status)
		}
	})

	t.Run("reviewed is never reached automatically", func(t *testing.T) {
		completed := assignment
		completed.Status = types.ASSIGNMENT_STATUS_COMPLETED
		responses := map[string]types.Response{
			"q1": {QuestionID: "q1", Value: types.SingleValue("yes")},
			"q2": {QuestionID: "q2", Value: types.SingleValue("yes")},
			"q3": {QuestionID: "q3", Value: types.SingleValue("yes")},
		}
		status := NextAutoStatus(completed, questions, responses)
		if status != types.ASSIGNMENT_STATUS_COMPLETED {
			t.Errorf("completed assignment must stay completed, got %s", status)
		}
	})

	t.Run("completed never moves backwards", func(t *testing.T) {
		completed := assignment
		completed.Status = types.ASSIGNMENT_STATUS_COMPLETED
		status := NextAutoStatus(completed, questions, map[string]types.Response{})
		if status != types.ASSIGNMENT_STATUS_COMPLETED {
			t.Errorf("completed assignment must not fall back, got %s", status)
		}
	})
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{types.ASSIGNMENT_STATUS_NOT_STARTED, types.ASSIGNMENT_STATUS_IN_PROGRESS, true},
		{types.ASSIGNMENT_STATUS_IN_PROGRESS, types.ASSIGNMENT_STATUS_COMPLETED, true},
		{types.ASSIGNMENT_STATUS_COMPLETED, types.ASSIGNMENT_STATUS_REVIEWED, true},
		{types.ASSIGNMENT_STATUS_NOT_STARTED, types.ASSIGNMENT_STATUS_REVIEWED, true},
		{types.ASSIGNMENT_STATUS_REVIEWED, types.ASSIGNMENT_STATUS_COMPLETED, false},
		{types.ASSIGNMENT_STATUS_COMPLETED, types.ASSIGNMENT_STATUS_IN_PROGRESS, false},
		{types.ASSIGNMENT_STATUS_IN_PROGRESS, types.ASSIGNMENT_STATUS_IN_PROGRESS, false},
		{"unknown", types.ASSIGNMENT_STATUS_REVIEWED, false},
		{types.ASSIGNMENT_STATUS_COMPLETED, "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.expected {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}
