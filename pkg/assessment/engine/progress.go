package engine

import (
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

// NextAutoStatus returns the status an assignment should advance to given
// the current response set, or the current status when nothing changes.
//
// Transitions move forward only: not_started becomes in_progress once any
// in-scope question is answered, and in_progress becomes completed once
// every visible required in-scope question is answered. The reviewed status
// is only ever set by an explicit reviewer action, and a completed
// assignment never falls back when a previously answered question loses its
// response.
func NextAutoStatus(assignment types.Assignment, questions []types.Question, responses map[string]types.Response) string {
	switch assignment.Status {
	case types.ASSIGNMENT_STATUS_COMPLETED, types.ASSIGNMENT_STATUS_REVIEWED:
		return assignment.Status
	}

	scope := scopeQuestions(assignment, questions)
	if len(scope) == 0 {
		return assignment.Status
	}

	anyAnswered := false
	allRequiredAnswered := true
	for _, q := range scope {
		_, answered := responses[q.ID]
		if answered {
			anyAnswered = true
			continue
		}
		if q.Required && ShouldShow(q, responses) {
			allRequiredAnswered = false
		}
	}

	if anyAnswered && allRequiredAnswered {
		return types.ASSIGNMENT_STATUS_COMPLETED
	}
	if anyAnswered {
		return types.ASSIGNMENT_STATUS_IN_PROGRESS
	}
	return assignment.Status
}

// CanTransition reports whether an explicit status change request is
// allowed. Only forward transitions along
// not_started -> in_progress -> completed -> reviewed are valid.
func CanTransition(from string, to string) bool {
	order := map[string]int{
		types.ASSIGNMENT_STATUS_NOT_STARTED: 0,
		types.ASSIGNMENT_STATUS_IN_PROGRESS: 1,
		types.ASSIGNMENT_STATUS_COMPLETED:   2,
		types.ASSIGNMENT_STATUS_REVIEWED:    3,
	}
	fromRank, okFrom := order[from]
	toRank, okTo := order[to]
	if !okFrom || !okTo {
		return false
	}
	return toRank > fromRank
}

func scopeQuestions(assignment types.Assignment, questions []types.Question) []types.Question {
	scope := []types.Question{}
	for _, q := range questions {
		if assignment.InScope(q) {
			scope = append(scope, q)
		}
	}
	return scope
}
