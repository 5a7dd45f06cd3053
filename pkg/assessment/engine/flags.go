package engine

import (
	"fmt"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

// IsFlagged reports whether the recorded answer of a question matches its
// configured flag trigger values. Questions without triggers never flag; an
// unanswered question is not flagged.
func IsFlagged(question types.Question, response types.Response, answered bool) bool {
	if len(question.FlagTriggerValues) == 0 {
		return false
	}
	if !answered {
		return false
	}
	return response.Value.IntersectsAny(question.FlagTriggerValues)
}

// EvaluateFlags collects the flag messages of all answered questions that
// triggered their flag condition, in catalog order. Messages are resolved
// through the catalog; questions without a custom flag message use the
// generic flag label.
func EvaluateFlags(questions []types.Question, responses map[string]types.Response, catalog *localization.Catalog, lang string) []string {
	flags := []string{}
	for _, q := range questions {
		response, answered := responses[q.ID]
		if !IsFlagged(q, response, answered) {
			continue
		}
		flags = append(flags, flagMessage(q, catalog, lang))
	}
	return flags
}

func flagMessage(question types.Question, catalog *localization.Catalog, lang string) string {
	if question.FlagMessageID != "" {
		return catalog.Resolve(lang, question.FlagMessageID)
	}
	return fmt.Sprintf(catalog.Resolve(lang, localization.KEY_GENERIC_FLAG), question.ID)
}
