package questionbank

import (
	"fmt"
	"log/slog"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
	"github.com/rcsa-framework/rcsa-backend/pkg/utils"
)

// Default returns the built-in question catalog. The catalog is constructed
// at process start and never mutated afterwards.
func Default() []types.Question {
	return []types.Question{
		// Governance
		{
			ID:       "gov_1",
			Area:     types.AREA_GOVERNANCE,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.gov_1.prompt",
			Options: []types.QuestionOption{
				{Value: "yes", LabelID: "questions.gov_1.options.yes", MaturityWeight: 5},
				{Value: "partial", LabelID: "questions.gov_1.options.partial", MaturityWeight: 3},
				{Value: "no", LabelID: "questions.gov_1.options.no", MaturityWeight: 1},
			},
			Required:          true,
			FlagTriggerValues: []string{"no"},
			FlagMessageID:     "flags.gov_1",
		},
		{
			ID:       "gov_2",
			Area:     types.AREA_GOVERNANCE,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.gov_2.prompt",
			Options: []types.QuestionOption{
				{Value: "annually", LabelID: "questions.gov_2.options.annually", MaturityWeight: 5},
				{Value: "biennially", LabelID: "questions.gov_2.options.biennially", MaturityWeight: 3},
				{Value: "never", LabelID: "questions.gov_2.options.never", MaturityWeight: 1},
			},
			Required:          true,
			FlagTriggerValues: []string{"never"},
			FlagMessageID:     "flags.gov_2",
			DependsOn: &types.Dependency{
				QuestionID: "gov_1",
				Values:     []string{"yes", "partial"},
			},
		},
		{
			ID:       "gov_3",
			Area:     types.AREA_GOVERNANCE,
			Type:     types.QUESTION_TYPE_FREE_TEXT,
			PromptID: "questions.gov_3.prompt",
			Required: true,
		},

		// Procurement
		{
			ID:       "proc_1",
			Area:     types.AREA_PROCUREMENT,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.proc_1.prompt",
			Options: []types.QuestionOption{
				{Value: "ad_hoc", LabelID: "questions.proc_1.options.ad_hoc", MaturityWeight: 1},
				{Value: "defined", LabelID: "questions.proc_1.options.defined", MaturityWeight: 3},
				{Value: "measured", LabelID: "questions.proc_1.options.measured", MaturityWeight: 5},
			},
			Required:          true,
			FlagTriggerValues: []string{"ad_hoc"},
			FlagMessageID:     "flags.proc_1",
		},
		{
			ID:       "proc_2",
			Area:     types.AREA_PROCUREMENT,
			Type:     types.QUESTION_TYPE_MULTI_CHOICE,
			PromptID: "questions.proc_2.prompt",
			Options: []types.QuestionOption{
				{Value: "pre_approval", LabelID: "questions.proc_2.options.pre_approval"},
				{Value: "threshold_review", LabelID: "questions.proc_2.options.threshold_review"},
				{Value: "audit_trail", LabelID: "questions.proc_2.options.audit_trail"},
				{Value: "none", LabelID: "questions.proc_2.options.none"},
			},
			Required:          true,
			FlagTriggerValues: []string{"none"},
			// no custom flag message, the generic one is used
		},
		{
			ID:       "proc_3",
			Area:     types.AREA_PROCUREMENT,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.proc_3.prompt",
			Options: []types.QuestionOption{
				{Value: "always", LabelID: "questions.proc_3.options.always", MaturityWeight: 5},
				{Value: "sometimes", LabelID: "questions.proc_3.options.sometimes", MaturityWeight: 3},
				{Value: "no", LabelID: "questions.proc_3.options.no", MaturityWeight: 1},
			},
			Required:          true,
			FlagTriggerValues: []string{"no"},
			FlagMessageID:     "flags.proc_3",
		},

		// Security
		{
			ID:       "sec_1",
			Area:     types.AREA_SECURITY,
			Type:     types.QUESTION_TYPE_MULTI_CHOICE,
			PromptID: "questions.sec_1.prompt",
			Options: []types.QuestionOption{
				{Value: "mfa", LabelID: "questions.sec_1.options.mfa"},
				{Value: "encryption", LabelID: "questions.sec_1.options.encryption"},
				{Value: "monitoring", LabelID: "questions.sec_1.options.monitoring"},
				{Value: "none", LabelID: "questions.sec_1.options.none"},
			},
			Required:          true,
			FlagTriggerValues: []string{"none"},
			FlagMessageID:     "flags.sec_1",
		},
		{
			ID:       "sec_2",
			Area:     types.AREA_SECURITY,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.sec_2.prompt",
			Options: []types.QuestionOption{
				{Value: "tested_annually", LabelID: "questions.sec_2.options.tested_annually", MaturityWeight: 5},
				{Value: "untested", LabelID: "questions.sec_2.options.untested", MaturityWeight: 2},
				{Value: "none", LabelID: "questions.sec_2.options.none", MaturityWeight: 1},
			},
			Required:          true,
			FlagTriggerValues: []string{"none"},
			FlagMessageID:     "flags.sec_2",
		},
		{
			ID:       "sec_3",
			Area:     types.AREA_SECURITY,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.sec_3.prompt",
			Options: []types.QuestionOption{
				{Value: "yes", LabelID: "questions.sec_3.options.yes", MaturityWeight: 5},
				{Value: "partially", LabelID: "questions.sec_3.options.partially", MaturityWeight: 3},
				{Value: "no", LabelID: "questions.sec_3.options.no", MaturityWeight: 1},
			},
			Required:          true,
			FlagTriggerValues: []string{"no"},
			FlagMessageID:     "flags.sec_3",
			DependsOn: &types.Dependency{
				QuestionID: "sec_1",
				Values:     []string{"mfa"},
			},
		},
		{
			ID:       "sec_4",
			Area:     types.AREA_SECURITY,
			Type:     types.QUESTION_TYPE_LONG_TEXT,
			PromptID: "questions.sec_4.prompt",
		},

		// Data management
		{
			ID:       "data_1",
			Area:     types.AREA_DATA,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.data_1.prompt",
			Options: []types.QuestionOption{
				{Value: "yes", LabelID: "questions.data_1.options.yes", MaturityWeight: 5},
				{Value: "partial", LabelID: "questions.data_1.options.partial", MaturityWeight: 3},
				{Value: "no", LabelID: "questions.data_1.options.no", MaturityWeight: 1},
			},
			Required:          true,
			FlagTriggerValues: []string{"no"},
			FlagMessageID:     "flags.data_1",
		},
		{
			ID:       "data_2",
			Area:     types.AREA_DATA,
			Type:     types.QUESTION_TYPE_MULTI_CHOICE,
			PromptID: "questions.data_2.prompt",
			Options: []types.QuestionOption{
				{Value: "approved_cloud", LabelID: "questions.data_2.options.approved_cloud"},
				{Value: "onprem", LabelID: "questions.data_2.options.onprem"},
				{Value: "personal_devices", LabelID: "questions.data_2.options.personal_devices"},
				{Value: "unknown", LabelID: "questions.data_2.options.unknown"},
			},
			Required:          true,
			FlagTriggerValues: []string{"personal_devices", "unknown"},
			// generic flag message
			DependsOn: &types.Dependency{
				QuestionID: "data_1",
				Values:     []string{"yes", "partial"},
			},
		},
		{
			ID:       "data_3",
			Area:     types.AREA_DATA,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.data_3.prompt",
			Options: []types.QuestionOption{
				{Value: "always", LabelID: "questions.data_3.options.always", MaturityWeight: 5},
				{Value: "sometimes", LabelID: "questions.data_3.options.sometimes", MaturityWeight: 3},
				{Value: "never", LabelID: "questions.data_3.options.never", MaturityWeight: 1},
			},
			Required:          true,
			FlagTriggerValues: []string{"never"},
			FlagMessageID:     "flags.data_3",
		},

		// Privacy
		{
			ID:       "priv_1",
			Area:     types.AREA_PRIVACY,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.priv_1.prompt",
			Options: []types.QuestionOption{
				{Value: "always", LabelID: "questions.priv_1.options.always", MaturityWeight: 5},
				{Value: "sometimes", LabelID: "questions.priv_1.options.sometimes", MaturityWeight: 3},
				{Value: "never", LabelID: "questions.priv_1.options.never", MaturityWeight: 1},
			},
			Required:          true,
			FlagTriggerValues: []string{"never"},
			FlagMessageID:     "flags.priv_1",
		},
		{
			ID:       "priv_2",
			Area:     types.AREA_PRIVACY,
			Type:     types.QUESTION_TYPE_SINGLE_CHOICE,
			PromptID: "questions.priv_2.prompt",
			Options: []types.QuestionOption{
				{Value: "yes", LabelID: "questions.priv_2.options.yes", MaturityWeight: 5},
				{Value: "partial", LabelID: "questions.priv_2.options.partial", MaturityWeight: 3},
				{Value: "no", LabelID: "questions.priv_2.options.no", MaturityWeight: 1},
			},
			Required:          true,
			FlagTriggerValues: []string{"no"},
			FlagMessageID:     "flags.priv_2",
		},
		{
			ID:       "priv_3",
			Area:     types.AREA_PRIVACY,
			Type:     types.QUESTION_TYPE_FREE_TEXT,
			PromptID: "questions.priv_3.prompt",
		},
	}
}

// Validate checks the structural integrity of a question catalog. Unknown
// question types are only logged, consumers must handle them without
// failing.
func Validate(questions []types.Question) error {
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if !utils.IsURLSafe(q.ID) {
			return fmt.Errorf("question ID is not URL safe: %s", q.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question ID: %s", q.ID)
		}
		seen[q.ID] = true

		if !utils.ContainsString(types.AssessmentAreas(), q.Area) {
			return fmt.Errorf("question %s references unknown area: %s", q.ID, q.Area)
		}

		if !types.IsKnownQuestionType(q.Type) {
			slog.Warn("question has unknown type", slog.String("questionID", q.ID), slog.String("type", q.Type))
		}

		optionValues := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if optionValues[opt.Value] {
				return fmt.Errorf("question %s has duplicate option value: %s", q.ID, opt.Value)
			}
			optionValues[opt.Value] = true
			if opt.MaturityWeight < 0 || opt.MaturityWeight > 5 {
				return fmt.Errorf("question %s option %s has maturity weight out of range: %d", q.ID, opt.Value, opt.MaturityWeight)
			}
		}

		if len(q.Options) > 0 {
			for _, trigger := range q.FlagTriggerValues {
				if !optionValues[trigger] {
					return fmt.Errorf("question %s flag trigger does not match any option: %s", q.ID, trigger)
				}
			}
		}
	}

	for _, q := range questions {
		if q.DependsOn == nil {
			continue
		}
		if !seen[q.DependsOn.QuestionID] {
			return fmt.Errorf("question %s depends on unknown question: %s", q.ID, q.DependsOn.QuestionID)
		}
		if q.DependsOn.QuestionID == q.ID {
			return fmt.Errorf("question %s depends on itself", q.ID)
		}
	}
	return nil
}
