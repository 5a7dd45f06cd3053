package assessment

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/engine"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
	"github.com/rcsa-framework/rcsa-backend/pkg/cache"
	assessmentDB "github.com/rcsa-framework/rcsa-backend/pkg/db/assessment"
	userDB "github.com/rcsa-framework/rcsa-backend/pkg/db/user"
	"github.com/rcsa-framework/rcsa-backend/pkg/notifications"
	"github.com/rcsa-framework/rcsa-backend/pkg/utils"
)

var (
	ErrUnsupportedLanguage  = errors.New("unsupported language")
	ErrUnknownQuestion      = errors.New("unknown question")
	ErrQuestionNotVisible   = errors.New("question is not visible")
	ErrInvalidResponseValue = errors.New("response value does not match question type")
	ErrUnknownOption        = errors.New("unknown option value")
	ErrUnknownArea          = errors.New("unknown assessment area")
	ErrAssigneeNotFound     = errors.New("assignee not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
)

var resultsCacheTTL = 5 * time.Minute

// SetResultsCacheTTL overrides how long computed results stay cached.
func SetResultsCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		resultsCacheTTL = ttl
	}
}

var (
	assessmentDBService *assessmentDB.AssessmentDBService
	userDBService       *userDB.UserDBService
	resultsCache        cache.ResultsCache
	notifier            *notifications.AssignmentNotifier
	questionBank        []types.Question
	catalog             *localization.Catalog
)

func Init(
	aDB *assessmentDB.AssessmentDBService,
	uDB *userDB.UserDBService,
	rCache cache.ResultsCache,
	n *notifications.AssignmentNotifier,
	questions []types.Question,
	cat *localization.Catalog,
) {
	assessmentDBService = aDB
	userDBService = uDB
	resultsCache = rCache
	if resultsCache == nil {
		resultsCache = cache.NewNoopResultsCache()
	}
	notifier = n
	questionBank = questions
	catalog = cat
	if notifier == nil {
		notifier = notifications.NewAssignmentNotifier(nil, cat)
	}
}

func StartAssessment(instanceID string, department types.DepartmentInfo, language string) (types.AssessmentInstance, error) {
	if !localization.IsSupportedLanguage(language) {
		return types.AssessmentInstance{}, ErrUnsupportedLanguage
	}

	assessment := types.AssessmentInstance{
		AssessmentID: uuid.NewString(),
		Department:   department,
		Language:     language,
	}
	created, err := assessmentDBService.CreateAssessment(instanceID, assessment)
	if err != nil {
		slog.Error("Error creating assessment", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
		return types.AssessmentInstance{}, err
	}
	slog.Info("Assessment started", slog.String("instanceID", instanceID), slog.String("assessmentID", created.AssessmentID))
	return created, nil
}

func GetAssessment(instanceID string, assessmentID string) (types.AssessmentInstance, error) {
	return assessmentDBService.GetAssessmentByID(instanceID, assessmentID)
}

func GetAssessments(instanceID string) ([]types.AssessmentInstance, error) {
	return assessmentDBService.GetAssessments(instanceID)
}

func GetAssessmentsPaginated(instanceID string, filter bson.M, sort bson.M, page int64, limit int64) ([]types.AssessmentInstance, *assessmentDB.PaginationInfos, error) {
	return assessmentDBService.GetAssessmentsPaginated(instanceID, filter, sort, page, limit)
}

func UpdateDepartmentInfo(instanceID string, assessmentID string, department types.DepartmentInfo) error {
	return assessmentDBService.UpdateDepartmentInfo(instanceID, assessmentID, department)
}

func SetAssessmentLanguage(instanceID string, assessmentID string, language string) error {
	if !localization.IsSupportedLanguage(language) {
		return ErrUnsupportedLanguage
	}
	if err := assessmentDBService.UpdateAssessmentLanguage(instanceID, assessmentID, language); err != nil {
		return err
	}
	// results hold localized flag messages
	invalidateResults(instanceID, assessmentID)
	return nil
}

func DeleteAssessment(instanceID string, assessmentID string) error {
	if err := assessmentDBService.DeleteAssessment(instanceID, assessmentID); err != nil {
		return err
	}
	invalidateResults(instanceID, assessmentID)
	return nil
}

// QuestionPayload is the localized view of one question as presented to
// the respondent.
type QuestionPayload struct {
	ID          string          `json:"id"`
	Area        string          `json:"area"`
	AreaName    string          `json:"areaName"`
	Type        string          `json:"type"`
	Prompt      string          `json:"prompt"`
	Options     []OptionPayload `json:"options,omitempty"`
	Required    bool            `json:"required"`
	Answered    bool            `json:"answered"`
	Unsupported bool            `json:"unsupported,omitempty"`
}

type OptionPayload struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GetQuestionnaire returns the currently visible questions of the
// assessment with all text resolved into the assessment's language.
// When area is not empty, only questions of that area are included.
// Questions of a type the client cannot render are kept in the list but
// marked unsupported.
func GetQuestionnaire(instanceID string, assessmentID string, area string) ([]QuestionPayload, error) {
	if area != "" && !isKnownArea(area) {
		return nil, ErrUnknownArea
	}
	assessment, err := assessmentDBService.GetAssessmentByID(instanceID, assessmentID)
	if err != nil {
		return nil, err
	}
	responses, err := assessmentDBService.GetResponseMap(instanceID, assessmentID)
	if err != nil {
		return nil, err
	}

	lang := assessment.Language
	visible := make([]QuestionPayload, 0, len(questionBank))
	for _, q := range questionBank {
		if area != "" && q.Area != area {
			continue
		}
		if !engine.ShouldShow(q, responses) {
			continue
		}
		payload := QuestionPayload{
			ID:          q.ID,
			Area:        q.Area,
			AreaName:    catalog.Resolve(lang, "areas."+q.Area+".name"),
			Type:        q.Type,
			Prompt:      catalog.Resolve(lang, q.PromptID),
			Required:    q.Required,
			Unsupported: !types.IsKnownQuestionType(q.Type),
		}
		if _, ok := responses[q.ID]; ok {
			payload.Answered = true
		}
		for _, opt := range q.Options {
			payload.Options = append(payload.Options, OptionPayload{
				Value: opt.Value,
				Label: catalog.Resolve(lang, opt.LabelID),
			})
		}
		visible = append(visible, payload)
	}
	return visible, nil
}

func questionByID(questionID string) (types.Question, bool) {
	for _, q := range questionBank {
		if q.ID == questionID {
			return q, true
		}
	}
	return types.Question{}, false
}

func isKnownArea(area string) bool {
	return utils.ContainsString(types.AssessmentAreas(), area)
}
