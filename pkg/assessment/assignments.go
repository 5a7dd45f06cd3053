package assessment

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/engine"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

// CreateAssignment hands the questions of one area (or a subset of them)
// to a user. The assignee must exist, an unknown assignee fails the call.
func CreateAssignment(instanceID string, assessmentID string, area string, assigneeID string, assignedBy string, questionIDs []string) (types.Assignment, error) {
	assessment, err := assessmentDBService.GetAssessmentByID(instanceID, assessmentID)
	if err != nil {
		return types.Assignment{}, err
	}
	if !isKnownArea(area) {
		return types.Assignment{}, ErrUnknownArea
	}

	assignee, err := userDBService.GetUserByID(instanceID, assigneeID)
	if err != nil {
		slog.Warn("assignment target not found", slog.String("instanceID", instanceID), slog.String("assigneeID", assigneeID))
		return types.Assignment{}, ErrAssigneeNotFound
	}

	for _, questionID := range questionIDs {
		q, ok := questionByID(questionID)
		if !ok {
			return types.Assignment{}, ErrUnknownQuestion
		}
		if q.Area != area {
			return types.Assignment{}, ErrUnknownQuestion
		}
	}

	assignment := types.Assignment{
		AssignmentID: uuid.NewString(),
		AssessmentID: assessmentID,
		Area:         area,
		Assignee:     assigneeID,
		AssignedBy:   assignedBy,
		Status:       types.ASSIGNMENT_STATUS_NOT_STARTED,
		QuestionIDs:  questionIDs,
	}
	created, err := assessmentDBService.CreateAssignment(instanceID, assignment)
	if err != nil {
		slog.Error("Error creating assignment", slog.String("instanceID", instanceID), slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		return types.Assignment{}, err
	}

	lang := assessment.Language
	if assignee.Language != "" {
		lang = assignee.Language
	}
	notifier.NotifyAssignmentCreated(lang, assignee.Email, assignee.Name, catalog.Resolve(lang, "areas."+area+".name"))

	slog.Info("Assignment created", slog.String("instanceID", instanceID), slog.String("assessmentID", assessmentID), slog.String("assignmentID", created.AssignmentID), slog.String("assignee", assigneeID))
	return created, nil
}

func GetAssignment(instanceID string, assignmentID string) (types.Assignment, error) {
	return assessmentDBService.GetAssignmentByID(instanceID, assignmentID)
}

func GetAssignments(instanceID string, assessmentID string) ([]types.Assignment, error) {
	return assessmentDBService.GetAssignments(instanceID, assessmentID)
}

// AdvanceAssignmentStatus applies a manual status change, e.g. marking a
// completed assignment as reviewed. Backward transitions are rejected.
func AdvanceAssignmentStatus(instanceID string, assignmentID string, newStatus string) (types.Assignment, error) {
	assignment, err := assessmentDBService.GetAssignmentByID(instanceID, assignmentID)
	if err != nil {
		return types.Assignment{}, err
	}
	if !engine.CanTransition(assignment.Status, newStatus) {
		return types.Assignment{}, ErrInvalidTransition
	}
	if err := assessmentDBService.UpdateAssignmentStatus(instanceID, assignmentID, assignment.Status, newStatus); err != nil {
		return types.Assignment{}, err
	}
	return assessmentDBService.GetAssignmentByID(instanceID, assignmentID)
}

func AddAssignmentNote(instanceID string, assignmentID string, author string, text string) error {
	return assessmentDBService.AddAssignmentNote(instanceID, assignmentID, types.AssignmentNote{
		Author: author,
		Text:   text,
	})
}

// advanceAssignmentsForQuestion moves assignments covering the answered
// question forward when their derived status changed. Failures are logged
// only, the response submission has already succeeded.
func advanceAssignmentsForQuestion(instanceID string, assessmentID string, questionID string, responses map[string]types.Response) {
	question, ok := questionByID(questionID)
	if !ok {
		return
	}

	assignments, err := assessmentDBService.GetAssignments(instanceID, assessmentID)
	if err != nil {
		slog.Error("Error loading assignments for auto transition", slog.String("instanceID", instanceID), slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		return
	}

	for _, assignment := range assignments {
		if !assignment.InScope(question) {
			continue
		}
		next := engine.NextAutoStatus(assignment, questionBank, responses)
		if next == assignment.Status || !engine.CanTransition(assignment.Status, next) {
			continue
		}
		if err := assessmentDBService.UpdateAssignmentStatus(instanceID, assignment.AssignmentID, assignment.Status, next); err != nil {
			slog.Error("Error auto advancing assignment", slog.String("instanceID", instanceID), slog.String("assignmentID", assignment.AssignmentID), slog.String("error", err.Error()))
			continue
		}
		slog.Debug("Assignment status advanced", slog.String("assignmentID", assignment.AssignmentID), slog.String("from", assignment.Status), slog.String("to", next))
	}
}
