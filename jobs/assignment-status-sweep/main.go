package main

import (
	"log/slog"
	"time"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/engine"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/questionbank"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
)

// Reconciles assignment statuses with the stored responses. The API
// advances assignments on every submission already, this job catches
// assignments that were missed, e.g. when responses were imported or a
// status update failed.
func main() {
	slog.Info("Starting assignment status sweep job")
	start := time.Now()

	questions := questionbank.Default()

	for _, instanceID := range conf.InstanceIDs {
		slog.Debug("Start sweeping assignments for instance", slog.String("instanceID", instanceID))

		assignments, err := assessmentDBService.GetOpenAssignments(instanceID)
		if err != nil {
			slog.Error("Failed to get open assignments", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
			continue
		}

		responsesByAssessment := map[string]map[string]types.Response{}
		updated := 0
		for _, assignment := range assignments {
			responses, ok := responsesByAssessment[assignment.AssessmentID]
			if !ok {
				var err error
				responses, err = assessmentDBService.GetResponseMap(instanceID, assignment.AssessmentID)
				if err != nil {
					slog.Error("Failed to get responses", slog.String("error", err.Error()), slog.String("instanceID", instanceID), slog.String("assessmentID", assignment.AssessmentID))
					continue
				}
				responsesByAssessment[assignment.AssessmentID] = responses
			}

			next := engine.NextAutoStatus(assignment, questions, responses)
			if next == assignment.Status || !engine.CanTransition(assignment.Status, next) {
				continue
			}
			if err := assessmentDBService.UpdateAssignmentStatus(instanceID, assignment.AssignmentID, assignment.Status, next); err != nil {
				slog.Error("Failed to update assignment status", slog.String("error", err.Error()), slog.String("instanceID", instanceID), slog.String("assignmentID", assignment.AssignmentID))
				continue
			}
			updated += 1
			slog.Info("Assignment status updated", slog.String("instanceID", instanceID), slog.String("assignmentID", assignment.AssignmentID), slog.String("from", assignment.Status), slog.String("to", next))
		}

		slog.Info("Instance sweep finished", slog.String("instanceID", instanceID), slog.Int("openAssignments", len(assignments)), slog.Int("updated", updated), slog.Int("assessmentsTouched", len(responsesByAssessment)))
	}

	slog.Info("Assignment status sweep job completed", slog.String("duration", time.Since(start).String()))
}
