package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcsa-framework/rcsa-backend/pkg/apihelpers/middlewares"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment"
	userDB "github.com/rcsa-framework/rcsa-backend/pkg/db/user"
)

func (h *HttpEndpoints) AddAssignmentAPI(rg *gin.RouterGroup) {
	assignmentsGroup := rg.Group("/")
	assignmentsGroup.Use(middlewares.ManagementAuthMiddleware(h.tokenSignKey, h.allowedInstanceIDs))
	{
		assignmentsGroup.POST("/assessments/:assessmentID/assignments",
			middlewares.RequireRole(userDB.USER_ROLE_COORDINATOR),
			middlewares.RequirePayload(),
			h.createAssignment)
		assignmentsGroup.GET("/assessments/:assessmentID/assignments", h.getAssignments)
		assignmentsGroup.GET("/assignments/:assignmentID", h.getAssignment)
		assignmentsGroup.PUT("/assignments/:assignmentID/status",
			middlewares.RequireRole(userDB.USER_ROLE_COORDINATOR, userDB.USER_ROLE_REVIEWER),
			middlewares.RequirePayload(),
			h.updateAssignmentStatus)
		assignmentsGroup.POST("/assignments/:assignmentID/notes", middlewares.RequirePayload(), h.addAssignmentNote)
	}
}

type NewAssignmentReq struct {
	Area        string   `json:"area"`
	AssigneeID  string   `json:"assigneeId"`
	QuestionIDs []string `json:"questionIds,omitempty"`
}

func (h *HttpEndpoints) createAssignment(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")

	var req NewAssignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("createAssignment: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("createAssignment: creating assignment", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("assessmentID", assessmentID), slog.String("assigneeID", req.AssigneeID))

	created, err := assessment.CreateAssignment(token.InstanceID, assessmentID, req.Area, req.AssigneeID, token.Subject, req.QuestionIDs)
	if err != nil {
		slog.Error("createAssignment: error creating assignment", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error creating assignment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": created})
}

func (h *HttpEndpoints) getAssignments(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")

	assignments, err := assessment.GetAssignments(token.InstanceID, assessmentID)
	if err != nil {
		slog.Error("getAssignments: error retrieving assignments", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error getting assignments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

func (h *HttpEndpoints) getAssignment(c *gin.Context) {
	token := getToken(c)
	assignmentID := c.Param("assignmentID")

	assignment, err := assessment.GetAssignment(token.InstanceID, assignmentID)
	if err != nil {
		slog.Error("getAssignment: error retrieving assignment", slog.String("assignmentID", assignmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error getting assignment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}

type UpdateAssignmentStatusReq struct {
	Status string `json:"status"`
}

func (h *HttpEndpoints) updateAssignmentStatus(c *gin.Context) {
	token := getToken(c)
	assignmentID := c.Param("assignmentID")

	var req UpdateAssignmentStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("updateAssignmentStatus: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("updateAssignmentStatus: updating status", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("assignmentID", assignmentID), slog.String("status", req.Status))

	updated, err := assessment.AdvanceAssignmentStatus(token.InstanceID, assignmentID, req.Status)
	if err != nil {
		slog.Error("updateAssignmentStatus: error updating status", slog.String("assignmentID", assignmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error updating assignment status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": updated})
}

type NewAssignmentNoteReq struct {
	Text string `json:"text"`
}

func (h *HttpEndpoints) addAssignmentNote(c *gin.Context) {
	token := getToken(c)
	assignmentID := c.Param("assignmentID")

	var req NewAssignmentNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("addAssignmentNote: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "note text missing"})
		return
	}

	if err := assessment.AddAssignmentNote(token.InstanceID, assignmentID, token.Subject, req.Text); err != nil {
		slog.Error("addAssignmentNote: error adding note", slog.String("assignmentID", assignmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error adding note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "note added"})
}
