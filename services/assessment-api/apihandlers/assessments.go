package apihandlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcsa-framework/rcsa-backend/pkg/apihelpers"
	"github.com/rcsa-framework/rcsa-backend/pkg/apihelpers/middlewares"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/exporter"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/questionbank"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/types"
	userDB "github.com/rcsa-framework/rcsa-backend/pkg/db/user"
)

func (h *HttpEndpoints) AddAssessmentAPI(rg *gin.RouterGroup) {
	assessmentsGroup := rg.Group("/assessments")
	assessmentsGroup.Use(middlewares.ManagementAuthMiddleware(h.tokenSignKey, h.allowedInstanceIDs))
	{
		assessmentsGroup.POST("", middlewares.RequirePayload(), h.createAssessment)
		assessmentsGroup.GET("", h.getAssessments)
		assessmentsGroup.GET("/:assessmentID", h.getAssessment)
		assessmentsGroup.PUT("/:assessmentID/department", middlewares.RequirePayload(), h.updateDepartmentInfo)
		assessmentsGroup.PUT("/:assessmentID/language", middlewares.RequirePayload(), h.updateLanguage)
		assessmentsGroup.DELETE("/:assessmentID", middlewares.RequireRole(userDB.USER_ROLE_COORDINATOR), h.deleteAssessment)

		assessmentsGroup.GET("/:assessmentID/questionnaire", h.getQuestionnaire)
		assessmentsGroup.POST("/:assessmentID/responses", middlewares.RequirePayload(), h.submitResponse)
		assessmentsGroup.GET("/:assessmentID/responses", h.getResponses)
		assessmentsGroup.DELETE("/:assessmentID/responses/:questionID", h.removeResponse)

		assessmentsGroup.GET("/:assessmentID/results", h.getResults)
		assessmentsGroup.GET("/:assessmentID/export", h.exportResponses)
	}
}

type NewAssessmentReq struct {
	Department types.DepartmentInfo `json:"department"`
	Language   string               `json:"language"`
}

func (h *HttpEndpoints) createAssessment(c *gin.Context) {
	token := getToken(c)

	var req NewAssessmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("createAssessment: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("createAssessment: starting assessment", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject))

	created, err := assessment.StartAssessment(token.InstanceID, req.Department, req.Language)
	if err != nil {
		slog.Error("createAssessment: error starting assessment", slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error starting assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessment": created})
}

func (h *HttpEndpoints) getAssessments(c *gin.Context) {
	token := getToken(c)

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		slog.Error("getAssessments: error parsing query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessments, paginationInfo, err := assessment.GetAssessmentsPaginated(token.InstanceID, query.Filter, query.Sort, query.Page, query.Limit)
	if err != nil {
		slog.Error("getAssessments: error retrieving assessments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting assessments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": assessments, "pagination": paginationInfo})
}

func (h *HttpEndpoints) getAssessment(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")

	item, err := assessment.GetAssessment(token.InstanceID, assessmentID)
	if err != nil {
		slog.Error("getAssessment: error retrieving assessment", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error getting assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessment": item})
}

func (h *HttpEndpoints) updateDepartmentInfo(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")

	var req types.DepartmentInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("updateDepartmentInfo: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := assessment.UpdateDepartmentInfo(token.InstanceID, assessmentID, req); err != nil {
		slog.Error("updateDepartmentInfo: error updating department info", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error updating department info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "department info updated"})
}

type UpdateLanguageReq struct {
	Language string `json:"language"`
}

func (h *HttpEndpoints) updateLanguage(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")

	var req UpdateLanguageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("updateLanguage: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := assessment.SetAssessmentLanguage(token.InstanceID, assessmentID, req.Language); err != nil {
		slog.Error("updateLanguage: error updating language", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error updating language"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "language updated"})
}

func (h *HttpEndpoints) deleteAssessment(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")

	slog.Info("deleteAssessment: deleting assessment", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("assessmentID", assessmentID))

	if err := assessment.DeleteAssessment(token.InstanceID, assessmentID); err != nil {
		slog.Error("deleteAssessment: error deleting assessment", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error deleting assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "assessment deleted"})
}

func (h *HttpEndpoints) getQuestionnaire(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")
	area := c.Query("area")

	questions, err := assessment.GetQuestionnaire(token.InstanceID, assessmentID, area)
	if err != nil {
		slog.Error("getQuestionnaire: error retrieving questionnaire", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error getting questionnaire"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

type SubmitResponseReq struct {
	QuestionID string              `json:"questionId"`
	Value      types.ResponseValue `json:"value"`
}

func (h *HttpEndpoints) submitResponse(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")

	var req SubmitResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("submitResponse: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := assessment.SubmitResponse(token.InstanceID, assessmentID, req.QuestionID, req.Value)
	if err != nil {
		slog.Error("submitResponse: error saving response", slog.String("assessmentID", assessmentID), slog.String("questionID", req.QuestionID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error saving response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": saved})
}

func (h *HttpEndpoints) getResponses(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")

	responses, err := assessment.GetResponses(token.InstanceID, assessmentID)
	if err != nil {
		slog.Error("getResponses: error retrieving responses", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error getting responses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"responses": responses})
}

func (h *HttpEndpoints) removeResponse(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")
	questionID := c.Param("questionID")

	if err := assessment.RemoveResponse(token.InstanceID, assessmentID, questionID); err != nil {
		slog.Error("removeResponse: error deleting response", slog.String("assessmentID", assessmentID), slog.String("questionID", questionID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error deleting response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "response deleted"})
}

func (h *HttpEndpoints) getResults(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")

	results, err := assessment.GetResults(token.InstanceID, assessmentID)
	if err != nil {
		slog.Error("getResults: error computing results", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error getting results"})
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *HttpEndpoints) exportResponses(c *gin.Context) {
	token := getToken(c)
	assessmentID := c.Param("assessmentID")
	format := c.DefaultQuery("format", exporter.FORMAT_CSV)

	item, err := assessment.GetAssessment(token.InstanceID, assessmentID)
	if err != nil {
		slog.Error("exportResponses: error retrieving assessment", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error getting assessment"})
		return
	}
	responses, err := assessment.GetResponses(token.InstanceID, assessmentID)
	if err != nil {
		slog.Error("exportResponses: error retrieving responses", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(statusForServiceError(err), gin.H{"error": "error getting responses"})
		return
	}

	if !exporter.IsSupportedFormat(format) {
		slog.Error("exportResponses: unsupported format requested", slog.String("format", format))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported export format"})
		return
	}

	contentType := "text/csv"
	if format == exporter.FORMAT_JSON {
		contentType = "application/json"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=responses_%s.%s", assessmentID, format))
	c.Header("Content-Type", contentType)

	re, err := exporter.NewResponseExporter(c.Writer, format, questionbank.Default(), localization.Default(), item.Language)
	if err != nil {
		slog.Error("exportResponses: error initializing exporter", slog.String("error", err.Error()))
		return
	}
	for _, r := range responses {
		if err := re.WriteResponse(r); err != nil {
			slog.Error("exportResponses: error writing response", slog.String("questionID", r.QuestionID), slog.String("error", err.Error()))
			return
		}
	}
	if err := re.Finish(); err != nil {
		slog.Error("exportResponses: error finishing export", slog.String("error", err.Error()))
	}
}
