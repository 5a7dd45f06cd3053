package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment"
	jwthandling "github.com/rcsa-framework/rcsa-backend/pkg/jwt-handling"
)

func getToken(c *gin.Context) *jwthandling.ManagementUserClaims {
	return c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
}

// statusForServiceError maps service layer errors onto HTTP status codes.
func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	case errors.Is(err, assessment.ErrAssigneeNotFound):
		return http.StatusNotFound
	case errors.Is(err, assessment.ErrUnsupportedLanguage),
		errors.Is(err, assessment.ErrUnknownQuestion),
		errors.Is(err, assessment.ErrQuestionNotVisible),
		errors.Is(err, assessment.ErrInvalidResponseValue),
		errors.Is(err, assessment.ErrUnknownOption),
		errors.Is(err, assessment.ErrUnknownArea),
		errors.Is(err, assessment.ErrInvalidTransition):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
