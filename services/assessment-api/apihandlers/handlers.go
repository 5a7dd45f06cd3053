package apihandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	userDB "github.com/rcsa-framework/rcsa-backend/pkg/db/user"
)

func HealthCheckHandle(c *gin.Context) {
	serviceInfos := make(map[string]interface{})
	infos, err := os.ReadFile("serviceInfos.json")
	if err != nil {
		slog.Debug("Error reading serviceInfos.json", slog.String("error", err.Error()))
	} else {
		err = json.Unmarshal(infos, &serviceInfos)
		if err != nil {
			slog.Debug("Error unmarshalling serviceInfos.json", slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"serviceInfos": serviceInfos,
	})
}

type HttpEndpoints struct {
	userDBConn         *userDB.UserDBService
	tokenSignKey       string
	allowedInstanceIDs []string
}

func NewHTTPHandler(
	tokenSignKey string,
	userDBConn *userDB.UserDBService,
	allowedInstanceIDs []string,
) *HttpEndpoints {
	return &HttpEndpoints{
		userDBConn:         userDBConn,
		tokenSignKey:       tokenSignKey,
		allowedInstanceIDs: allowedInstanceIDs,
	}
}
