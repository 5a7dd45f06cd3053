package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rcsa-framework/rcsa-backend/pkg/apihelpers/middlewares"
	userDB "github.com/rcsa-framework/rcsa-backend/pkg/db/user"
)

func (h *HttpEndpoints) AddUserManagementAPI(rg *gin.RouterGroup) {
	usersGroup := rg.Group("/users")
	usersGroup.Use(middlewares.GetAndValidateManagementUserJWT(h.tokenSignKey))
	usersGroup.Use(middlewares.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))
	{
		usersGroup.GET("", h.getUsers)
		usersGroup.GET("/:userID", h.getUser)
	}

	onlyCoordinatorGroup := usersGroup.Group("/")
	onlyCoordinatorGroup.Use(middlewares.RequireRole(userDB.USER_ROLE_COORDINATOR))
	{
		onlyCoordinatorGroup.POST("", middlewares.RequirePayload(), h.createUser)
		onlyCoordinatorGroup.DELETE("/:userID", h.deleteUser)
	}
}

type NewUserReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Language string `json:"language,omitempty"`
}

func (h *HttpEndpoints) createUser(c *gin.Context) {
	token := getToken(c)

	var req NewUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("createUser: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" || !userDB.IsKnownUserRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email or role invalid"})
		return
	}

	slog.Info("createUser: creating user", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("role", req.Role))

	created, err := h.userDBConn.CreateUser(token.InstanceID, userDB.User{
		UserID:   uuid.NewString(),
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		Language: req.Language,
	})
	if err != nil {
		slog.Error("createUser: error creating user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": created})
}

func (h *HttpEndpoints) getUsers(c *gin.Context) {
	token := getToken(c)

	users, err := h.userDBConn.GetUsers(token.InstanceID)
	if err != nil {
		slog.Error("getUsers: error retrieving users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *HttpEndpoints) getUser(c *gin.Context) {
	token := getToken(c)
	userID := c.Param("userID")

	user, err := h.userDBConn.GetUserByID(token.InstanceID, userID)
	if err != nil {
		slog.Error("getUser: error retrieving user", slog.String("requestedUserID", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *HttpEndpoints) deleteUser(c *gin.Context) {
	token := getToken(c)
	userID := c.Param("userID")

	slog.Info("deleteUser: deleting user", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("requestedUserID", userID))

	if err := h.userDBConn.DeleteUser(token.InstanceID, userID); err != nil {
		slog.Error("deleteUser: error deleting user", slog.String("requestedUserID", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
