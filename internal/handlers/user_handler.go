package handlers

import (
	"net/http"

	"github.com/eventin/server/internal/models"
	"github.com/eventin/server/internal/services"
	"github.com/gin-gonic/gin"
)

func RegisterUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		if _, err := u.Register(c.Request.Context(), req); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "User registered successfully"))
	}
}

func LoginUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		token, _, err := u.Login(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"token": token}, ""))
	}
}
