package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MindHub360/services"
	"MindHub360/utils"
	"MindHub360/utils/token"
)

func Auth(router *gin.Engine) {
	router.POST("/signup", Signup)
	router.POST("/login", Login)
	router.GET("/session", RestoreSession)
	router.POST("/logout", token.JWTAuth(), Logout)
}

/*
* Bind the signup fields, hand off to the auth service, and return the
* new session together with a bearer token.
 */
func Signup(c *gin.Context) {
	var input services.SignupInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	sess, err := authService.Signup(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	bearer, err := token.Generate(sess.Email, sess.Name, sess.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"session": sess, "token": bearer}))
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	sess, err := authService.Login(input.Email, input.Password, input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	bearer, err := token.Generate(sess.Email, sess.Name, sess.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"session": sess, "token": bearer}))
}

// RestoreSession returns the persisted session, reconciled, or 204 when
// the client is anonymous.
func RestoreSession(c *gin.Context) {
	sess, ok := authService.RestoreSession()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(sess))
}

func Logout(c *gin.Context) {
	authService.Logout()
	c.JSON(http.StatusOK, utils.SuccessResponse("logged out"))
}
