package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"MindHub360/role"
	"MindHub360/services"
	"MindHub360/utils"
	"MindHub360/utils/token"
)

func Doctor(router *gin.Engine) {
	router.GET("/doctors", ListDoctors)

	admin := router.Group("/admin", token.JWTAuth(), token.RequireRole(role.Admin))
	admin.POST("/doctors", CreateDoctor)
	admin.PUT("/doctors/:id/status", ToggleDoctorStatus)
}

// ListDoctors returns the roster; ?active=true narrows to doctors
// eligible for referral and assignment.
func ListDoctors(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	c.JSON(http.StatusOK, utils.SuccessResponse(authService.ListDoctors(activeOnly)))
}

func CreateDoctor(c *gin.Context) {
	var input services.DoctorInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	doctor, err := authService.CreateDoctorAccount(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(doctor))
}

func ToggleDoctorStatus(c *gin.Context) {
	var input struct {
		Active bool `json:"active"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := authService.ToggleDoctorStatus(c.Param("id"), input.Active); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("updated"))
}
