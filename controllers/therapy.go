package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MindHub360/role"
	"MindHub360/services"
	"MindHub360/utils"
	"MindHub360/utils/token"
)

func Therapy(router *gin.Engine) {
	group := router.Group("/therapy", token.JWTAuth())
	group.POST("/requests", token.RequireRole(role.Student), SubmitTherapyRequest)
	group.GET("/requests", ListTherapyRequests)
	group.PUT("/requests/:id/assign", token.RequireRole(role.Admin), AssignTherapyRequest)
	group.PUT("/requests/:id/status", token.RequireRole(role.Admin, role.Doctor), UpdateTherapyRequestStatus)
}

func SubmitTherapyRequest(c *gin.Context) {
	var input services.TherapyRequestInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if input.RequesterName == "" {
		input.RequesterName = c.GetString("name")
	}
	request, err := therapyService.Submit(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(request))
}

/*
* Role-scoped listing: admins see everything, doctors see requests
* assigned to them, students see their own submissions.
 */
func ListTherapyRequests(c *gin.Context) {
	switch c.GetString("role") {
	case role.Admin:
		c.JSON(http.StatusOK, utils.SuccessResponse(therapyService.ListAll()))
	case role.Doctor:
		c.JSON(http.StatusOK, utils.SuccessResponse(therapyService.ListForDoctor(c.GetString("name"))))
	default:
		c.JSON(http.StatusOK, utils.SuccessResponse(therapyService.ListForRequester(c.GetString("name"))))
	}
}

func AssignTherapyRequest(c *gin.Context) {
	var input struct {
		DoctorName string `json:"doctorName" binding:"required"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := therapyService.Assign(c.Param("id"), input.DoctorName); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("assigned"))
}

func UpdateTherapyRequestStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := therapyService.UpdateStatus(c.Param("id"), input.Status); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("updated"))
}
