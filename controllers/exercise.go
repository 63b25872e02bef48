package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MindHub360/models"
	"MindHub360/role"
	"MindHub360/utils"
	"MindHub360/utils/token"
)

func Exercise(router *gin.Engine) {
	router.GET("/exercises/stress", ListStressBusters)
	router.GET("/exercises/yoga", ListYogaTechniques)

	admin := router.Group("/admin", token.JWTAuth(), token.RequireRole(role.Admin))
	admin.PUT("/exercises/stress", ReplaceStressBusters)
	admin.PUT("/exercises/yoga", ReplaceYogaTechniques)
}

func ListStressBusters(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(exerciseService.StressBusters()))
}

func ListYogaTechniques(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(exerciseService.YogaTechniques()))
}

func ReplaceStressBusters(c *gin.Context) {
	var list []models.Exercise
	if err := c.BindJSON(&list); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := exerciseService.ReplaceStressBusters(list); err != nil {
		c.JSON(http.StatusInternalServerError, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("updated"))
}

func ReplaceYogaTechniques(c *gin.Context) {
	var list []models.Exercise
	if err := c.BindJSON(&list); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := exerciseService.ReplaceYogaTechniques(list); err != nil {
		c.JSON(http.StatusInternalServerError, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("updated"))
}
