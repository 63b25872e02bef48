package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MindHub360/role"
	"MindHub360/utils"
	"MindHub360/utils/token"
)

func Forum(router *gin.Engine) {
	group := router.Group("/forum", token.JWTAuth())
	group.GET("/posts", ListPosts)
	group.POST("/posts", CreatePost)
	group.POST("/posts/:id/replies", AddReply)
	group.POST("/posts/:id/like", ToggleLike)

	router.GET("/tips", ListDoctorTips)
	router.POST("/tips", token.JWTAuth(), token.RequireRole(role.Doctor), AddDoctorTip)
}

func ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(forumService.ListPosts(c.GetString("email"))))
}

func CreatePost(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	post, err := forumService.CreatePost(c.GetString("name"), input.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(post))
}

func AddReply(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	reply, err := forumService.AddReply(c.Param("id"), c.GetString("name"), input.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(reply))
}

func ListDoctorTips(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(forumService.DoctorTips()))
}

func AddDoctorTip(c *gin.Context) {
	var input struct {
		Tip string `json:"tip" binding:"required"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := forumService.AddDoctorTip(input.Tip); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("tip shared"))
}

func ToggleLike(c *gin.Context) {
	liked, err := forumService.ToggleLike(c.Param("id"), c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"liked": liked}))
}
