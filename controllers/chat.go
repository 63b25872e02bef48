package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MindHub360/utils"
)

func Chat(router *gin.Engine) {
	router.POST("/chat/message", SendChatMessage)
	router.POST("/chat/classify", ClassifyOnly)
	router.GET("/chat/messages", ChatTranscript)
	router.POST("/chat/reset", ResetChat)
}

/*
* Classify the utterance and return the assembled response right away.
* The delayed transcript append is cosmetic and handled by the
* conversation itself.
 */
func SendChatMessage(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(conversation.Send(input.Text)))
}

// ClassifyOnly runs the dispatcher without touching the transcript.
func ClassifyOnly(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(triageService.ClassifyAndRespond(input.Text)))
}

func ChatTranscript(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(conversation.Messages()))
}

func ResetChat(c *gin.Context) {
	conversation.Reset()
	c.JSON(http.StatusOK, utils.SuccessResponse("conversation reset"))
}
