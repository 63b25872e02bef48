package routes

import (
	"MindHub360/controllers"
	"MindHub360/sse"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	controllers.Chat(r)
	controllers.Exercise(r)
	controllers.Doctor(r)
	r.GET("/events", sse.Events)
	//role-gated groups register their own middleware
	controllers.Therapy(r)
	controllers.Forum(r)
}
