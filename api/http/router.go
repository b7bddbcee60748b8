package http

import (
	"github.com/gin-gonic/gin"

	"lpcgen/api/api/http/controller/home"
	"lpcgen/api/api/http/controller/sprite"
	"lpcgen/api/api/interceptor"
)

func Routers(e *gin.RouterGroup) {

	homeGroup := e.Group("/")
	homeGroup.GET("health", home.Health)
	homeGroup.GET("public/config", home.Public)

	apiGroup := e.Group("/api", interceptor.BodyLimitInterceptor())
	apiGroup.GET("options", sprite.Options)
	apiGroup.POST("generate", sprite.Generate)
}
