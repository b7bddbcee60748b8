package main

import (
	"time"

	apihttp "lpcgen/api/api/http"
	"lpcgen/api/log"
	"lpcgen/api/system"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	system.Init()

	cfg := system.GetConfig()
	log.Init(cfg.LogDir, cfg.LogLevel)

	if system.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	e := gin.Default()
	e.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	apihttp.Routers(&e.RouterGroup)

	log.Info("asset root: ", cfg.AssetRoot)
	log.Info("listening on :", cfg.Port)
	if err := e.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
