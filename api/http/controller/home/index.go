package home

import (
	"net/http"
	"time"

	"lpcgen/api/api/common"
	"lpcgen/api/codes"
	"lpcgen/api/model"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Public exposes the fixed frame-grid constants and animation table so UIs
// can lay out pickers without hardcoding them.
func Public(c *gin.Context) {
	res := common.Response{}
	res.Timestamp = time.Now().Unix()

	res.Code = codes.CODE_SUCCESS
	res.Msg = "success"
	res.Data = gin.H{
		"frameSize":   model.FrameSize,
		"sheetWidth":  model.SheetWidth,
		"sheetHeight": model.SheetHeight,
		"animations":  model.Animations,
		"bodyTypes":   model.BodyTypes,
	}

	c.JSON(http.StatusOK, res)
}
