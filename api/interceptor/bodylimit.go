package interceptor

import (
	"net/http"
	"time"

	"lpcgen/api/api/common"
	"lpcgen/api/codes"
	"lpcgen/api/system"

	"github.com/gin-gonic/gin"
)

func makeFaileRes(c *gin.Context, status, code int, msg string) {
	res := common.Response{}
	res.Timestamp = time.Now().Unix()
	res.Code = code
	res.Msg = msg
	c.JSON(status, res)
	c.Abort()
}

// BodyLimitInterceptor rejects oversized payloads up front and caps the
// reader so a lying Content-Length cannot get past it either.
func BodyLimitInterceptor() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := system.GetConfig().MaxBodyBytes
		if c.Request.ContentLength > limit {
			makeFaileRes(c, http.StatusRequestEntityTooLarge, codes.CODE_ERR_BODY_LIMIT, "request body too large")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
