package sprite

import (
	"context"
	"errors"
	"net/http"
	"time"

	"lpcgen/api/api/common"
	"lpcgen/api/codes"
	"lpcgen/api/log"
	"lpcgen/api/service"
	"lpcgen/api/system"

	"github.com/gin-gonic/gin"
)

// Generate composes a spritesheet for one character configuration. The
// success payload keeps the original client contract: imageData data URL and
// metadata at the top level.
func Generate(c *gin.Context) {
	var req GenerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		makeFaileRes(c, http.StatusBadRequest, codes.CODE_ERR_BAD_PARAMS, "invalid request body")
		return
	}
	if len(req.BodyType) == 0 {
		makeFaileRes(c, http.StatusBadRequest, codes.CODE_ERR_BAD_PARAMS, "bodyType is required")
		return
	}
	if len(req.Animations) == 0 {
		makeFaileRes(c, http.StatusBadRequest, codes.CODE_ERR_BAD_PARAMS, "animations is required")
		return
	}

	cfg := system.GetConfig()
	ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.LoadTimeout)
	defer cancel()

	svc := service.NewSpriteService(cfg.AssetRoot)
	result, err := svc.Generate(ctx, req.toConfig())
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imageData": service.DataURL(result.Image),
		"metadata":  result.Metadata,
	})
}

// Options reports the currently selectable body types, animations and the
// disk-derived equipment tree, top-level per the original client contract.
func Options(c *gin.Context) {
	svc := service.NewSpriteService(system.GetConfig().AssetRoot)
	options, err := svc.Options()
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

func makeFaileRes(c *gin.Context, status, code int, msg string) {
	res := common.Response{}
	res.Timestamp = time.Now().Unix()
	res.Code = code
	res.Msg = msg
	c.JSON(status, res)
}

// writeEngineError maps engine failures onto the envelope: validation to
// client errors with the full valid set, missing assets to not-found, the
// rest to server errors with detail only outside release mode.
func writeEngineError(c *gin.Context, err error) {
	res := common.Response{}
	res.Timestamp = time.Now().Unix()

	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		res.Code = codes.CODE_ERR_BAD_PARAMS
		res.Msg = vErr.Error()
		res.Data = gin.H{"field": vErr.Field, "valid": vErr.Valid}
		c.JSON(http.StatusBadRequest, res)
		return
	}

	// asset failures are not caller-correctable: always a server error,
	// still naming the offending layer type
	var aErr *service.AssetError
	if errors.As(err, &aErr) {
		log.Error("generate asset error: ", err)
		res.Code = codes.CODE_ERR_SYSTEM
		res.Msg = "asset load failure for layer \"" + aErr.LayerType + "\""
		c.JSON(http.StatusInternalServerError, res)
		return
	}

	log.Error("generate error: ", err)
	res.Code = codes.CODE_ERR_SYSTEM
	res.Msg = "internal error"
	if !system.IsRelease() {
		res.Msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, res)
}
