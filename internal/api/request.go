package api

import (
	"wellness_gauntlet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// readBody decodes the request body as a JSON object. A missing or malformed
// body is treated as an empty object.
func readBody(c *gin.Context) map[string]any {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		return map[string]any{}
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		logger.Logger().Debug("ignoring malformed request body", zap.Error(err))
		return map[string]any{}
	}
	if body == nil {
		return map[string]any{}
	}
	return body
}
