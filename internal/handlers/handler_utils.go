// special-sheets-crm/internal/handlers/handler_utils.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseUintParam читает числовой параметр пути.
func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
