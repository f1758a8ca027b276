package httpx

import (
  "net/http"

  "github.com/gin-gonic/gin"
)

// CORS permits requests from any origin and answers preflights
// before routing.
func CORS() gin.HandlerFunc {
  return func(c *gin.Context) {
    c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
    c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
    c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
    if c.Request.Method == http.MethodOptions { c.AbortWithStatus(http.StatusNoContent); return }
    c.Next()
  }
}
