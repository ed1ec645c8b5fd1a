// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
)

// Admission 并发准入中间件
//
// 用加权信号量限制同时进行的生成请求数，超出容量的请求
// 排队等待空位而不是立即拒绝；等待期间客户端断开则随
// 请求上下文一起取消。
func Admission(maxConcurrent int64) gin.HandlerFunc {
	if maxConcurrent <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	sem := semaphore.NewWeighted(maxConcurrent)

	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"success":    false,
				"error_code": "503",
				"message":    "系統繁忙，請稍後再試",
			})
			return
		}
		defer sem.Release(1)

		c.Next()
	}
}
