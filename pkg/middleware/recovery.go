package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery はパニックからの回復を行うGinミドルウェアを返す。
// パニック発生時はリクエストIDとクライアントIDを添えてログを出力し、
// リクエストIDを含む500エラーを返す。
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[PANIC] %s: %v", describeRequest(c), r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "内部サーバーエラーが発生しました",
					"request_id": GetRequestID(c),
				})
			}
		}()
		c.Next()
	}
}

// describeRequest はログ出力用にリクエストの識別情報をまとめる。
// 認証が無効な場合のclient_idは "-" になる。
func describeRequest(c *gin.Context) string {
	clientID := GetClientID(c)
	if clientID == "" {
		clientID = "-"
	}
	return fmt.Sprintf("request_id=%s client_id=%s %s %s", GetRequestID(c), clientID, c.Request.Method, c.Request.URL.Path)
}
