package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// jwtIssuer は図鑑APIが発行するトークンのIssuer。
const jwtIssuer = "pokedex"

// contextKeyClientID はGinコンテキストにクライアントIDを格納するキー。
const contextKeyClientID = "client_id"

// APIClaims は図鑑APIのアクセストークンのクレーム。
type APIClaims struct {
	jwt.RegisteredClaims
	// ClientID はAPIを利用するクライアントの識別子。
	ClientID string `json:"client_id"`
}

// GenerateJWT はクライアントIDからHS256で署名したアクセストークンを生成する。
// ttlが0以下の場合は24時間とする。
func GenerateJWT(secret, clientID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := time.Now()
	claims := APIClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    jwtIssuer,
		},
		ClientID: clientID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// JWTAuth はBearerトークンを検証するGinミドルウェアを返す。
// 検証に成功した場合、コンテキストに "client_id" を設定する。
func JWTAuth(secret string) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(jwtIssuer),
	)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorizationヘッダーが必要です",
			})
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Bearer トークン形式が不正です",
			})
			return
		}

		claims := &APIClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "トークンが無効です",
			})
			return
		}

		c.Set(contextKeyClientID, claims.ClientID)
		c.Next()
	}
}

// GetClientID はGinコンテキストからクライアントIDを取得する。
// JWTAuthミドルウェアが適用されていない場合は空文字列を返す。
func GetClientID(c *gin.Context) string {
	return c.GetString(contextKeyClientID)
}
