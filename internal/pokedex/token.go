package pokedex

import (
	"errors"
	"strings"
	"time"

	"github.com/nao1215/pokedex/internal/config"
	"github.com/nao1215/pokedex/pkg/middleware"
)

var (
	// ErrAuthDisabled はJWT_SECRETが未設定でトークンを発行できないことを示す。
	ErrAuthDisabled = errors.New("JWT_SECRETが設定されていないため認証は無効です")
	// ErrEmptyClientID はクライアントIDが指定されていないことを示す。
	ErrEmptyClientID = errors.New("クライアントIDが必要です")
)

// IssueToken は図鑑APIを呼び出すためのアクセストークンを発行する。
// 署名にはサーバーと同じJWT_SECRETを使うため、発行したトークンはそのまま/api/v1で使える。
func IssueToken(cfg *config.Config, clientID string, ttl time.Duration) (string, error) {
	if !cfg.AuthEnabled() {
		return "", ErrAuthDisabled
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return "", ErrEmptyClientID
	}
	return middleware.GenerateJWT(cfg.JWTSecret, clientID, ttl)
}
