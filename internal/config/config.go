// Package config は図鑑サービスの設定を環境変数から読み込む。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config は図鑑サービス全体の設定。
type Config struct {
	// Addr はHTTPサーバーのリッスンアドレス（例: ":8080"）。
	Addr string
	// DatasetPath はJSONデータセットファイルのパス。空の場合は埋め込みデータセットを使う。
	DatasetPath string
	// DatabaseDSN はデータセットを読み込むSQLiteのDSN。設定されている場合はDatasetPathより優先する。
	DatabaseDSN string
	// Strict はデータセットのIDや名前が重複している場合に起動を失敗させるかどうか。
	Strict bool
	// JWTSecret はAPIトークンの署名鍵。空の場合は認証を行わない。
	JWTSecret string
	// AllowedOrigins はCORSで許可するオリジン。
	AllowedOrigins []string
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	addr, err := loadAddr(os.Getenv("PORT"))
	if err != nil {
		return nil, err
	}

	strict, err := loadBool("POKEDEX_STRICT", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:           addr,
		DatasetPath:    strings.TrimSpace(os.Getenv("POKEDEX_DATASET")),
		DatabaseDSN:    strings.TrimSpace(os.Getenv("POKEDEX_DB")),
		Strict:         strict,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}, nil
}

// AuthEnabled はAPIトークン認証が有効な場合にtrueを返す。
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// loadAddr はPORTの値からリッスンアドレスを組み立てる。
// ":8080" や "127.0.0.1:8080" の形式はそのまま受け付ける。
func loadAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":8080", nil
	}
	if strings.ContainsAny(port, " \t") {
		return "", fmt.Errorf("PORTの値が不正です: %q", port)
	}
	if strings.Contains(port, ":") {
		return port, nil
	}
	if _, err := strconv.Atoi(port); err != nil {
		return "", fmt.Errorf("PORTの値が不正です: %q", port)
	}
	return ":" + port, nil
}

// loadBool は真偽値の環境変数を読み込む。未設定の場合はdefを返す。
func loadBool(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%sの値が不正です: %q: %w", key, raw, err)
	}
	return v, nil
}

// splitList はカンマ区切りの値を空要素を除いて分割する。
func splitList(raw string) []string {
	var list []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
