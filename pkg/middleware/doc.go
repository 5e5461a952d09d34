// Package middleware は図鑑APIで使用するGinミドルウェアを提供する。
//
// パニックリカバリ、リクエストIDの付与、CORS設定、
// および任意で有効化するJWTによるAPIクライアント認証を含む。
package middleware
