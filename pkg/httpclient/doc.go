// Package httpclient は図鑑APIを呼び出す型付きHTTPクライアントを提供する。
//
// 「見つからない」はエラーではなく第2戻り値のfalseで表す。
// 404以外の2xx以外のステータスはエラーとして返す。
package httpclient
