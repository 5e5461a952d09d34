// Package pokedex は図鑑クエリサービスのHTTPサーバーを提供する。
//
// 起動時に読み込んだ不変のデータセットに対して、ID検索・名前検索・
// タイプによる絞り込み一覧の3つの読み取り専用APIを公開する。
// データセットはJSONファイル、SQLiteカタログ、または埋め込みデータから読み込む。
package pokedex
