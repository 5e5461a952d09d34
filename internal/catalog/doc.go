// Package catalog はSQLiteに保存されたポケモン図鑑データセットを提供する。
//
// JSONファイルの代わりにSQLiteデータベースをデータセットの供給元として使う。
// 起動時にLoadで一度だけ読み込み、pokemon.Datasetとしてクエリサービスに渡す。
// 挿入順とタイプの並びはそのまま保持される。
package catalog
