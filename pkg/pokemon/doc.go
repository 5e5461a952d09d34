// Package pokemon はポケモン図鑑データに対する読み取り専用のクエリを提供する。
//
// データセットは起動時に一度だけ読み込まれ、以降は変更されない。
// ID検索・名前検索・タイプによる絞り込みの3つの操作はいずれも
// データセットの線形走査であり、ロックなしで並行に呼び出せる。
package pokemon
