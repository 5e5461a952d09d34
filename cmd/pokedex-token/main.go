// 図鑑APIのアクセストークンを発行するコマンド。
// JWT_SECRETを設定して起動したサーバーに対して使うBearerトークンを標準出力に書き出す。
//
//	pokedex-token -client my-app -ttl 720h
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/nao1215/pokedex/internal/config"
	"github.com/nao1215/pokedex/internal/pokedex"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".envファイルを読み込めませんでした。環境変数のみで実行します: %v", err)
	}

	clientID := flag.String("client", "", "トークンを発行するクライアントID（必須）")
	ttl := flag.Duration("ttl", 24*time.Hour, "トークンの有効期間")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	token, err := pokedex.IssueToken(cfg, *clientID, *ttl)
	if err != nil {
		log.Fatalf("トークンの発行に失敗: %v", err)
	}
	fmt.Println(token)
}
