// 図鑑クエリサービスのエントリポイント。
// 起動時にデータセットを一度だけ読み込み、ID検索・名前検索・タイプ絞り込みのAPIを公開する。
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/nao1215/pokedex/internal/config"
	"github.com/nao1215/pokedex/internal/pokedex"
	"github.com/nao1215/pokedex/pkg/pokemon"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".envファイルを読み込めませんでした。環境変数のみで起動します: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	dataset, err := pokedex.LoadDataset(context.Background(), cfg)
	if err != nil {
		log.Fatalf("データセットの読み込みに失敗: %v", err)
	}

	server := pokedex.NewServer(cfg, pokemon.NewService(dataset))

	log.Printf("図鑑サービスを起動します: %s", cfg.Addr)
	if err := server.Run(); err != nil {
		log.Fatalf("図鑑サービスの起動に失敗: %v", err)
	}
}
