// JSONデータセットをSQLiteカタログに取り込むコマンド。
// 引数にJSONファイルを指定しない場合は埋め込みデータセットを取り込む。
//
//	pokedex-import -db /data/pokedex.db [dataset.json]
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nao1215/pokedex/internal/catalog"
	"github.com/nao1215/pokedex/pkg/pokemon"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".envファイルを読み込めませんでした。環境変数のみで実行します: %v", err)
	}

	dsn := flag.String("db", os.Getenv("POKEDEX_DB"), "取り込み先のSQLite DSN（既定値: $POKEDEX_DB）")
	strict := flag.Bool("strict", false, "IDや名前の重複がある場合は取り込まない")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("取り込み先のデータベースを -db または POKEDEX_DB で指定してください")
	}

	items := pokemon.Default()
	if path := flag.Arg(0); path != "" {
		loaded, err := pokemon.LoadFile(path)
		if err != nil {
			log.Fatalf("データセットの読み込みに失敗: %v", err)
		}
		items = loaded
	}

	if err := pokemon.Validate(items); err != nil {
		if *strict {
			log.Fatalf("データセットの検証に失敗: %v", err)
		}
		log.Printf("警告: %v", err)
	}

	if err := importItems(context.Background(), *dsn, items); err != nil {
		log.Fatalf("カタログへの取り込みに失敗: %v", err)
	}
}

// importItems はdsnのカタログを開いてitemsで置き換える。
func importItems(ctx context.Context, dsn string, items []pokemon.Pokemon) error {
	c, err := catalog.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Printf("カタログのクローズに失敗: %v", err)
		}
	}()

	return c.Import(ctx, items)
}
