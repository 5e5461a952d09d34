package pokedex

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/pokedex/internal/catalog"
	"github.com/nao1215/pokedex/internal/config"
	"github.com/nao1215/pokedex/pkg/pokemon"
)

// LoadDataset は設定に従ってデータセットを読み込む。
// 優先順位はSQLiteカタログ、JSONファイル、埋め込みデータの順。
// IDや名前の重複はStrictが有効な場合のみエラーとし、それ以外は警告ログに留める。
func LoadDataset(ctx context.Context, cfg *config.Config) (*pokemon.Dataset, error) {
	items, source, err := loadItems(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pokemon.Validate(items); err != nil {
		if cfg.Strict {
			return nil, fmt.Errorf("データセットの検証に失敗: %w", err)
		}
		for _, e := range unwrapJoined(err) {
			log.Printf("[Pokedex] 警告: %v（挿入順で最初のレコードが優先されます）", e)
		}
	}

	log.Printf("[Pokedex] %sから%d件のポケモンを読み込みました", source, len(items))
	return pokemon.NewDataset(items), nil
}

// loadItems はデータセットの供給元を選んでレコードを読み込む。
func loadItems(ctx context.Context, cfg *config.Config) ([]pokemon.Pokemon, string, error) {
	switch {
	case cfg.DatabaseDSN != "":
		c, err := catalog.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, "", err
		}
		defer func() {
			if err := c.Close(); err != nil {
				log.Printf("[Pokedex] カタログのクローズに失敗: %v", err)
			}
		}()

		items, err := c.Load(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("カタログからの読み込みに失敗: %w", err)
		}
		return items, "SQLiteカタログ", nil
	case cfg.DatasetPath != "":
		items, err := pokemon.LoadFile(cfg.DatasetPath)
		if err != nil {
			return nil, "", err
		}
		return items, cfg.DatasetPath, nil
	default:
		return pokemon.Default(), "埋め込みデータセット", nil
	}
}

// unwrapJoined はerrors.Joinでまとめられたエラーを個別に取り出す。
func unwrapJoined(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
