package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/nao1215/pokedex/pkg/pokemon"
	_ "modernc.org/sqlite"
)

// Catalog はSQLiteに保存されたデータセットへのアクセスを提供する。
type Catalog struct {
	// db はSQLiteのデータベース接続。
	db *sql.DB
}

// Open はdsnのSQLiteデータベースを開き、スキーマを適用する。
func Open(ctx context.Context, dsn string) (*Catalog, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("カタログデータベース接続に失敗: %w", err)
	}
	// :memory: は接続ごとに別のデータベースになるため接続を1本に固定する
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("外部キー制約の有効化に失敗: %w", err)
	}
	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("カタログスキーマ初期化に失敗: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close はデータベース接続を閉じる。
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Import は保存済みのデータセットをitemsで置き換える。
// 置き換えは1トランザクションで行われ、失敗した場合は元のデータセットが残る。
func (c *Catalog) Import(ctx context.Context, items []pokemon.Pokemon) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM pokemon_types"); err != nil {
		return fmt.Errorf("既存タイプの削除に失敗: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM pokemon"); err != nil {
		return fmt.Errorf("既存データの削除に失敗: %w", err)
	}

	insertPokemon, err := tx.PrepareContext(ctx, "INSERT INTO pokemon (position, id, name) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("INSERT文の準備に失敗: %w", err)
	}
	defer insertPokemon.Close()

	insertType, err := tx.PrepareContext(ctx, "INSERT INTO pokemon_types (pokemon_position, ordinal, type_name) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("INSERT文の準備に失敗: %w", err)
	}
	defer insertType.Close()

	for position, p := range items {
		if _, err := insertPokemon.ExecContext(ctx, position, p.ID, p.Name); err != nil {
			return fmt.Errorf("ポケモン(id=%d)の保存に失敗: %w", p.ID, err)
		}
		for ordinal, typeName := range p.TypeList {
			if _, err := insertType.ExecContext(ctx, position, ordinal, typeName); err != nil {
				return fmt.Errorf("ポケモン(id=%d)のタイプ保存に失敗: %w", p.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("コミットに失敗: %w", err)
	}
	log.Printf("[Catalog] %d件のポケモンをインポートしました", len(items))
	return nil
}

// Load は保存済みのデータセットを挿入順で読み込む。
func (c *Catalog) Load(ctx context.Context) ([]pokemon.Pokemon, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT position, id, name FROM pokemon ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("ポケモン一覧の取得に失敗: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]pokemon.Pokemon, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var (
			position int64
			p        pokemon.Pokemon
		)
		if err := rows.Scan(&position, &p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("ポケモンの読み取りに失敗: %w", err)
		}
		index[position] = len(items)
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ポケモン一覧の走査に失敗: %w", err)
	}

	typeRows, err := c.db.QueryContext(ctx, "SELECT pokemon_position, type_name FROM pokemon_types ORDER BY pokemon_position, ordinal")
	if err != nil {
		return nil, fmt.Errorf("タイプ一覧の取得に失敗: %w", err)
	}
	defer func() { _ = typeRows.Close() }()

	for typeRows.Next() {
		var (
			position int64
			typeName string
		)
		if err := typeRows.Scan(&position, &typeName); err != nil {
			return nil, fmt.Errorf("タイプの読み取りに失敗: %w", err)
		}
		i, ok := index[position]
		if !ok {
			continue
		}
		items[i].TypeList = append(items[i].TypeList, typeName)
	}
	if err := typeRows.Err(); err != nil {
		return nil, fmt.Errorf("タイプ一覧の走査に失敗: %w", err)
	}
	return items, nil
}
