package pokemon

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:embed data/pokemon.json
var defaultFS embed.FS

var (
	// ErrDuplicateID はデータセット内でIDが重複していることを示す。
	ErrDuplicateID = errors.New("IDが重複しています")
	// ErrDuplicateName はデータセット内で名前が重複していることを示す。
	ErrDuplicateName = errors.New("名前が重複しています")
)

// DecodeJSON はJSON配列形式のデータセットをデコードする。
// レコードの形状は検証しない。欠けたフィールドはゼロ値になり、検索で一致しないだけとなる。
func DecodeJSON(r io.Reader) ([]Pokemon, error) {
	var items []Pokemon
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("データセットのデシリアライズに失敗: %w", err)
	}
	return items, nil
}

// LoadFile はJSONファイルからデータセットを読み込む。
func LoadFile(path string) ([]Pokemon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("データセットファイルのオープンに失敗: %w", err)
	}
	defer f.Close()

	return DecodeJSON(f)
}

// Default はバイナリに埋め込まれた既定のデータセット（第1世代の図鑑）を返す。
func Default() []Pokemon {
	raw, err := defaultFS.ReadFile("data/pokemon.json")
	if err != nil {
		panic(fmt.Sprintf("埋め込みデータセットの読み込みに失敗: %v", err))
	}
	items, err := DecodeJSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("埋め込みデータセットが不正: %v", err))
	}
	return items
}

// Validate はIDと名前の重複を検出する。
// 重複がある場合はErrDuplicateIDまたはErrDuplicateNameをラップしたエラーをまとめて返す。
// クエリ自体は重複があっても挿入順で最初のレコードを返すため、検証は任意。
func Validate(items []Pokemon) error {
	ids := make(map[int]int, len(items))
	names := make(map[string]int, len(items))

	var errs []error
	for i, p := range items {
		if first, ok := ids[p.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: id=%d (index %d, %d)", ErrDuplicateID, p.ID, first, i))
		} else {
			ids[p.ID] = i
		}
		if first, ok := names[p.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: name=%q (index %d, %d)", ErrDuplicateName, p.Name, first, i))
		} else {
			names[p.Name] = i
		}
	}
	return errors.Join(errs...)
}
