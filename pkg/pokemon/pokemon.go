package pokemon

import "slices"

// Pokemon は図鑑データの1レコードを表す。
type Pokemon struct {
	// ID は図鑑番号。
	ID int `json:"id"`
	// Name はポケモンの名前。大文字小文字を区別して比較する。
	Name string `json:"name"`
	// TypeList はポケモンのタイプ一覧（例: "grass", "poison"）。
	TypeList []string `json:"typeList"`
}

// HasTypes はtagsの全てのタイプをTypeListに含む場合にtrueを返す。
// tagsが空の場合は常にtrueを返す。
func (p Pokemon) HasTypes(tags []string) bool {
	for _, tag := range tags {
		if !slices.Contains(p.TypeList, tag) {
			return false
		}
	}
	return true
}

// clone はTypeListを含めたディープコピーを返す。
func (p Pokemon) clone() Pokemon {
	p.TypeList = slices.Clone(p.TypeList)
	return p
}
