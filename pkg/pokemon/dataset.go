package pokemon

// Dataset は挿入順を保持する不変のポケモンデータセット。
// 生成後に変更されることはない。
type Dataset struct {
	items []Pokemon
}

// NewDataset はitemsをディープコピーしてDatasetを生成する。
// 呼び出し元が後からitemsを変更してもDatasetには影響しない。
func NewDataset(items []Pokemon) *Dataset {
	copied := make([]Pokemon, 0, len(items))
	for _, p := range items {
		copied = append(copied, p.clone())
	}
	return &Dataset{items: copied}
}

// Len はデータセットのレコード数を返す。
func (d *Dataset) Len() int {
	return len(d.items)
}

// All はデータセット全体のコピーを挿入順で返す。
func (d *Dataset) All() []Pokemon {
	all := make([]Pokemon, 0, len(d.items))
	for _, p := range d.items {
		all = append(all, p.clone())
	}
	return all
}
