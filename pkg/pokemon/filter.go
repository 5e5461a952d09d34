package pokemon

import "slices"

// Filter は一覧取得時の絞り込み条件。
//
// Typesが空（nilまたは長さ0）の場合は絞り込みを行わない。
// それ以外の場合、Typesの全てのタイプを持つレコードだけが対象になる（AND条件）。
type Filter struct {
	// Types は必須とするタイプの一覧。
	Types []string
}

// TypeOf は単一タイプの絞り込み条件を返す。
// 空文字列は「絞り込みなし」として扱う。
func TypeOf(tag string) Filter {
	if tag == "" {
		return Filter{}
	}
	return Filter{Types: []string{tag}}
}

// TypesOf は複数タイプのAND条件を返す。
// 空のシーケンスは「絞り込みなし」として扱う。
// 要素としての空文字列はそのまま必須タイプとして残る。
func TypesOf(tags ...string) Filter {
	if len(tags) == 0 {
		return Filter{}
	}
	return Filter{Types: slices.Clone(tags)}
}

// IsZero は絞り込みを行わない条件であればtrueを返す。
func (f Filter) IsZero() bool {
	return len(f.Types) == 0
}

// Match はpが条件を満たす場合にtrueを返す。
func (f Filter) Match(p Pokemon) bool {
	if f.IsZero() {
		return true
	}
	return p.HasTypes(f.Types)
}
