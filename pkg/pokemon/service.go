package pokemon

// Service はDatasetに対する読み取り専用のクエリサービス。
// 状態を持たないため、複数のゴルーチンから同時に呼び出してよい。
type Service struct {
	dataset *Dataset
}

// NewService はdatasetを所有するServiceを生成する。
// datasetがnilの場合は空のデータセットとして扱う。
func NewService(dataset *Dataset) *Service {
	if dataset == nil {
		dataset = NewDataset(nil)
	}
	return &Service{dataset: dataset}
}

// Len はサービスが保持するレコード数を返す。
func (s *Service) Len() int {
	return s.dataset.Len()
}

// GetByID は指定IDのポケモンを返す。
// 見つからない場合は第2戻り値がfalseになる。IDが重複している場合は挿入順で最初のものを返す。
func (s *Service) GetByID(id int) (Pokemon, bool) {
	for _, p := range s.dataset.items {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Pokemon{}, false
}

// GetByName は名前が完全一致するポケモンを返す。
// 比較は大文字小文字を区別し、正規化は行わない。
func (s *Service) GetByName(name string) (Pokemon, bool) {
	for _, p := range s.dataset.items {
		if p.Name == name {
			return p.clone(), true
		}
	}
	return Pokemon{}, false
}

// List は条件を満たすポケモンをデータセットの順序で返す。
// 該当なしの場合は空スライスを返し、nilは返さない。
func (s *Service) List(f Filter) []Pokemon {
	result := make([]Pokemon, 0)
	for _, p := range s.dataset.items {
		if f.Match(p) {
			result = append(result, p.clone())
		}
	}
	return result
}
