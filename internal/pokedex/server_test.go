package pokedex

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/pokedex/internal/config"
	"github.com/nao1215/pokedex/pkg/middleware"
	"github.com/nao1215/pokedex/pkg/pokemon"
)

// testJWTSecret はテスト用のJWT署名鍵。
const testJWTSecret = "test-secret-key"

func init() {
	gin.SetMode(gin.TestMode)
}

// testDataset はハンドラのテストに使うデータセット。
func testDataset() []pokemon.Pokemon {
	return []pokemon.Pokemon{
		{ID: 1, Name: "Bulbasaur", TypeList: []string{"grass", "poison"}},
		{ID: 4, Name: "Charmander", TypeList: []string{"fire"}},
		{ID: 6, Name: "Charizard", TypeList: []string{"fire", "flying"}},
		{ID: 122, Name: "Mr. Mime", TypeList: []string{"psychic", "fairy"}},
	}
}

// setupTestServer はテスト用の図鑑サーバーを作成する。
func setupTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{Addr: ":0"}
	}
	return NewServer(cfg, pokemon.NewService(pokemon.NewDataset(testDataset())))
}

// listResponse は一覧APIのレスポンス。
type listResponse struct {
	Pokemon []pokemon.Pokemon `json:"pokemon"`
	Count   int               `json:"count"`
	Type    []string          `json:"type"`
}

// doGet はGETリクエストを送信してレスポンスを返す。
func doGet(t *testing.T, s *Server, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		wantIDs  []int
		wantType []string
	}{
		{name: "正常系_typeなしは全件を元の順序で返す", target: "/api/v1/pokemon", wantIDs: []int{1, 4, 6, 122}},
		{name: "正常系_空のtypeは絞り込みなし", target: "/api/v1/pokemon?type=", wantIDs: []int{1, 4, 6, 122}},
		{name: "正常系_単一タイプ", target: "/api/v1/pokemon?type=fire", wantIDs: []int{4, 6}, wantType: []string{"fire"}},
		{name: "正常系_繰り返し指定はAND条件", target: "/api/v1/pokemon?type=fire&type=flying", wantIDs: []int{6}, wantType: []string{"fire", "flying"}},
		{name: "正常系_カンマ区切りはAND条件", target: "/api/v1/pokemon?type=flying,fire", wantIDs: []int{6}, wantType: []string{"flying", "fire"}},
		{name: "正常系_該当なしは空の一覧", target: "/api/v1/pokemon?type=dragon", wantIDs: []int{}, wantType: []string{"dragon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := setupTestServer(t, nil)
			w := doGet(t, s, tt.target, nil)

			if w.Code != http.StatusOK {
				t.Fatalf("期待するステータスコード %d, 実際のステータスコード %d, body: %s", http.StatusOK, w.Code, w.Body.String())
			}

			var resp listResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("レスポンスのデシリアライズに失敗: %v", err)
			}
			if resp.Pokemon == nil {
				t.Fatal("pokemonがnullで返された")
			}

			ids := make([]int, 0, len(resp.Pokemon))
			for _, p := range resp.Pokemon {
				ids = append(ids, p.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
			if resp.Count != len(tt.wantIDs) {
				t.Errorf("count = %d, want %d", resp.Count, len(tt.wantIDs))
			}
			if !reflect.DeepEqual(resp.Type, tt.wantType) {
				t.Errorf("type = %v, want %v", resp.Type, tt.wantType)
			}
		})
	}
}

func TestHandleGetByID(t *testing.T) {
	t.Parallel()

	t.Run("正常系_指定IDのポケモンを返す", func(t *testing.T) {
		t.Parallel()

		s := setupTestServer(t, nil)
		w := doGet(t, s, "/api/v1/pokemon/4", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("期待するステータスコード %d, 実際のステータスコード %d", http.StatusOK, w.Code)
		}

		var got pokemon.Pokemon
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("レスポンスのデシリアライズに失敗: %v", err)
		}
		want := pokemon.Pokemon{ID: 4, Name: "Charmander", TypeList: []string{"fire"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("レスポンス = %+v, want %+v", got, want)
		}
	})

	t.Run("異常系_存在しないIDは404を返す", func(t *testing.T) {
		t.Parallel()

		s := setupTestServer(t, nil)
		w := doGet(t, s, "/api/v1/pokemon/999", nil)

		if w.Code != http.StatusNotFound {
			t.Fatalf("期待するステータスコード %d, 実際のステータスコード %d", http.StatusNotFound, w.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("レスポンスのデシリアライズに失敗: %v", err)
		}
		if resp["code"] != codeNotFound {
			t.Errorf("code = %q, want %q", resp["code"], codeNotFound)
		}
	})

	t.Run("異常系_整数でないIDは400を返す", func(t *testing.T) {
		t.Parallel()

		s := setupTestServer(t, nil)
		w := doGet(t, s, "/api/v1/pokemon/pikachu", nil)

		if w.Code != http.StatusBadRequest {
			t.Errorf("期待するステータスコード %d, 実際のステータスコード %d", http.StatusBadRequest, w.Code)
		}
	})
}

func TestHandleGetByName(t *testing.T) {
	t.Parallel()

	t.Run("正常系_名前が完全一致するポケモンを返す", func(t *testing.T) {
		t.Parallel()

		s := setupTestServer(t, nil)
		w := doGet(t, s, "/api/v1/pokemon/by-name?name=Mr.%20Mime", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("期待するステータスコード %d, 実際のステータスコード %d", http.StatusOK, w.Code)
		}

		var got pokemon.Pokemon
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("レスポンスのデシリアライズに失敗: %v", err)
		}
		if got.ID != 122 {
			t.Errorf("ID = %d, want 122", got.ID)
		}
	})

	t.Run("正常系_スラッシュを含む名前と空文字列の名前も検索できる", func(t *testing.T) {
		t.Parallel()

		service := pokemon.NewService(pokemon.NewDataset([]pokemon.Pokemon{
			{ID: 999, Name: "AC/DC", TypeList: []string{"electric"}},
			{ID: 0, Name: "", TypeList: []string{"normal"}},
		}))
		s := NewServer(&config.Config{Addr: ":0"}, service)

		tests := []struct {
			target string
			wantID int
		}{
			{target: "/api/v1/pokemon/by-name?name=AC%2FDC", wantID: 999},
			{target: "/api/v1/pokemon/by-name?name=", wantID: 0},
		}
		for _, tt := range tests {
			w := doGet(t, s, tt.target, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("%s: 期待するステータスコード %d, 実際のステータスコード %d", tt.target, http.StatusOK, w.Code)
			}

			var got pokemon.Pokemon
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("レスポンスのデシリアライズに失敗: %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("%s: ID = %d, want %d", tt.target, got.ID, tt.wantID)
			}
		}
	})

	t.Run("異常系_大文字小文字が異なる場合はnot_foundの404を返す", func(t *testing.T) {
		t.Parallel()

		s := setupTestServer(t, nil)
		w := doGet(t, s, "/api/v1/pokemon/by-name?name=charmander", nil)

		if w.Code != http.StatusNotFound {
			t.Fatalf("期待するステータスコード %d, 実際のステータスコード %d", http.StatusNotFound, w.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("レスポンスのデシリアライズに失敗: %v", err)
		}
		if resp["code"] != codeNotFound {
			t.Errorf("code = %q, want %q", resp["code"], codeNotFound)
		}
	})

	t.Run("異常系_nameパラメータが無い場合は400を返す", func(t *testing.T) {
		t.Parallel()

		s := setupTestServer(t, nil)
		w := doGet(t, s, "/api/v1/pokemon/by-name", nil)

		if w.Code != http.StatusBadRequest {
			t.Errorf("期待するステータスコード %d, 実際のステータスコード %d", http.StatusBadRequest, w.Code)
		}
	})
}

func TestServerAuth(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Addr: ":0", JWTSecret: testJWTSecret}

	t.Run("異常系_認証が有効な場合トークンなしは401を返す", func(t *testing.T) {
		t.Parallel()

		s := setupTestServer(t, cfg)
		w := doGet(t, s, "/api/v1/pokemon", nil)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("期待するステータスコード %d, 実際のステータスコード %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("正常系_有効なトークンで一覧を取得できる", func(t *testing.T) {
		t.Parallel()

		token, err := middleware.GenerateJWT(testJWTSecret, "client-1", time.Hour)
		if err != nil {
			t.Fatalf("テスト用JWTトークンの生成に失敗: %v", err)
		}

		s := setupTestServer(t, cfg)
		w := doGet(t, s, "/api/v1/pokemon", http.Header{"Authorization": {"Bearer " + token}})

		if w.Code != http.StatusOK {
			t.Errorf("期待するステータスコード %d, 実際のステータスコード %d", http.StatusOK, w.Code)
		}
	})

	t.Run("正常系_ヘルスチェックは認証不要", func(t *testing.T) {
		t.Parallel()

		s := setupTestServer(t, cfg)
		w := doGet(t, s, "/health", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("期待するステータスコード %d, 実際のステータスコード %d", http.StatusOK, w.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("レスポンスのデシリアライズに失敗: %v", err)
		}
		if resp["service"] != "pokedex" {
			t.Errorf("service = %q, want %q", resp["service"], "pokedex")
		}
	})
}

func TestServerMiddleware(t *testing.T) {
	t.Parallel()

	s := setupTestServer(t, &config.Config{Addr: ":0", AllowedOrigins: []string{"http://localhost:3000"}})
	w := doGet(t, s, "/api/v1/pokemon/1", http.Header{"Origin": {"http://localhost:3000"}})

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "http://localhost:3000")
	}
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Error("X-Request-IDが設定されていない")
	}
}

func TestParseTypeFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   pokemon.Filter
	}{
		{name: "nil", values: nil, want: pokemon.Filter{}},
		{name: "空文字列のみ", values: []string{""}, want: pokemon.Filter{}},
		{name: "空要素だけのカンマ区切り", values: []string{" , ,"}, want: pokemon.Filter{}},
		{name: "単一", values: []string{"fire"}, want: pokemon.TypeOf("fire")},
		{name: "繰り返しとカンマ区切りの混在", values: []string{"fire, flying", "dragon"}, want: pokemon.TypesOf("fire", "flying", "dragon")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := parseTypeFilter(tt.values); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseTypeFilter(%q) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}
