package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nao1215/pokedex/pkg/pokemon"
)

// Client は図鑑API用のHTTPクライアント。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は図鑑サービスのベースURL。
	baseURL string
	// token はAuthorizationヘッダーに付与するBearerトークン。
	token string
}

// New は新しい図鑑APIクライアントを生成する。
// baseURLには図鑑サービスのベースURL（例: "http://localhost:8080"）を指定する。
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// WithToken はBearerトークンを付与するクライアントのコピーを返す。
func (c *Client) WithToken(token string) *Client {
	copied := *c
	copied.token = token
	return &copied
}

// codeNotFound は図鑑APIがレコード不在の404に付与するエラーコード。
const codeNotFound = "not_found"

// errorResponse は図鑑APIのエラーレスポンス構造。
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// listResponse は一覧APIのレスポンス構造。
type listResponse struct {
	Pokemon []pokemon.Pokemon `json:"pokemon"`
	Count   int               `json:"count"`
}

// GetPokemonByID は図鑑番号でポケモンを取得する。
func (c *Client) GetPokemonByID(ctx context.Context, id int) (pokemon.Pokemon, bool, error) {
	return c.getOne(ctx, "/api/v1/pokemon/"+strconv.Itoa(id))
}

// GetPokemonByName は名前でポケモンを取得する。
func (c *Client) GetPokemonByName(ctx context.Context, name string) (pokemon.Pokemon, bool, error) {
	return c.getOne(ctx, "/api/v1/pokemon/by-name?"+url.Values{"name": {name}}.Encode())
}

// ListPokemon は絞り込み条件に一致するポケモン一覧を取得する。
func (c *Client) ListPokemon(ctx context.Context, filter pokemon.Filter) ([]pokemon.Pokemon, error) {
	path := "/api/v1/pokemon"
	if !filter.IsZero() {
		q := url.Values{}
		for _, tag := range filter.Types {
			q.Add("type", tag)
		}
		path += "?" + q.Encode()
	}

	var resp listResponse
	found, err := c.getJSON(ctx, path, &resp)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("一覧APIが見つかりません: %s", path)
	}
	if resp.Pokemon == nil {
		resp.Pokemon = []pokemon.Pokemon{}
	}
	return resp.Pokemon, nil
}

// getOne は1件取得APIを呼び出す。
func (c *Client) getOne(ctx context.Context, path string) (pokemon.Pokemon, bool, error) {
	var p pokemon.Pokemon
	found, err := c.getJSON(ctx, path, &p)
	if err != nil || !found {
		return pokemon.Pokemon{}, false, err
	}
	return p, true, nil
}

// getJSON はGETリクエストを送信してレスポンスボディをresultにデシリアライズする。
// レコード不在を示す404の場合はエラーにせずfalseを返す。
// ベースURLやAPIバージョンの誤りによるルーティングの404はエラーとして返す。
func (c *Client) getJSON(ctx context.Context, path string, result any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("HTTPリクエストの送信に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusNotFound && isRecordNotFound(respBody) {
			return false, nil
		}
		return false, fmt.Errorf("HTTPエラー: status=%d, body=%s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return false, fmt.Errorf("レスポンスボディのデシリアライズに失敗: %w", err)
	}
	return true, nil
}

// isRecordNotFound はボディが図鑑APIのレコード不在レスポンスであればtrueを返す。
func isRecordNotFound(body []byte) bool {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return false
	}
	return e.Code == codeNotFound
}
