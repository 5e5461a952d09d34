package pokedex

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/pokedex/internal/config"
	"github.com/nao1215/pokedex/pkg/middleware"
	"github.com/nao1215/pokedex/pkg/pokemon"
)

// Querier は図鑑データに対する読み取りクエリ。pokemon.Serviceが実装する。
type Querier interface {
	GetByID(id int) (pokemon.Pokemon, bool)
	GetByName(name string) (pokemon.Pokemon, bool)
	List(f pokemon.Filter) []pokemon.Pokemon
}

// Server は図鑑クエリサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// addr はサーバーのリッスンアドレス。
	addr string
	// querier はデータセットへのクエリを実行する。
	querier Querier
}

// NewServer は新しい図鑑サーバーを生成する。
// JWTSecretが設定されている場合、/api/v1 配下はBearerトークンを要求する。
func NewServer(cfg *config.Config, querier Querier) *Server {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	s := &Server{
		router:  router,
		addr:    cfg.Addr,
		querier: querier,
	}
	s.setupRoutes(cfg)
	return s
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(s.addr)
}

// Handler はサーバーのhttp.Handlerを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes(cfg *config.Config) {
	api := s.router.Group("/api/v1")
	if cfg.AuthEnabled() {
		api.Use(middleware.JWTAuth(cfg.JWTSecret))
	}
	{
		p := api.Group("/pokemon")
		{
			// タイプによる絞り込み一覧
			p.GET("", s.handleList())
			// 名前による検索。名前に "/" や空文字列を含められるようクエリパラメータで受け取る
			p.GET("/by-name", s.handleGetByName())
			// 図鑑番号による検索
			p.GET("/:id", s.handleGetByID())
		}
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "pokedex"})
	})
}

// handleList はタイプで絞り込んだポケモン一覧を返すハンドラ。
// クエリパラメータ type は繰り返し指定またはカンマ区切りで複数指定でき、全てを持つものに絞り込む。
func (s *Server) handleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := parseTypeFilter(c.QueryArray("type"))
		items := s.querier.List(filter)

		c.JSON(http.StatusOK, gin.H{
			"pokemon": items,
			"count":   len(items),
			"type":    filter.Types,
		})
	}
}

// handleGetByID は指定された図鑑番号のポケモンを返すハンドラ。
func (s *Server) handleGetByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "IDは整数で指定してください"})
			return
		}

		p, ok := s.querier.GetByID(id)
		if !ok {
			respondNotFound(c)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// handleGetByName は名前が完全一致するポケモンを返すハンドラ。
// クエリパラメータ name は必須だが、空文字列は正当な名前として検索する。
func (s *Server) handleGetByName() gin.HandlerFunc {
	return func(c *gin.Context) {
		name, present := c.GetQuery("name")
		if !present {
			c.JSON(http.StatusBadRequest, gin.H{"error": "名前(name)が必要です"})
			return
		}

		p, ok := s.querier.GetByName(name)
		if !ok {
			respondNotFound(c)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// codeNotFound はレコードが存在しないことを示すエラーコード。
// ルーティングの404と区別するためにレスポンスに含める。
const codeNotFound = "not_found"

// respondNotFound はレコードが存在しない場合の404レスポンスを返す。
func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "ポケモンが見つかりません",
		"code":  codeNotFound,
	})
}

// parseTypeFilter はtypeクエリパラメータの値を絞り込み条件に変換する。
// 未指定・空文字列のみの場合は絞り込みなしになる。
func parseTypeFilter(values []string) pokemon.Filter {
	var tags []string
	for _, v := range values {
		for _, tag := range strings.Split(v, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return pokemon.TypesOf(tags...)
}
