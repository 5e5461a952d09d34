package config

import (
	"reflect"
	"testing"
)

// setenvAll は全ての設定用環境変数をテスト用の値で上書きする。
// t.Setenvを使うためt.Parallelとは併用しない。
func setenvAll(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{"PORT", "POKEDEX_DATASET", "POKEDEX_DB", "POKEDEX_STRICT", "JWT_SECRET", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, env[key])
	}
}

func TestLoad(t *testing.T) {
	t.Run("正常系_未設定の場合は既定値になる", func(t *testing.T) {
		setenvAll(t, nil)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load()でエラーが発生: %v", err)
		}
		want := &Config{Addr: ":8080"}
		if !reflect.DeepEqual(cfg, want) {
			t.Errorf("Load() = %+v, want %+v", cfg, want)
		}
		if cfg.AuthEnabled() {
			t.Error("JWT_SECRET未設定で認証が有効になっている")
		}
	})

	t.Run("正常系_全ての値を読み込める", func(t *testing.T) {
		setenvAll(t, map[string]string{
			"PORT":                 "9090",
			"POKEDEX_DATASET":      " /data/pokemon.json ",
			"POKEDEX_DB":           "/data/pokedex.db",
			"POKEDEX_STRICT":       "true",
			"JWT_SECRET":           "secret",
			"CORS_ALLOWED_ORIGINS": "http://localhost:3000, ,https://example.com",
		})

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load()でエラーが発生: %v", err)
		}
		want := &Config{
			Addr:           ":9090",
			DatasetPath:    "/data/pokemon.json",
			DatabaseDSN:    "/data/pokedex.db",
			Strict:         true,
			JWTSecret:      "secret",
			AllowedOrigins: []string{"http://localhost:3000", "https://example.com"},
		}
		if !reflect.DeepEqual(cfg, want) {
			t.Errorf("Load() = %+v, want %+v", cfg, want)
		}
		if !cfg.AuthEnabled() {
			t.Error("JWT_SECRET設定時は認証が有効になるべき")
		}
	})

	t.Run("異常系_POKEDEX_STRICTが真偽値でない場合エラーを返す", func(t *testing.T) {
		setenvAll(t, map[string]string{"POKEDEX_STRICT": "maybe"})

		if _, err := Load(); err == nil {
			t.Error("エラーを期待したがnilが返された")
		}
	})

	t.Run("異常系_PORTが不正な場合エラーを返す", func(t *testing.T) {
		setenvAll(t, map[string]string{"PORT": "80 80"})

		if _, err := Load(); err == nil {
			t.Error("エラーを期待したがnilが返された")
		}
	})
}

func TestLoadAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		port    string
		want    string
		wantErr bool
	}{
		{port: "", want: ":8080"},
		{port: "8081", want: ":8081"},
		{port: ":8082", want: ":8082"},
		{port: "127.0.0.1:8083", want: "127.0.0.1:8083"},
		{port: "http", wantErr: true},
		{port: "80 80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			t.Parallel()

			got, err := loadAddr(tt.port)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadAddr(%q) err = %v, wantErr %v", tt.port, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("loadAddr(%q) = %q, want %q", tt.port, got, tt.want)
			}
		})
	}
}
