package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	GoEnv string // dev/prod

	// 注文確定後にカートを空に戻すか。
	// 既定はfalse（同じカートを再確定すると注文が重複する）。
	OrderClearCart bool
}

// Loadは環境変数から設定を読む。DB接続情報はinfra/db側で読む。
func Load() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		GoEnv:          getenv("GO_ENV", "dev"),
		OrderClearCart: envBool("ORDER_CLEAR_CART", false),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
