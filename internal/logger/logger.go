// Package logger はアプリ全体のログ設定。zerologを使う。
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New は環境ごとのロガーを作る。
// devではコンソール向けの読みやすい出力、それ以外はJSON。
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "dev" {
		w := zerolog.NewConsoleWriter()
		return zerolog.New(w).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
