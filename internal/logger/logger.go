package logger

import (
	"go.uber.org/zap"
)

// New は環境に応じたzap loggerを返す。
// prodはJSON、それ以外は開発向けの読みやすい形式
func New(goEnv string) (*zap.Logger, error) {
	if goEnv == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
