// special-sheets-crm/config/jwt.go
package config

import (
	"log/slog"
	"os"
)

// JwtKey — ключ подписи токенов, общий для логина и middleware.
var JwtKey []byte

func LoadJWTKey() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("Переменная окружения JWT_SECRET не установлена")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}
