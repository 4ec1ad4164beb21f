// special-sheets-crm/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"special-sheets-crm/config"
	"special-sheets-crm/internal/handlers"
	"special-sheets-crm/internal/notify"
	"special-sheets-crm/internal/routes"
	"special-sheets-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// .env подхватывается, если есть, но уже выставленные переменные
	// окружения не перезаписывается.
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	for _, envVar := range []string{"DB_URL", "JWT_SECRET"} {
		if os.Getenv(envVar) == "" {
			slog.Error("Обязательная переменная окружения не установлена", "name", envVar)
			os.Exit(1)
		}
	}

	config.ConnectDB()
	config.ConnectRedis()
	config.LoadJWTKey()
	handlers.Telegram = notify.NewTelegramFromEnv()

	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Order{},
		&models.Product{},
		&models.Installment{},
		&models.Comment{},
		&models.Setting{},
	)
	if err != nil {
		slog.Error("Ошибка миграции схемы БД", "error", err)
		os.Exit(1)
	}

	if err := seedAdminUser(); err != nil {
		slog.Error("Не удалось создать администратора", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Сервер запускается", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Ошибка сервера", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Останавливаем сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Сервер остановлен принудительно", "error", err)
		os.Exit(1)
	}
	slog.Info("Сервер остановлен")
}

// seedAdminUser создаёт учётку администратора из ADMIN_LOGIN/ADMIN_PASSWORD,
// если её ещё нет. Без этих переменных шаг пропускается.
func seedAdminUser() error {
	login := os.Getenv("ADMIN_LOGIN")
	password := os.Getenv("ADMIN_PASSWORD")
	if login == "" || password == "" {
		return nil
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{Login: login, PasswordHash: string(hash)}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}
	slog.Info("Создан пользователь-администратор", "login", login)
	return nil
}
