// special-sheets-crm/internal/notify/telegram.go

// Пакет notify отправляет клиентам уведомления о графике рассрочки
// через Telegram Bot API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// Telegram — клиент Bot API. Нулевое значение непригодно,
// создавайте через NewTelegramFromEnv.
type Telegram struct {
	token  string
	client *http.Client
}

// NewTelegramFromEnv читает TELEGRAM_BOT_TOKEN. Если токен не задан,
// возвращает nil: уведомления просто выключены.
func NewTelegramFromEnv() *Telegram {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil
	}
	return &Telegram{
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessage отправляет текст в указанный чат.
func (t *Telegram) SendMessage(ctx context.Context, chatID, text string) error {
	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: status %d", resp.StatusCode)
	}
	return nil
}
