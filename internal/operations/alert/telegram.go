package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const telegramAPIURL = "https://api.telegram.org"

// Sender delivers one rendered alert message. Failures are reported per
// message and never stop the remaining deliveries.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// TelegramSender posts messages to a chat through the Telegram Bot API.
type TelegramSender struct {
	baseURL    string
	token      string
	chatID     string
	httpClient *http.Client
}

func NewTelegramSender(token, chatID string, timeout time.Duration) *TelegramSender {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TelegramSender{
		baseURL: telegramAPIURL,
		token:   token,
		chatID:  chatID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send posts the message with HTML parse mode so alerts can carry bold text
// and the chart hyperlink.
func (s *TelegramSender) Send(ctx context.Context, text string) error {
	payload := map[string]string{
		"chat_id":    s.chatID,
		"text":       text,
		"parse_mode": "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	var telegramResp struct {
		OK          bool   `json:"ok"`
		ErrorCode   int    `json:"error_code"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&telegramResp); err != nil {
		return fmt.Errorf("parse telegram response: %w", err)
	}

	if !telegramResp.OK {
		return fmt.Errorf("telegram error %d: %s", telegramResp.ErrorCode, telegramResp.Description)
	}
	return nil
}
