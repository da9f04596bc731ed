package mail

import (
	"CareerBridge/internal/api/config"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Message 邮件中继请求体
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Relay 通过 HTTP 邮件中继发送通知
type Relay struct {
	client *resty.Client
	url    string
	from   string
}

func NewRelay(cfg config.MailConfig) *Relay {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &Relay{
		client: client,
		url:    cfg.RelayURL,
		from:   cfg.From,
	}
}

// Enabled 未配置中继地址时不发送
func (r *Relay) Enabled() bool {
	return r != nil && r.url != ""
}

func (r *Relay) Send(ctx context.Context, to, subject, body string) error {
	if !r.Enabled() {
		return nil
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(&Message{From: r.from, To: to, Subject: subject, Body: body}).
		Post(r.url)
	if err != nil {
		return fmt.Errorf("mail relay request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mail relay responded with status %d", resp.StatusCode())
	}
	return nil
}
