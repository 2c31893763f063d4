package userbot

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/store"
)

// Client talks to the secondary-account gateway that delivers
// verification codes straight to a phone number. Credentials come from
// the userbot settings row, not from the environment, so admins can
// rotate them at runtime.
type Client struct {
	http    *resty.Client
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{
		http:    resty.New().SetTimeout(15 * time.Second),
		baseURL: baseURL,
	}
}

// Default builds a client from the configured gateway URL. Returns nil
// when no gateway is configured.
func Default() *Client {
	if initializers.Cfg == nil || initializers.Cfg.UserbotGatewayURL == "" {
		return nil
	}
	return NewClient(initializers.Cfg.UserbotGatewayURL)
}

// SendCode asks the gateway to message a verification code to the phone.
// The gateway is only used while the settings row is active.
func (c *Client) SendCode(phone, code string) error {
	settings, err := store.GetUserbotSettings()
	if err != nil {
		return err
	}
	if !settings.IsActive {
		return fmt.Errorf("userbot is not active")
	}

	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"api_id":   settings.APIID,
			"api_hash": settings.APIHash,
			"session":  settings.SessionString,
			"phone":    phone,
			"message":  fmt.Sprintf("Tasdiqlash kodi: %s", code),
		}).
		Post(c.baseURL + "/send")
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode(), resp.Body())
	}
	return nil
}
