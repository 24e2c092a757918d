package infrastructure

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TwilioWhatsAppClient sends outbound WhatsApp messages through the Twilio
// Messages API. Delivery is fire-and-forget: the caller decides what to do
// with a failure, this client only reports it.
type TwilioWhatsAppClient struct {
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewTwilioWhatsAppClient(accountSID, authToken, fromNumber string, log zerolog.Logger) *TwilioWhatsAppClient {
	return &TwilioWhatsAppClient{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log.With().Str("component", "twilio").Logger(),
	}
}

func (c *TwilioWhatsAppClient) SendMessage(to, content string) error {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", c.accountSID)

	form := url.Values{}
	form.Set("From", "whatsapp:"+c.fromNumber)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", content)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("twilio responded %d: %s", resp.StatusCode, string(body))
	}

	c.log.Debug().Str("to", to).Msg("whatsapp message sent")
	return nil
}
