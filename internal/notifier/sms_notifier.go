package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	config "github.com/bingxyi/PedidosAPI-Project/configs"
)

type SMSResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			StatusCode int    `json:"statusCode"`
			Number     string `json:"number"`
			Cost       string `json:"cost"`
			Status     string `json:"status"`
			MessageID  string `json:"messageId"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// SendOrderSMS pushes an order-created notification to the back-office phone
// configured via AT_NOTIFY_PHONE. A no-op when the number or API key is not
// configured.
func SendOrderSMS(orderID uint, customerName string, total decimal.Decimal) error {
	cfg := config.LoadAfricaTalkingConfig()
	if cfg.NotifyPhone == "" || cfg.APIKey == "" {
		return nil
	}

	message := fmt.Sprintf("New order #%d for %s. Total: %s", orderID, customerName, total.StringFixed(2))

	data := url.Values{}
	data.Set("username", cfg.Username)
	data.Set("to", cfg.NotifyPhone)
	data.Set("message", message)
	data.Set("from", cfg.SenderID)

	client := &http.Client{}
	req, err := http.NewRequest("POST", cfg.SMSURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create SMS request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send SMS request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}

	var smsResp SMSResponse
	if err := json.NewDecoder(resp.Body).Decode(&smsResp); err != nil {
		return fmt.Errorf("failed to decode SMS response: %w", err)
	}

	for _, r := range smsResp.SMSMessageData.Recipients {
		if r.Status != "Success" {
			return fmt.Errorf("SMS to %s not accepted: %s", r.Number, r.Status)
		}
	}

	return nil
}
