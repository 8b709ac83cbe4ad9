package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const stripeAPIURL = "https://api.stripe.com/v1"

// Stripe REST APIのクライアント。リトライはしない（失敗はそのまま返す）。
type StripeClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewStripeClient(apiKey string) *StripeClient {
	return &StripeClient{
		apiKey:  apiKey,
		baseURL: stripeAPIURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// テスト用にエンドポイントを差し替える
func NewStripeClientWithBaseURL(apiKey string, baseURL string) *StripeClient {
	c := NewStripeClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Stripeのエラーレスポンス {"error": {...}}
type stripeErrorBody struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Param   string `json:"param"`
		Message string `json:"message"`
	} `json:"error"`
}

// カードに課金する。
func (c *StripeClient) Charge(ctx context.Context, in ChargeInput) (Receipt, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(in.Amount, 10))
	form.Set("currency", in.Currency)
	form.Set("source", in.Token)
	form.Set("description", in.Description)
	form.Set("metadata[order_id]", strconv.FormatInt(in.OrderID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/charges", strings.NewReader(form.Encode()))
	if err != nil {
		return Receipt{}, &Error{Message: "There is something wrong", Status: http.StatusInternalServerError}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		//ネットワーク断はプロバイダ到達不能として返す
		return Receipt{}, &Error{Message: "Network communication with Stripe failed", Status: http.StatusBadGateway}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Receipt{}, &Error{Message: "There is something wrong", Status: http.StatusInternalServerError}
	}

	if resp.StatusCode >= 400 {
		return Receipt{}, translateError(resp.StatusCode, body)
	}

	var receipt Receipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return Receipt{}, &Error{Message: "There is something wrong", Status: http.StatusInternalServerError}
	}
	return receipt, nil
}

// プロバイダの失敗分類をドメインエラーへ写す。
// 生のエラーはここで全部受け止める。
func translateError(status int, body []byte) *Error {
	var parsed stripeErrorBody
	_ = json.Unmarshal(body, &parsed)
	e := parsed.Error

	switch {
	case e.Type == "card_error":
		//カード拒否。プロバイダの説明をそのまま返す
		return &Error{
			Message: e.Message,
			Status:  status,
			Type:    e.Type,
			Code:    e.Code,
			Param:   e.Param,
		}
	case status == http.StatusTooManyRequests:
		return &Error{Message: "Too many requests made to the API too quickly", Status: status}
	case e.Type == "invalid_request_error":
		return &Error{Message: e.Message, Status: status, Type: e.Type}
	case status == http.StatusUnauthorized:
		return &Error{Message: "Invalid API Key", Status: status}
	case e.Type != "":
		return &Error{Message: e.Message, Status: status, Type: e.Type}
	default:
		return &Error{Message: "There is something wrong", Status: http.StatusInternalServerError}
	}
}

var _ Charger = (*StripeClient)(nil)

// Webhookエンドポイント登録（起動時のセットアップ用）
func (c *StripeClient) CreateWebhookEndpoint(ctx context.Context, endpointURL string, enabledEvents []string) error {
	form := url.Values{}
	form.Set("url", endpointURL)
	for i, ev := range enabledEvents {
		form.Set(fmt.Sprintf("enabled_events[%d]", i), ev)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/webhook_endpoints", strings.NewReader(form.Encode()))
	if err != nil {
		return &Error{Message: "There is something wrong", Status: http.StatusInternalServerError}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Message: "Network communication with Stripe failed", Status: http.StatusBadGateway}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return translateError(resp.StatusCode, body)
	}
	return nil
}
