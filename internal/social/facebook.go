// Package social はソーシャルログイン（Facebook）のトークン検証。
// Usecase には TokenVerifier だけを渡す。
package social

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"
)

// アクセストークンが正しければ持ち主のプロフィールを返す約束
type TokenVerifier interface {
	Verify(ctx context.Context, accessToken string) (Identity, error)
}

// プロバイダから取れる最低限のプロフィール
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var ErrInvalidToken = errors.New("invalid access token")

const graphAPIURL = "https://graph.facebook.com"

// Graph API /me を叩く実装
type FacebookVerifier struct {
	baseURL string
	httpc   *http.Client
}

func NewFacebookVerifier() *FacebookVerifier {
	return &FacebookVerifier{
		baseURL: graphAPIURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// テスト用にエンドポイントを差し替える
func NewFacebookVerifierWithBaseURL(baseURL string) *FacebookVerifier {
	v := NewFacebookVerifier()
	v.baseURL = baseURL
	return v
}

func (v *FacebookVerifier) Verify(ctx context.Context, accessToken string) (Identity, error) {
	q := url.Values{}
	q.Set("fields", "id,name,email")
	q.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/me?"+q.Encode(), nil)
	if err != nil {
		return Identity{}, err
	}

	resp, err := v.httpc.Do(req)
	if err != nil {
		return Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, ErrInvalidToken
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return Identity{}, ErrInvalidToken
	}
	if id.ID == "" {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}

var _ TokenVerifier = (*FacebookVerifier)(nil)
