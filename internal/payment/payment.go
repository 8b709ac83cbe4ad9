// Package payment は決済プロバイダ（Stripe）の薄いアダプタ。
// 業務ロジックには Charger だけを渡し、実装はテストで差し替えられるようにする。
package payment

import "context"

// チャージ入力
type ChargeInput struct {
	// プロバイダ発行のカードトークン（tok_xxx）
	Token       string
	OrderID     int64
	Description string
	// 最小通貨単位（USDならセント）
	Amount   int64
	Currency string
}

// チャージ結果
type Receipt struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
	Paid               bool   `json:"paid"`
	BalanceTransaction string `json:"balance_transaction"`
}

// 決済の約束。失敗は必ず *Error で返る。
type Charger interface {
	Charge(ctx context.Context, in ChargeInput) (Receipt, error)
}

// プロバイダ由来の失敗。生の例外は外に漏らさない。
type Error struct {
	Message string `json:"message"`
	// HTTP相当のステータス
	Status int `json:"status"`
	// プロバイダ側の type / code / param（あれば）
	Type  string `json:"type,omitempty"`
	Code  string `json:"code,omitempty"`
	Param string `json:"param,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}
