// Package apperr はAPI全体のエラー台帳。
// Kind は不変の定義で、リクエストごとに Error を値として組み立てる。
// 共有インスタンスを書き換える方式は並行リクエストで壊れるので採らない。
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// エラー種別の定義（code / message / HTTPステータス / 既定のfield）
type Kind struct {
	Code    string
	Message string
	Status  int
	Field   string
}

var (
	// 認証
	AUT01 = Kind{Code: "AUT_01", Message: "Authorization code is empty", Status: http.StatusBadRequest}
	AUT02 = Kind{Code: "AUT_02", Message: "Access Unauthorized", Status: http.StatusUnauthorized}

	// ページング
	PAG01 = Kind{Code: "PAG_01", Message: "The order is not matched 'field,(DESC|ASC)'", Status: http.StatusBadRequest}
	PAG02 = Kind{Code: "PAG_02", Message: "The field of order is not allow sorting", Status: http.StatusBadRequest}

	// 顧客
	USR01 = Kind{Code: "USR_01", Message: "Email or Password is invalid", Status: http.StatusBadRequest}
	USR02 = Kind{Code: "USR_02", Message: "The field(s) are/is required", Status: http.StatusBadRequest}
	USR03 = Kind{Code: "USR_03", Message: "The email is invalid", Status: http.StatusBadRequest, Field: "email"}
	USR04 = Kind{Code: "USR_04", Message: "The email already exists", Status: http.StatusBadRequest, Field: "email"}
	USR05 = Kind{Code: "USR_05", Message: "The email doesn't exist", Status: http.StatusNotFound, Field: "email"}
	USR06 = Kind{Code: "USR_06", Message: "This is an invalid phone number", Status: http.StatusBadRequest, Field: "phone"}
	USR07 = Kind{Code: "USR_07", Message: " is too long", Status: http.StatusBadRequest}
	USR08 = Kind{Code: "USR_08", Message: "This is an invalid Credit Card", Status: http.StatusBadRequest, Field: "credit_card"}
	USR09 = Kind{Code: "USR_09", Message: "The Shipping Region ID is not number", Status: http.StatusBadRequest, Field: "shipping_region"}
	USR10 = Kind{Code: "USR_10", Message: "You must login first", Status: http.StatusBadRequest}

	// カタログ
	CAT01 = Kind{Code: "CAT_01", Message: "Don't exist category with this ID", Status: http.StatusNotFound}
	DEP01 = Kind{Code: "DEP_01", Message: "The ID is not a number", Status: http.StatusBadRequest, Field: "id"}
	DEP02 = Kind{Code: "DEP_02", Message: "Don't exist department with this ID", Status: http.StatusNotFound}
	PRO01 = Kind{Code: "PRO_01", Message: "Don't exist product with this ID", Status: http.StatusNotFound}

	// 注文
	ORD01 = Kind{Code: "ORD_01", Message: "Don't exist order with this ID", Status: http.StatusNotFound}
	ORD02 = Kind{Code: "ORD_02", Message: "Don't exist order detail with this ID", Status: http.StatusNotFound}

	// カート
	SHP01 = Kind{Code: "SHP_01", Message: "Don't exist shoppingCart with this cart_id", Status: http.StatusNotFound}

	// 共通
	COM00 = Kind{Code: "COM_00", Message: "There is something wrong", Status: http.StatusInternalServerError}
	COM01 = Kind{Code: "COM_01", Message: "The field is required", Status: http.StatusBadRequest}
	COM02 = Kind{Code: "COM_02", Message: "Invalid Data", Status: http.StatusBadRequest}
	COM10 = Kind{Code: "COM_10", Message: "The record already exists", Status: http.StatusBadRequest}
)

// 1回の失敗を表す値。Kindから作り、動的な message / field はここに載せる。
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Field   string `json:"field,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Kindからエラー値を作る
func New(k Kind) *Error {
	return &Error{Code: k.Code, Message: k.Message, Status: k.Status, Field: k.Field}
}

// field付きで作る。USR_07だけ message の頭に field 名が付く。
func WithField(k Kind, field string) *Error {
	e := New(k)
	e.Field = field
	if k.Code == "USR_07" {
		e.Message = field + k.Message
	}
	return e
}

// messageを差し替えて作る（プロバイダ由来のメッセージなど）
func WithMessage(k Kind, message string) *Error {
	e := New(k)
	e.Message = message
	return e
}

// ステータスも含めて自由に組む（決済プロバイダのエラー変換用）
func WithStatus(k Kind, message string, status int) *Error {
	e := WithMessage(k, message)
	if status > 0 {
		e.Status = status
	}
	return e
}

// handlerが返すエンベロープ {"error": {...}}
type Envelope struct {
	Err Error `json:"error"`
}

func Wrap(e *Error) Envelope {
	return Envelope{Err: *e}
}

// errors.As の薄いラッパ
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
