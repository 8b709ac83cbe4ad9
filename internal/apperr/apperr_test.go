package apperr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DoesNotMutateKind(t *testing.T) {
	//Kindは台帳なので、生成したErrorをいじっても定義は変わらない
	e := New(COM01)
	e.Field = "cart_id"
	e.Message = "changed"

	assert.Equal(t, "", COM01.Field)
	assert.Equal(t, "The field is required", COM01.Message)

	e2 := New(COM01)
	assert.Equal(t, "", e2.Field)
	assert.Equal(t, "The field is required", e2.Message)
}

func TestWithField(t *testing.T) {
	e := WithField(COM01, "cart_id")
	assert.Equal(t, "COM_01", e.Code)
	assert.Equal(t, "cart_id", e.Field)
	assert.Equal(t, http.StatusBadRequest, e.Status)

	//USR_07だけfield名がmessageの頭に付く
	e = WithField(USR07, "name")
	assert.Equal(t, "name is too long", e.Message)
	assert.Equal(t, "name", e.Field)
}

func TestWithMessageAndStatus(t *testing.T) {
	e := WithMessage(COM02, "The quantity must be positive")
	assert.Equal(t, "COM_02", e.Code)
	assert.Equal(t, "The quantity must be positive", e.Message)
	assert.Equal(t, http.StatusBadRequest, e.Status)

	e = WithStatus(COM02, "Record not found", http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, e.Status)

	//status=0は既定のまま
	e = WithStatus(COM02, "x", 0)
	assert.Equal(t, http.StatusBadRequest, e.Status)
}

func TestWrap_Envelope(t *testing.T) {
	b, err := json.Marshal(Wrap(New(SHP01)))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"SHP_01","message":"Don't exist shoppingCart with this cart_id","status":404}}`, string(b))

	//fieldは空なら出さない
	b, err = json.Marshal(Wrap(WithField(COM01, "quantity")))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"COM_01","message":"The field is required","status":400,"field":"quantity"}}`, string(b))
}

func TestAs(t *testing.T) {
	e, ok := As(New(PRO01))
	assert.True(t, ok)
	assert.Equal(t, "PRO_01", e.Code)

	//wrapされていても辿れる
	wrapped := fmt.Errorf("usecase: %w", New(ORD01))
	e, ok = As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "ORD_01", e.Code)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
