package handler

import (
	"net/http"
	"strconv"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/payment"
	"tshirtshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// usecaseのエラーを共通エンベロープにして返す。
// apperr でも payment.Error でもない予期しない失敗は COM_00 の500になる。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	if ae, ok := apperr.As(err); ok {
		return c.JSON(ae.Status, apperr.Wrap(ae))
	}

	//決済プロバイダのエラーはステータスを保ったまま同じ形に正規化する
	if pe, ok := paymentError(err); ok {
		code := pe.Code
		if code == "" {
			code = pe.Type
		}
		if code == "" {
			code = apperr.COM02.Code
		}
		return c.JSON(pe.Status, apperr.Wrap(&apperr.Error{
			Code:    code,
			Message: pe.Message,
			Status:  pe.Status,
			Field:   pe.Param,
		}))
	}

	//500
	return c.JSON(http.StatusInternalServerError, apperr.Wrap(apperr.New(apperr.COM00)))
}

func paymentError(err error) (*payment.Error, bool) {
	pe, ok := err.(*payment.Error)
	return pe, ok
}

// パスのIDを読む。数値でなければ DEP_01 系の「IDが数値でない」を返す。
func pathID(c echo.Context, name string) (int64, *apperr.Error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.New(apperr.DEP01)
	}
	return v, nil
}

// page / limit / description_length をクエリから読む
func pageInput(c echo.Context) (usecase.PageInput, *apperr.Error) {
	in := usecase.PageInput{Page: 1, Limit: 20, DescriptionLength: 200}

	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return in, apperr.WithField(apperr.COM02, "page")
		}
		in.Page = p
	}
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return in, apperr.WithField(apperr.COM02, "limit")
		}
		in.Limit = l
	}
	if v := c.QueryParam("description_length"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return in, apperr.WithField(apperr.COM02, "description_length")
		}
		in.DescriptionLength = d
	}
	return in, nil
}
