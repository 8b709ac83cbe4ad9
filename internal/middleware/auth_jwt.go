package middleware

import (
	"errors"
	"strconv"
	"strings"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const CtxCustomerIDKey = "customer_id" // int64

// bearerAuth用のJWT検証ミドルウェア。
// ヘッダ無し・検証失敗は AUT_02、Bearer後が空のときは AUT_01 を返す。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			customerID, appErr := customerIDFromRequest(c, cfg)
			if appErr != nil {
				return c.JSON(appErr.Status, apperr.Wrap(appErr))
			}

			//contextへ保存
			c.Set(CtxCustomerIDKey, customerID)
			return next(c)
		}
	}
}

func customerIDFromRequest(c echo.Context, cfg config.Config) (int64, *apperr.Error) {
	//Authorizationヘッダを取得
	authz := c.Request().Header.Get("Authorization")
	if authz == "" {
		return 0, apperr.New(apperr.AUT02)
	}

	//Bearer形式か確認してtokenを抜く
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, apperr.New(apperr.AUT02)
	}
	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return 0, apperr.New(apperr.AUT01)
	}

	//JWTをパースして検証する
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return 0, apperr.New(apperr.AUT02)
	}

	//claimsを取り出す
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.New(apperr.AUT02)
	}

	//customer_id（sub）を取り出す
	customerID, err := parseCustomerID(claims["sub"])
	if err != nil || customerID <= 0 {
		return 0, apperr.New(apperr.AUT02)
	}

	return customerID, nil
}

// sub を int64 に変換する
func parseCustomerID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}

// handlerからcontextのcustomer_idを読む
func CustomerIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(CtxCustomerIDKey)
	id, ok := v.(int64)
	return id, ok
}
