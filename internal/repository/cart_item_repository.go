package repository

import (
	"context"

	"tshirtshop/internal/domain/model"
)

type CartItemRepository interface {
	// buy_now=1 の明細
	ListActiveByCartID(ctx context.Context, cartID string) ([]model.ShoppingCartItem, error)
	// buy_now=0 の明細
	ListSavedByCartID(ctx context.Context, cartID string) ([]model.ShoppingCartItem, error)
	FindByID(ctx context.Context, itemID int64) (model.ShoppingCartItem, error)

	// (cart_id, product_id) ロック付きupsert。
	// 既存行があり replaceQty=false のときは ErrDuplicate。
	Add(ctx context.Context, item model.ShoppingCartItem, replaceQty bool) (model.ShoppingCartItem, error)

	UpdateQuantity(ctx context.Context, itemID int64, quantity int64) error
	// buy_now と added_on / quantity の切替（moveToCart / saveForLater）
	SetBuyNow(ctx context.Context, itemID int64, buyNow int16) error
	DeleteByID(ctx context.Context, itemID int64) error
	// カート全消し。対象ゼロ件でもエラーにしない。
	DeleteByCartID(ctx context.Context, cartID string) error
}
