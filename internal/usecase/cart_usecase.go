package usecase

import (
	"context"
	"errors"
	"strings"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/domain/model"
	repo "tshirtshop/internal/repository"

	"github.com/shopspring/decimal"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// CartUsecase は /shoppingcart の業務ロジック。
// カートは実体を持たず、cart_id 文字列を知っている者がそのカートを操作できる
// （capability方式。セキュリティ境界として使うならこの点に注意）。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	idGen        IDGenerator
}

func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	idGen IDGenerator,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		idGen:        idGen,
	}
}

type AddItemInput struct {
	CartID     string
	ProductID  int64
	Attributes string
	// 省略時は1。省略して同じ商品を二度入れると重複エラー。
	Quantity *int64
}

// カート明細に商品の表示項目を合成したレスポンス
type CartItemResponse struct {
	ItemID     int64           `json:"item_id"`
	CartID     string          `json:"cart_id"`
	ProductID  int64           `json:"product_id"`
	Name       string          `json:"name"`
	Attributes string          `json:"attributes"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
	Image      string          `json:"image"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	BuyNow     int16           `json:"buy_now"`
}

// 新しいカートIDを発行する。永続化はしない。
// 最初の明細が追加された時点でカートとして実在し始める。
func (u *CartUsecase) GenerateCartID() string {
	return u.idGen.NewID()
}

// カートに商品を追加する。
func (u *CartUsecase) AddItem(ctx context.Context, in AddItemInput) (CartItemResponse, error) {
	if strings.TrimSpace(in.CartID) == "" {
		return CartItemResponse{}, apperr.WithField(apperr.COM01, "cart_id")
	}
	if in.ProductID <= 0 {
		return CartItemResponse{}, apperr.WithField(apperr.COM01, "product_id")
	}
	if strings.TrimSpace(in.Attributes) == "" {
		return CartItemResponse{}, apperr.WithField(apperr.COM01, "attributes")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartItemResponse{}, apperr.New(apperr.PRO01)
	}
	if err != nil {
		return CartItemResponse{}, apperr.New(apperr.COM00)
	}

	qty := int64(1)
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return CartItemResponse{}, apperr.WithMessage(apperr.COM02, "The quantity must be positive")
		}
		qty = *in.Quantity
	}

	item := model.ShoppingCartItem{
		CartID:     in.CartID,
		ProductID:  in.ProductID,
		Attributes: in.Attributes,
		Quantity:   qty,
	}

	// quantityが明示されている場合だけ既存行の数量を置き換える
	created, err := u.cartItemRepo.Add(ctx, item, in.Quantity != nil)
	if errors.Is(err, repo.ErrDuplicate) {
		return CartItemResponse{}, apperr.WithField(apperr.COM10, "product_id")
	}
	if err != nil {
		return CartItemResponse{}, apperr.New(apperr.COM00)
	}

	return toCartItemResponse(created, p), nil
}

// 買い物中（buy_now=1）の明細一覧。カートが空ならNotFound。
func (u *CartUsecase) ListItems(ctx context.Context, cartID string) ([]CartItemResponse, error) {
	items, err := u.cartItemRepo.ListActiveByCartID(ctx, cartID)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	if len(items) == 0 {
		return nil, apperr.New(apperr.SHP01)
	}
	return u.resolveProducts(ctx, items)
}

type UpdateQuantityInput struct {
	Quantity *int64
}

// 明細の数量を変更する。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, itemID int64, in UpdateQuantityInput) (CartItemResponse, error) {
	if in.Quantity == nil {
		return CartItemResponse{}, apperr.WithField(apperr.COM01, "quantity")
	}
	if *in.Quantity < 1 {
		return CartItemResponse{}, apperr.WithMessage(apperr.COM02, "The quantity must be positive")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, itemID, *in.Quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartItemResponse{}, apperr.New(apperr.SHP01)
		}
		return CartItemResponse{}, apperr.New(apperr.COM00)
	}

	item, err := u.cartItemRepo.FindByID(ctx, itemID)
	if err != nil {
		return CartItemResponse{}, apperr.New(apperr.COM00)
	}
	p, err := u.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return CartItemResponse{}, apperr.New(apperr.COM00)
	}
	return toCartItemResponse(item, p), nil
}

// カートを空にする。存在しないカートでも成功扱い（冪等）。
func (u *CartUsecase) EmptyCart(ctx context.Context, cartID string) error {
	if err := u.cartItemRepo.DeleteByCartID(ctx, cartID); err != nil {
		return apperr.New(apperr.COM00)
	}
	return nil
}

// 明細を1件削除する。
func (u *CartUsecase) RemoveItem(ctx context.Context, itemID int64) error {
	err := u.cartItemRepo.DeleteByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return apperr.New(apperr.SHP01)
	}
	if err != nil {
		return apperr.New(apperr.COM00)
	}
	return nil
}

// 「あとで買う」から買い物中へ戻す。added_on も入れ直す。
func (u *CartUsecase) MoveToCart(ctx context.Context, itemID int64) error {
	err := u.cartItemRepo.SetBuyNow(ctx, itemID, model.BuyNowActive)
	if errors.Is(err, repo.ErrNotFound) {
		return apperr.New(apperr.SHP01)
	}
	if err != nil {
		return apperr.New(apperr.COM00)
	}
	return nil
}

// 買い物中から「あとで買う」へ。数量は1に固定される。
func (u *CartUsecase) SaveForLater(ctx context.Context, itemID int64) error {
	err := u.cartItemRepo.SetBuyNow(ctx, itemID, model.BuyNowSaved)
	if errors.Is(err, repo.ErrNotFound) {
		return apperr.New(apperr.SHP01)
	}
	if err != nil {
		return apperr.New(apperr.COM00)
	}
	return nil
}

// 「あとで買う」の明細一覧。空でもエラーにしない。
func (u *CartUsecase) GetSaved(ctx context.Context, cartID string) ([]CartItemResponse, error) {
	items, err := u.cartItemRepo.ListSavedByCartID(ctx, cartID)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	return u.resolveProducts(ctx, items)
}

type TotalAmountOutput struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// 買い物中の全明細の合計（quantity × 単価）。
func (u *CartUsecase) TotalAmount(ctx context.Context, cartID string) (TotalAmountOutput, error) {
	items, err := u.cartItemRepo.ListActiveByCartID(ctx, cartID)
	if err != nil {
		return TotalAmountOutput{}, apperr.New(apperr.COM00)
	}

	total := decimal.Zero
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			return TotalAmountOutput{}, apperr.New(apperr.COM00)
		}
		total = total.Add(p.UnitPrice().Mul(decimal.NewFromInt(it.Quantity)))
	}
	return TotalAmountOutput{TotalAmount: total}, nil
}

func (u *CartUsecase) resolveProducts(ctx context.Context, items []model.ShoppingCartItem) ([]CartItemResponse, error) {
	out := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, apperr.New(apperr.COM00)
		}
		out = append(out, toCartItemResponse(it, p))
	}
	return out, nil
}

func toCartItemResponse(it model.ShoppingCartItem, p model.Product) CartItemResponse {
	unit := p.UnitPrice()
	return CartItemResponse{
		ItemID:     it.ItemID,
		CartID:     it.CartID,
		ProductID:  it.ProductID,
		Name:       p.Name,
		Attributes: it.Attributes,
		Price:      unit,
		Quantity:   it.Quantity,
		Image:      p.Image,
		Subtotal:   unit.Mul(decimal.NewFromInt(it.Quantity)),
		BuyNow:     it.BuyNow,
	}
}
