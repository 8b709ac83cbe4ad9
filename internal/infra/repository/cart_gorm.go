package repository

import (
	"context"
	"errors"
	"time"

	"tshirtshop/internal/domain/model"
	repo "tshirtshop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// buy_now=1 の明細を一覧取得
func (r *CartItemGormRepository) ListActiveByCartID(ctx context.Context, cartID string) ([]model.ShoppingCartItem, error) {
	return r.listByCartID(ctx, cartID, model.BuyNowActive)
}

// buy_now=0 の明細を一覧取得
func (r *CartItemGormRepository) ListSavedByCartID(ctx context.Context, cartID string) ([]model.ShoppingCartItem, error) {
	return r.listByCartID(ctx, cartID, model.BuyNowSaved)
}

func (r *CartItemGormRepository) listByCartID(ctx context.Context, cartID string, buyNow int16) ([]model.ShoppingCartItem, error) {
	var items []model.ShoppingCartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND buy_now = ?", cartID, buyNow).
		Order("item_id asc").
		Find(&items).Error
	if err != nil {
		return []model.ShoppingCartItem{}, err
	}
	return items, nil
}

func (r *CartItemGormRepository) FindByID(ctx context.Context, itemID int64) (model.ShoppingCartItem, error) {
	var item model.ShoppingCartItem
	err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShoppingCartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShoppingCartItem{}, err
	}
	return item, nil
}

// (cart_id, product_id) のロック付きupsert。
// 既存行があるとき、replaceQty=true なら数量を置き換え、falseなら ErrDuplicate。
// check-then-insert ではなくロック＋ユニーク制約で競合を閉じる。
func (r *CartItemGormRepository) Add(ctx context.Context, item model.ShoppingCartItem, replaceQty bool) (model.ShoppingCartItem, error) {
	var out model.ShoppingCartItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.ShoppingCartItem

		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cart_id = ? AND product_id = ?", item.CartID, item.ProductID).
			First(&existing).Error

		if findErr == nil {
			if !replaceQty {
				return repo.ErrDuplicate
			}

			res := tx.Model(&model.ShoppingCartItem{}).
				Where("item_id = ?", existing.ItemID).
				Updates(map[string]interface{}{
					"quantity":   item.Quantity,
					"attributes": item.Attributes,
				})
			if res.Error != nil {
				return res.Error
			}

			existing.Quantity = item.Quantity
			existing.Attributes = item.Attributes
			out = existing
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		//無い場合は新規作成
		item.BuyNow = model.BuyNowActive
		item.AddedOn = time.Now()
		if err := tx.Create(&item).Error; err != nil {
			//同時に同じペアが入ったらユニーク制約に当たる
			if isUniqueViolation(err) {
				return repo.ErrDuplicate
			}
			return err
		}

		out = item
		return nil
	})

	if err != nil {
		return model.ShoppingCartItem{}, err
	}
	return out, nil
}

func (r *CartItemGormRepository) UpdateQuantity(ctx context.Context, itemID int64, quantity int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.ShoppingCartItem{}).
		Where("item_id = ?", itemID).
		Update("quantity", quantity)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// buy_now の切替。
// 1に戻すときは added_on を更新、0にするときは数量を1に固定する。
func (r *CartItemGormRepository) SetBuyNow(ctx context.Context, itemID int64, buyNow int16) error {
	values := map[string]interface{}{"buy_now": buyNow}
	if buyNow == model.BuyNowActive {
		values["added_on"] = time.Now()
	} else {
		values["quantity"] = int64(1)
	}

	res := r.db.WithContext(ctx).
		Model(&model.ShoppingCartItem{}).
		Where("item_id = ?", itemID).
		Updates(values)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CartItemGormRepository) DeleteByID(ctx context.Context, itemID int64) error {
	res := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Delete(&model.ShoppingCartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// カート全消し。対象ゼロ件でも成功扱い。
func (r *CartItemGormRepository) DeleteByCartID(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.ShoppingCartItem{}).Error
}
