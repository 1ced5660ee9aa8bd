package usecase

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

// CartUsecase は /api/cart の業務ロジックです。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	log          *zap.Logger
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	log *zap.Logger,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		log:          log,
	}
}

// 明細＋商品のjoin結果
type CartItemWithProduct struct {
	model.CartItem
	Product model.Product `json:"product"`
}

type CartWithItemsOutput struct {
	Cart  model.Cart            `json:"cart"`
	Items []CartItemWithProduct `json:"items"`
}

type AddCartItemInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

// GetCart はカート取得（無ければ作って空で返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartWithItemsOutput, error) {
	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartWithItemsOutput{}, newInternalError()
	}

	return u.buildCartWithItems(ctx, cart)
}

// AddItem はカートに追加（同一商品は数量加算）。
// カートが無ければ作る
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, in AddCartItemInput) (model.CartItem, error) {
	if in.ProductID <= 0 {
		return model.CartItem{}, newValidationError("Invalid product id")
	}
	if in.Quantity < 1 {
		return model.CartItem{}, newValidationError("Quantity must be at least 1")
	}

	//商品の存在チェック
	if _, err := u.productRepo.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CartItem{}, newValidationError("Invalid product id")
		}
		return model.CartItem{}, newInternalError()
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return model.CartItem{}, newInternalError()
	}

	item, err := u.cartItemRepo.UpsertByCartAndProduct(ctx, cart.ID, in.ProductID, in.Quantity)
	if err != nil {
		return model.CartItem{}, newInternalError()
	}
	return item, nil
}

// UpdateItem は数量変更（所有チェック付き）。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID int64, cartItemID int64, in UpdateCartItemInput) (model.CartItem, error) {
	if cartItemID <= 0 {
		return model.CartItem{}, newValidationError("Invalid id")
	}
	if in.Quantity < 1 {
		return model.CartItem{}, newValidationError("Quantity must be at least 1")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return model.CartItem{}, newInternalError()
	}
	if !owned {
		//他人の明細は存在しない扱い
		return model.CartItem{}, newNotFoundError("Cart item not found")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CartItem{}, newNotFoundError("Cart item not found")
		}
		return model.CartItem{}, newInternalError()
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err != nil {
		return model.CartItem{}, newInternalError()
	}
	return item, nil
}

// RemoveItem は明細削除。既に消えていても404を返すだけで壊れない
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, cartItemID int64) error {
	if cartItemID <= 0 {
		return newValidationError("Invalid id")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return newInternalError()
	}
	if !owned {
		return newNotFoundError("Cart item not found")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return newNotFoundError("Cart item not found")
		}
		return newInternalError()
	}
	return nil
}

// 明細を商品とjoinする。参照先の商品が消えていたら
// データ破損なので汎用500（詳細はログのみ）
func (u *CartUsecase) buildCartWithItems(ctx context.Context, cart model.Cart) (CartWithItemsOutput, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartWithItemsOutput{}, newInternalError()
	}

	out := CartWithItemsOutput{
		Cart:  cart,
		Items: make([]CartItemWithProduct, 0, len(items)),
	}

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			u.log.Error("cart item references missing product",
				zap.Int64("cart_item_id", it.ID),
				zap.Int64("product_id", it.ProductID),
			)
			return CartWithItemsOutput{}, newIntegrityError()
		}
		if err != nil {
			return CartWithItemsOutput{}, newInternalError()
		}

		out.Items = append(out.Items, CartItemWithProduct{CartItem: it, Product: p})
	}

	return out, nil
}
