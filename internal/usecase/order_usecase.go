package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

type OrderUsecase struct {
	tx        repo.TransactionManager
	addresses repo.AddressRepository
	log       *zap.Logger
}

func NewOrderUsecase(tx repo.TransactionManager, addresses repo.AddressRepository, log *zap.Logger) *OrderUsecase {
	return &OrderUsecase{tx: tx, addresses: addresses, log: log}
}

// 合計はサーバーが計算する。クライアントから受け取るのは
// 配送先と支払い方法だけ
type PlaceOrderInput struct {
	AddressID      int64
	PaymentMethod  string
	IdempotencyKey string
}

type OrderItemWithProduct struct {
	model.OrderItem
	Product model.Product `json:"product"`
}

type OrderDetailOutput struct {
	Order model.Order            `json:"order"`
	Items []OrderItemWithProduct `json:"items"`
}

// PlaceOrder はカートを注文へ変換する一連の処理。
// 全ステップを1トランザクションで実行し、途中で失敗したら
// 部分的な注文を残さず巻き戻す
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (OrderDetailOutput, error) {
	if in.AddressID <= 0 {
		return OrderDetailOutput{}, newValidationError("Invalid address id")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return OrderDetailOutput{}, newValidationError("Payment method is required")
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || len(key) > 255 {
		return OrderDetailOutput{}, newValidationError("Invalid idempotency key")
	}

	//address_idの存在確認＋所有チェック
	addr, err := u.addresses.FindByID(ctx, in.AddressID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderDetailOutput{}, newNotFoundError("Address not found")
		}
		return OrderDetailOutput{}, newInternalError()
	}
	//他人の住所なら403
	if addr.UserID != userID {
		return OrderDetailOutput{}, newForbiddenError()
	}

	var out OrderDetailOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら既存の注文をそのまま返す
		existing, found, err := r.Orders().FindByIdempotencyKey(ctx, userID, key)
		if err != nil {
			return newInternalError()
		}
		if found {
			out, err = u.buildOrderDetail(ctx, r, existing)
			return err
		}

		//カートと明細を取得。明細ゼロなら注文できない
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return newEmptyCartError()
		}
		if err != nil {
			return newInternalError()
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return newInternalError()
		}
		if len(cartItems) == 0 {
			return newEmptyCartError()
		}

		//合計とスナップショットを有効価格で組み立てる
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total float64

		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				u.log.Error("cart item references missing product",
					zap.Int64("cart_item_id", ci.ID),
					zap.Int64("product_id", ci.ProductID),
				)
				return newIntegrityError()
			}
			if err != nil {
				return newInternalError()
			}

			price := p.EffectivePrice()
			total += price * float64(ci.Quantity)

			orderItems = append(orderItems, model.OrderItem{
				ProductID: ci.ProductID,
				Quantity:  ci.Quantity,
				Price:     price,
			})
		}

		// 注文作成
		order, err := r.Orders().Create(ctx, model.Order{
			UserID:         userID,
			AddressID:      in.AddressID,
			TotalAmount:    total,
			Status:         model.OrderStatusPending,
			PaymentMethod:  in.PaymentMethod,
			IdempotencyKey: key,
		})
		if errors.Is(err, repo.ErrDuplicateKey) {
			//同時に同じキーが入った場合はもう一度探して同じ結果を返す
			ex2, found2, err2 := r.Orders().FindByIdempotencyKey(ctx, userID, key)
			if err2 == nil && found2 {
				out, err2 = u.buildOrderDetail(ctx, r, ex2)
				return err2
			}
			u.log.Error("order create failed", zap.Int64("user_id", userID), zap.Error(err))
			return newOrderCreationFailedError()
		}
		if err != nil {
			u.log.Error("order create failed", zap.Int64("user_id", userID), zap.Error(err))
			return newOrderCreationFailedError()
		}

		createdItems, err := r.OrderItems().CreateBulk(ctx, order.ID, orderItems)
		if err != nil {
			u.log.Error("order items create failed", zap.Int64("order_id", order.ID), zap.Error(err))
			return newOrderCreationFailedError()
		}

		//消費した明細をカートから外す。
		//並行リクエストに先に消されていたら黙ってスキップ
		for _, ci := range cartItems {
			err := r.CartItems().DeleteByID(ctx, ci.ID)
			if errors.Is(err, repo.ErrNotFound) {
				continue
			}
			if err != nil {
				u.log.Error("cart cleanup failed", zap.Int64("order_id", order.ID), zap.Error(err))
				return newOrderCreationFailedError()
			}
		}

		out = OrderDetailOutput{
			Order: order,
			Items: make([]OrderItemWithProduct, 0, len(createdItems)),
		}
		for _, it := range createdItems {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err != nil {
				return newInternalError()
			}
			out.Items = append(out.Items, OrderItemWithProduct{OrderItem: it, Product: p})
		}
		return nil
	})

	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}

// ListMyOrders は自分の注文一覧。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		orders, err = r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return newInternalError()
		}
		return nil
	})

	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

// GetMyOrderDetail は注文詳細。他人の注文は403
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, newValidationError("Invalid id")
	}

	var out OrderDetailOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return newNotFoundError("Order not found")
		}
		if err != nil {
			return newInternalError()
		}
		if o.UserID != userID {
			return newForbiddenError()
		}

		out, err = u.buildOrderDetail(ctx, r, o)
		return err
	})

	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) buildOrderDetail(ctx context.Context, r repo.TxRepos, o model.Order) (OrderDetailOutput, error) {
	items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderDetailOutput{}, newInternalError()
	}

	out := OrderDetailOutput{
		Order: o,
		Items: make([]OrderItemWithProduct, 0, len(items)),
	}

	for _, it := range items {
		p, err := r.Products().FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			u.log.Error("order item references missing product",
				zap.Int64("order_item_id", it.ID),
				zap.Int64("product_id", it.ProductID),
			)
			return OrderDetailOutput{}, newIntegrityError()
		}
		if err != nil {
			return OrderDetailOutput{}, newInternalError()
		}
		out.Items = append(out.Items, OrderItemWithProduct{OrderItem: it, Product: p})
	}

	return out, nil
}
