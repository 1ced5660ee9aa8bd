package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminOrderUsecase struct {
	tx repo.TransactionManager
}

func NewAdminOrderUsecase(tx repo.TransactionManager) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx}
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

type AdminOrderListOutput struct {
	Orders []model.Order `json:"orders"`
	Total  int64         `json:"total"`
}

// 許可するステータス遷移。DELIVERED/CANCELLEDは終端
var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:    {model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusProcessing: {model.OrderStatusShipped, model.OrderStatusCancelled},
	model.OrderStatusShipped:    {model.OrderStatusDelivered},
}

func canTransition(from, to model.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// 注文一覧（管理者用）
func (u *AdminOrderUsecase) List(ctx context.Context, f repo.AdminOrderListFilter) (AdminOrderListOutput, error) {
	var out AdminOrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListAdmin(ctx, f)
		if err != nil {
			return newInternalError()
		}
		out = AdminOrderListOutput{Orders: orders, Total: total}
		return nil
	})

	if err != nil {
		return AdminOrderListOutput{}, err
	}
	return out, nil
}

// ステータス更新
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, in AdminUpdateOrderStatusInput) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, newValidationError("Invalid id")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(in.Status))
	switch newStatus {
	case model.OrderStatusPending, model.OrderStatusProcessing,
		model.OrderStatusShipped, model.OrderStatusDelivered, model.OrderStatusCancelled:
		// OK
	default:
		return model.Order{}, newValidationError("Invalid status")
	}

	var out model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return newNotFoundError("Order not found")
		}
		if err != nil {
			return newInternalError()
		}

		// すでに同じなら何もしない（200）
		if o.Status == newStatus {
			out = o
			return nil
		}

		if !canTransition(o.Status, newStatus) {
			return newValidationError("Invalid status transition")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, newStatus); err != nil {
			return newInternalError()
		}

		o.Status = newStatus
		out = o
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}
