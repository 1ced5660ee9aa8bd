package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Carts() CartRepository
	CartItems() CartItemRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Products() ProductRepository
	Reviews() ReviewRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがerrorを返したら全ての変更を巻き戻す
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
