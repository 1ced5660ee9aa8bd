// Package memory はrepositoryインターフェース一式のインメモリ実装。
// テストダブル兼、DBなしで動かすためのエンティティストア。
package memory

import (
	"sync"

	"app/internal/domain/model"
)

// エンティティごとのマップと採番カウンタ。
// IDは型ごとに1始まりの単調増加。削除しても再利用しない
type state struct {
	users      map[int64]model.User
	categories map[int64]model.Category
	products   map[int64]model.Product
	carts      map[int64]model.Cart
	cartItems  map[int64]model.CartItem
	orders     map[int64]model.Order
	orderItems map[int64]model.OrderItem
	reviews    map[int64]model.Review
	banners    map[int64]model.Banner
	addresses  map[int64]model.Address

	//1ユーザー1カートの明示インデックス（userID → cartID）
	cartByUser map[int64]int64

	nextUserID      int64
	nextCategoryID  int64
	nextProductID   int64
	nextCartID      int64
	nextCartItemID  int64
	nextOrderID     int64
	nextOrderItemID int64
	nextReviewID    int64
	nextBannerID    int64
	nextAddressID   int64
}

func newState() *state {
	return &state{
		users:      map[int64]model.User{},
		categories: map[int64]model.Category{},
		products:   map[int64]model.Product{},
		carts:      map[int64]model.Cart{},
		cartItems:  map[int64]model.CartItem{},
		orders:     map[int64]model.Order{},
		orderItems: map[int64]model.OrderItem{},
		reviews:    map[int64]model.Review{},
		banners:    map[int64]model.Banner{},
		addresses:  map[int64]model.Address{},

		cartByUser: map[int64]int64{},

		nextUserID:      1,
		nextCategoryID:  1,
		nextProductID:   1,
		nextCartID:      1,
		nextCartItemID:  1,
		nextOrderID:     1,
		nextOrderItemID: 1,
		nextReviewID:    1,
		nextBannerID:    1,
		nextAddressID:   1,
	}
}

// トランザクションのロールバック用スナップショット。
// エンティティは値型なのでマップのコピーで足りる
func (s *state) clone() *state {
	c := *s

	c.users = copyMap(s.users)
	c.categories = copyMap(s.categories)
	c.products = copyMap(s.products)
	c.carts = copyMap(s.carts)
	c.cartItems = copyMap(s.cartItems)
	c.orders = copyMap(s.orders)
	c.orderItems = copyMap(s.orderItems)
	c.reviews = copyMap(s.reviews)
	c.banners = copyMap(s.banners)
	c.addresses = copyMap(s.addresses)
	c.cartByUser = copyMap(s.cartByUser)

	return &c
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func nextID(counter *int64) int64 {
	id := *counter
	*counter++
	return id
}

// Store は全repositoryが共有するインメモリ状態。
// 各repositoryメソッドはmuで直列化される
type Store struct {
	mu sync.Mutex
	st *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

// トランザクション中はmuを握ったまま動くため、
// tx内のrepoにはロックしないlockerを渡す
type locker interface {
	Lock()
	Unlock()
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

func (s *Store) Users() *UserMemoryRepository {
	return &UserMemoryRepository{s: s, lk: &s.mu}
}

func (s *Store) Categories() *CategoryMemoryRepository {
	return &CategoryMemoryRepository{s: s, lk: &s.mu}
}

func (s *Store) Products() *ProductMemoryRepository {
	return &ProductMemoryRepository{s: s, lk: &s.mu}
}

func (s *Store) Carts() *CartMemoryRepository {
	return &CartMemoryRepository{s: s, lk: &s.mu}
}

func (s *Store) CartItems() *CartItemMemoryRepository {
	return &CartItemMemoryRepository{s: s, lk: &s.mu}
}

func (s *Store) Orders() *OrderMemoryRepository {
	return &OrderMemoryRepository{s: s, lk: &s.mu}
}

func (s *Store) OrderItems() *OrderItemMemoryRepository {
	return &OrderItemMemoryRepository{s: s, lk: &s.mu}
}

func (s *Store) Reviews() *ReviewMemoryRepository {
	return &ReviewMemoryRepository{s: s, lk: &s.mu}
}

func (s *Store) Banners() *BannerMemoryRepository {
	return &BannerMemoryRepository{s: s, lk: &s.mu}
}

func (s *Store) Addresses() *AddressMemoryRepository {
	return &AddressMemoryRepository{s: s, lk: &s.mu}
}
