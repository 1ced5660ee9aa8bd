package main

import (
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/memory"
	infraRepo "app/internal/infra/repository"
	"app/internal/logger"
	"app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 24 * time.Hour,
	}
}

func (i *jwtIssuer) Issue(userID int64, isAdmin bool, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(userID, 10),
		"is_admin": isAdmin,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ストレージ実装ごとのrepository一式
type repoSet struct {
	tx repository.TransactionManager

	users      repository.UserRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	carts      repository.CartRepository
	cartItems  repository.CartItemRepository
	orders     repository.OrderRepository
	orderItems repository.OrderItemRepository
	reviews    repository.ReviewRepository
	banners    repository.BannerRepository
	addresses  repository.AddressRepository
}

func buildMemoryRepos() repoSet {
	store := memory.NewStore()
	return repoSet{
		tx:         memory.NewTxManagerMemory(store),
		users:      store.Users(),
		categories: store.Categories(),
		products:   store.Products(),
		carts:      store.Carts(),
		cartItems:  store.CartItems(),
		orders:     store.Orders(),
		orderItems: store.OrderItems(),
		reviews:    store.Reviews(),
		banners:    store.Banners(),
		addresses:  store.Addresses(),
	}
}

func buildPostgresRepos(cfg config.Config) (repoSet, error) {
	gormDB, err := db.Connect(cfg)
	if err != nil {
		return repoSet{}, err
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
		&model.Banner{},
		&model.Address{},
	); err != nil {
		return repoSet{}, err
	}

	return repoSet{
		tx:         infraRepo.NewTxManagerGorm(gormDB),
		users:      infraRepo.NewUserGormRepository(gormDB),
		categories: infraRepo.NewCategoryGormRepository(gormDB),
		products:   infraRepo.NewProductGormRepository(gormDB),
		carts:      infraRepo.NewCartGormRepository(gormDB),
		cartItems:  infraRepo.NewCartItemGormRepository(gormDB),
		orders:     infraRepo.NewOrderGormRepository(gormDB),
		orderItems: infraRepo.NewOrderItemGormRepository(gormDB),
		reviews:    infraRepo.NewReviewGormRepository(gormDB),
		banners:    infraRepo.NewBannerGormRepository(gormDB),
		addresses:  infraRepo.NewAddressGormRepository(gormDB),
	}, nil
}

func main() {
	// .envがあれば読む（無くても環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	//Repository生成（STORAGEで切り替え）
	var repos repoSet
	switch cfg.Storage {
	case config.StoragePostgres:
		repos, err = buildPostgresRepos(cfg)
		if err != nil {
			log.Fatal("failed to init postgres storage", zap.Error(err))
		}
	default:
		repos = buildMemoryRepos()
	}

	//usecaseに渡す部品
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(repos.users, hasher, clock)
	loginUC := auth.NewLoginUsecase(repos.users, verifier, issuer, clock)

	productUC := usecase.NewProductUsecase(repos.products)
	categoryUC := usecase.NewCategoryUsecase(repos.categories)
	bannerUC := usecase.NewBannerUsecase(repos.banners)
	cartUC := usecase.NewCartUsecase(repos.carts, repos.cartItems, repos.products, log)
	orderUC := usecase.NewOrderUsecase(repos.tx, repos.addresses, log)
	reviewUC := usecase.NewReviewUsecase(repos.tx, repos.reviews, repos.users, log)
	addressUC := usecase.NewAddressUsecase(repos.addresses)
	adminOrderUC := usecase.NewAdminOrderUsecase(repos.tx)

	//Handler生成
	deps := server.Deps{
		Cfg: cfg,

		Auth:         handler.NewAuthHandler(registerUC, loginUC, repos.users),
		Product:      handler.NewProductHandler(productUC),
		Category:     handler.NewCategoryHandler(categoryUC),
		Banner:       handler.NewBannerHandler(bannerUC),
		Cart:         handler.NewCartHandler(cartUC),
		Order:        handler.NewOrderHandler(orderUC),
		Review:       handler.NewReviewHandler(reviewUC),
		Address:      handler.NewAddressHandler(addressUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC),
	}

	//Server起動
	e := server.New(deps)

	addr := cfg.Port
	if addr == "" {
		addr = "8080"
	}
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.Info("starting server", zap.String("addr", addr), zap.String("storage", cfg.Storage))
	if err := server.Start(e, addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
