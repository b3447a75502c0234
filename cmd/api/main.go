package main

import (
	"github.com/joho/godotenv"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/config"
	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
	"github.com/jzProg/nd035-c4-ecommence-app/internal/handler"
	"github.com/jzProg/nd035-c4-ecommence-app/internal/infra/db"
	infraRepo "github.com/jzProg/nd035-c4-ecommence-app/internal/infra/repository"
	"github.com/jzProg/nd035-c4-ecommence-app/internal/logger"
	"github.com/jzProg/nd035-c4-ecommence-app/internal/server"
	"github.com/jzProg/nd035-c4-ecommence-app/internal/usecase"
)

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.GoEnv)

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Cart{},
		&model.CartEntry{},
		&model.UserOrder{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	//商品マスタの初期データ
	if err := db.SeedItems(gormDB); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//bcrypt（会員登録）
	hasher := usecase.NewBcryptPasswordHasher(12)

	//Usecase生成
	userUC := usecase.NewUserUsecase(txManager, userRepo, hasher)
	itemUC := usecase.NewItemUsecase(itemRepo)
	cartUC := usecase.NewCartUsecase(txManager)
	orderUC := usecase.NewOrderUsecase(txManager, cfg.OrderClearCart)

	//Handler生成
	userH := handler.NewUserHandler(userUC)
	itemH := handler.NewItemHandler(itemUC)
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(log, userH, itemH, cartH, orderH)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting server")

	if err := server.Start(e, addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
