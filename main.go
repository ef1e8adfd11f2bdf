package main

import (
	"database/sql"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"

	"ecofinds/config"
	"ecofinds/controller"
	"ecofinds/dao"
	"ecofinds/pkg/observability"
	"ecofinds/pkg/token"
	"ecofinds/usecase"
)

func main() {
	logger := observability.Logger()
	cfg := config.Load()

	// 1. DB Connection
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		logger.Error("failed to open DB", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database", "database", cfg.MySQLDatabase)

	// 2. Dependency Injection
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authn := controller.NewAuthenticator(tokens)

	itemRepo := dao.NewItemRepository(db)
	userRepo := dao.NewUserRepository(db)
	msgRepo := dao.NewMessageRepository(db)
	txRepo := dao.NewTransactionRepository(db)

	userUsecase := usecase.NewUserUsecase(userRepo, tokens)
	itemUsecase := usecase.NewItemUsecase(itemRepo, userRepo, txRepo)
	msgUsecase := usecase.NewMessageUsecase(msgRepo)
	txUsecase := usecase.NewTransactionUsecase(txRepo)

	authController := controller.NewAuthController(userUsecase)
	userController := controller.NewUserController(userUsecase, authn)
	itemController := controller.NewItemController(itemUsecase, authn)
	msgController := controller.NewMessageController(msgUsecase, authn)
	txController := controller.NewTransactionController(txUsecase, authn)

	// 3. Routing
	http.HandleFunc("/auth/register", controller.RequestLogger(authController.HandleRegister))
	http.HandleFunc("/auth/login", controller.RequestLogger(authController.HandleLogin))
	http.HandleFunc("/users/", controller.RequestLogger(userController.HandleUsers))
	http.HandleFunc("/items", controller.RequestLogger(itemController.HandleItems))
	http.HandleFunc("/items/", controller.RequestLogger(itemController.HandleItemDetail))
	http.HandleFunc("/messages", controller.RequestLogger(msgController.HandleSend))
	http.HandleFunc("/messages/", controller.RequestLogger(msgController.HandleThread))
	http.HandleFunc("/transactions", controller.RequestLogger(txController.HandleTransactions))

	// 4. Start Server
	logger.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
