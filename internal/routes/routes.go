// Package routes defines the API routing configuration. It wires the
// repositories, cache and ledger service and registers all HTTP routes.
package routes

import (
	"wallet/internal/config"
	"wallet/internal/handlers"
	"wallet/internal/repositories"
	"wallet/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, redisClient *redis.Client) {
	walletRepo := repositories.NewWalletRepository(db)
	walletCache := repositories.NewWalletCache(redisClient)

	ledgerService := ledger.NewService(
		walletRepo,
		walletCache,
		config.LoadSupportedCurrencies(),
		config.LoadLimits(),
		nil,
	)

	walletHandler := handlers.NewWalletHandler(ledgerService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	bankCallbackHandler := handlers.NewBankCallbackHandler(ledgerService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api/v1")

	wallet := api.Group("/wallet")
	wallet.Post("/", walletHandler.CreateWallet)
	wallet.Post("/deposit", walletHandler.Deposit)
	wallet.Post("/withdraw", walletHandler.Withdraw)
	wallet.Get("/:walletId/customer/:customerId", walletHandler.GetWalletDetails)

	api.Get("/transactions/all", transactionHandler.ListTransactions)

	api.Post("/external/banking/notify-transfer-status", bankCallbackHandler.NotifyTransferStatus)
}
