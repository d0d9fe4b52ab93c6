package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"CryptoTradeAgent/config"
	"CryptoTradeAgent/internal/agent"
	"CryptoTradeAgent/internal/models"
	"CryptoTradeAgent/internal/operations/binance"
	"CryptoTradeAgent/internal/operations/marketdata"
	"CryptoTradeAgent/internal/operations/persistence"
	"CryptoTradeAgent/internal/repositories"
	"CryptoTradeAgent/internal/services/execution"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	agentConfigs, err := cfg.AgentConfigs()
	if err != nil {
		log.Fatal("Invalid agent configuration:", err)
	}

	// Persistence is optional for simulated runs without a database
	store, botRepo := setupStore(cfg.Database)

	// Shared live-mode client
	var binanceClient *binance.Client
	if cfg.Mode == models.ModeLive {
		binanceClient = binance.NewClient(cfg.Exchange.APIKey, cfg.Exchange.SecretKey)
	}

	// Build one agent per configured pair
	runners := make([]agent.Runner, 0, len(agentConfigs))
	for i, ac := range agentConfigs {
		var source marketdata.Source
		var adapter execution.Adapter

		if ac.Mode == models.ModeLive {
			source = marketdata.NewBinanceSource(binanceClient)
			adapter = execution.NewLiveAdapter(binanceClient, ac.Pair)
		} else {
			source = marketdata.NewSyntheticSource(cfg.SyntheticSeed+int64(i), cfg.BasePrice, cfg.Volatility)
			adapter = execution.NewSimulatedAdapter(ac.Spread, ac.Slippage)
		}

		a, err := agent.New(ac, source, adapter, store)
		if err != nil {
			log.Fatalf("Failed to build agent %s: %v", ac.ID, err)
		}

		if botRepo != nil {
			bot := &models.Bot{
				AgentID:        ac.ID,
				Pair:           ac.Pair,
				Mode:           ac.Mode,
				Timeframe:      ac.Timeframe,
				InitialBalance: ac.InitialBalance,
			}
			if err := botRepo.Register(bot); err != nil {
				log.Printf("Error registering agent %s: %v", ac.ID, err)
			}
		}

		runners = append(runners, a)
	}

	// Run until interrupted; agents also stop on their own when halted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Supervising %d agent(s)...", len(runners))
	agent.NewSupervisor(runners...).Run(ctx)

	log.Println("Shutdown complete")
}

func setupStore(dbConfig config.DatabaseConfig) (persistence.Store, *repositories.BotRepository) {
	if dbConfig.Host == "" {
		log.Println("No database configured, running without persistence")
		return persistence.NewNullStore(), nil
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto migrate database schemas
	err = db.AutoMigrate(&models.Bot{}, &models.Trade{}, &models.Candle{}, &models.Performance{})
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	tradeRepo := repositories.NewTradeRepository(db)
	perfRepo := repositories.NewPerformanceRepository(db)
	candleRepo := repositories.NewCandleRepository(db)

	return persistence.NewDBStore(tradeRepo, perfRepo, candleRepo), repositories.NewBotRepository(db)
}
