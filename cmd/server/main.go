package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tabletop-server/internal/game"
	"tabletop-server/internal/server"
	"tabletop-server/internal/version"
	"tabletop-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var roomTTL time.Duration
	// -seed 0 означает "сгенерировать случайно".
	flag.Int64Var(&seed, "seed", 0, "RNG seed for room codes and dice (0 for random)")
	// -room-ttl 0 отключает eviction: комнаты живут до рестарта процесса.
	flag.DurationVar(&roomTTL, "room-ttl", ttlFromEnv(), "How long an empty room survives (0 to disable eviction)")
	flag.Parse()

	logger.Log.Info("Starting tabletop server...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := game.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	}
	cfg.EmptyRoomTTL = roomTTL

	port := os.Getenv("TT_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "3000"
	}

	// 2. Инициализация сервиса
	gameService := game.NewService(cfg)
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	// Состояние комнат живет только в памяти - сохранять нечего.
	logger.Log.Info("Done.")
}

// ttlFromEnv читает дефолт для -room-ttl из TT_ROOM_TTL.
func ttlFromEnv() time.Duration {
	v := os.Getenv("TT_ROOM_TTL")
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}
