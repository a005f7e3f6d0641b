package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"school-platform/config"
	"school-platform/domain/content"
	"school-platform/pkg/logger"
	"school-platform/routes"
	"school-platform/utils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/main.go [server|hash_password <password>]")
		os.Exit(1)
	}

	config.InitConfig()
	logger.Init(logger.Config{
		Level:       logger.Level(viper.GetString("LOG_LEVEL")),
		Environment: viper.GetString("ENVIRONMENT"),
	})

	switch os.Args[1] {
	case "server":
		startServer()
	case "hash_password":
		hashPassword()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func startServer() {
	log := logger.Get().WithComponent("server")

	store := content.NewStore(log)
	svc := content.NewService(store)
	e := routes.NewRouter(svc)

	defer func() {
		if err := config.CloseMongo(); err != nil {
			log.Warn("Failed to close MongoDB connection", logger.Err(err))
		}
	}()

	port := viper.GetString("PORT")
	log.Info("Starting server", logger.String("port", port), logger.StoreMode(store.Mode()))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server stopped", err)
	}
}

// hashPassword prints a bcrypt hash for ADMIN_PASS_HASH.
func hashPassword() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/main.go hash_password <password>")
		os.Exit(1)
	}

	hash, err := utils.HashPassword(os.Args[2])
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
