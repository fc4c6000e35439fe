package main

import (
	"fmt"
	"log"

	"github.com/azor-ahai1/SwapSpace/config"
	"github.com/azor-ahai1/SwapSpace/internal/app"
	"github.com/azor-ahai1/SwapSpace/internal/infrastructure/database/mongodb"
)

func main() {
	config := config.CreateNewConfig()

	uri := fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort)
	db, err := mongodb.ConnectToMongoDB(uri, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	server := app.App{
		DB:     db,
		Config: config,
	}

	server.Start()
}
