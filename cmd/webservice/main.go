package main

import (
	"context"
	"fmt"
	stdlog "log"

	"github.com/AsadUllahBilal/TechThrive/config"
	"github.com/AsadUllahBilal/TechThrive/internal/app"
	"github.com/AsadUllahBilal/TechThrive/internal/infrastructure/cache"
	"github.com/AsadUllahBilal/TechThrive/internal/infrastructure/database/mongodb"
	"github.com/AsadUllahBilal/TechThrive/internal/infrastructure/message-queue/kafka"
)

func main() {
	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		stdlog.Fatalf("Failed to connect to the database: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	rdb, err := cache.ConnectToRedis(config)
	if err != nil {
		stdlog.Fatalf("Failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	kafkaProducer := kafka.CreateKafkaProducer(config)
	defer kafkaProducer.Close()

	server := app.App{
		DB:        db,
		Redis:     rdb,
		KafkaConn: kafkaProducer,
		Config:    config,
	}

	server.Start()
}
