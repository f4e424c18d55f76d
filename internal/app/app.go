package app

import (
	"os"
	"strings"

	"github.com/buildsbyrafael/datapersistence/internal/absence"
	"github.com/buildsbyrafael/datapersistence/internal/importer"
	"github.com/buildsbyrafael/datapersistence/internal/middleware"
	"github.com/buildsbyrafael/datapersistence/internal/pay"
	"github.com/buildsbyrafael/datapersistence/internal/remark"
	"github.com/buildsbyrafael/datapersistence/internal/role"
	"github.com/buildsbyrafael/datapersistence/internal/servant"
	"github.com/buildsbyrafael/datapersistence/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BuildApp connects the backing stores, migrates the schema and returns the
// routed gin engine. Redis and Kafka are optional; when unconfigured the
// statistics cache is skipped and import events go to a noop publisher.
func BuildApp() (*gin.Engine, error) {
	db, err := connection.ConnectGORMWithRetry(
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "servidores"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
		5,
	)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&servant.Servidor{},
		&pay.Remuneracao{},
		&absence.Afastamento{},
		&remark.Observacao{},
		&role.CargoFuncao{},
		&role.FuncaoCargo{},
	); err != nil {
		return nil, err
	}

	var cache *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache, err = connection.ConnectRedisWithRetry(addr, 3)
		if err != nil {
			zap.L().Warn("redis unavailable, statistics cache disabled", zap.Error(err))
			cache = nil
		}
	}

	publisher := importer.NewNoopEventPublisher()
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(brokers, ",")...),
			Balancer: &kafka.LeastBytes{},
		}
		publisher = importer.NewKafkaEventPublisher(writer)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
	)

	registerModules(router, db, cache, publisher)

	return router, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
