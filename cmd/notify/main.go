// Command notify asks running catalog-sync instances to refresh a catalog.
//
//	notify -catalog storefront -reason "bulk import finished"
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/kafka"
)

func main() {
	_ = godotenv.Load("env/.env")

	catalog := flag.String("catalog", domain.CatalogAll, "catalog to refresh: pos, storefront or all")
	reason := flag.String("reason", "manual", "free-form reason stored on the event")
	brokers := flag.String("brokers", os.Getenv("KAFKA_BROKERS"), "comma separated broker list")
	topic := flag.String("topic", envOr("KAFKA_TOPIC", "catalog-refresh"), "refresh topic")
	timeout := flag.Duration("timeout", 10*time.Second, "publish timeout")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	addrs := strings.Split(*brokers, ",")
	if strings.TrimSpace(*brokers) == "" {
		logger.Fatal("no kafka brokers: set -brokers or KAFKA_BROKERS")
	}

	w := kafka.NewWriter(addrs, *topic)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := kafka.NewPublisher(w, logger).Publish(ctx, *catalog, *reason); err != nil {
		logger.Fatal("publish", zap.Error(err))
	}
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
