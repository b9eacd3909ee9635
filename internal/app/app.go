package app

import (
	"log"
	"os"
	"time"

	"github.com/louiscollinsjr/miere-app/internal/events"
	"github.com/louiscollinsjr/miere-app/internal/payment"

	"github.com/gin-gonic/gin"
)

const processorTimeout = 15 * time.Second

// BuildApp connects the infrastructure, constructs every handle once
// and registers the routes. All clients are passed down explicitly; no
// package holds its own singleton.
func BuildApp(router *gin.Engine) error {
	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	// event publishing is optional; without a broker the storefront
	// still takes payments
	var publisher events.Publisher = events.NopPublisher{}
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		kafkaWriter, err := ConnectKafkaWithRetry(broker, 5)
		if err != nil {
			return err
		}
		publisher = events.NewKafkaPublisher(kafkaWriter)
	} else {
		log.Println("ℹ️ KAFKA_BROKER not set, event publishing disabled")
	}

	// misconfiguration is detected here once and again on every
	// request; the endpoint answers 500 without calling out
	var processor payment.Processor
	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		processor = payment.NewStripeProcessor(key, processorTimeout)
	} else {
		log.Println("⚠️ STRIPE_SECRET_KEY not set, payment intents will fail")
	}

	registerModules(router, moduleDeps{
		db:        db,
		redis:     redisClient,
		publisher: publisher,
		processor: processor,
	})

	return nil
}
