package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/transitpay/settlement-service/config"
	"github.com/transitpay/settlement-service/internal/checksum"
	"github.com/transitpay/settlement-service/internal/handlers"
	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/publisher"
	"github.com/transitpay/settlement-service/internal/repository/posgrest"
	"github.com/transitpay/settlement-service/internal/service"
	"github.com/transitpay/settlement-service/internal/subscriber"
)

type App struct {
	config            *config.Config
	Router            *gin.Engine
	PostingHandler    *handlers.PostingHandler
	SettlementHandler *handlers.SettlementHandler
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.PaymentPosting{}, &models.Ticket{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	validator, err := checksum.New(cfg.Gateway.ChecksumSecret)
	if err != nil {
		log.Fatalf("failed to build checksum validator: %v", err)
	}

	postingRepo := posgrest.NewPostingRepository(db)
	ticketRepo := posgrest.NewTicketRepository(db)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	publisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	matcher := service.NewMatcher(postingRepo, ticketRepo)
	intakeService := service.NewIntakeService(postingRepo, validator, matcher, publisher)
	reviewService := service.NewReviewService(postingRepo, ticketRepo)
	summaryService := service.NewSummaryService(postingRepo)

	a.PostingHandler = handlers.NewPostingHandler(intakeService)
	a.SettlementHandler = handlers.NewSettlementHandler(reviewService, summaryService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes()

	a.initSubscribers(publisher, cfg.Kafka.GetRetryConfig())
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initSubscribers(publisher *publisher.KafkaPublisher, retry config.RetryConfig) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.SettlementConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, publisher, retry)

	ctx := context.Background()
	consumer.Listen(ctx, func(topic string, value []byte) error {
		logrus.Infof("received message topic=%s value=%s", topic, string(value))
		return a.PostingHandler.HandleEvents(context.Background(), topic, value)
	})
}
