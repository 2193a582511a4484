package routes

import (
	"log"
	"os"
	"strconv"

	_ "maison_brioche/docs" // This will be auto-generated
	"maison_brioche/internal/adapter/http/handlers"
	"maison_brioche/internal/adapter/http/middleware"
	repository2 "maison_brioche/internal/adapter/persistence/repository"
	"maison_brioche/internal/infrastructure/database"
	"maison_brioche/internal/infrastructure/mail"
	"maison_brioche/internal/infrastructure/notify"
	"maison_brioche/internal/infrastructure/payments"
	"maison_brioche/internal/usecase"
	"maison_brioche/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	reservationRepo := repository2.NewReservationDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	calendarRepo := repository2.NewCalendarDynamoRepository(ddb)
	cartRepo := repository2.NewCartDynamoRepository(ddb)
	counterRepo := repository2.NewCounterDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		paymentGateway = stripeGateway
	}

	notifier := notify.NewRabbitPublisher()
	mailer := mail.NewGomailSender()

	availabilityUseCase := usecase.NewAvailabilityUseCase(calendarRepo, reservationRepo, quoteRepo, usecase.LoadAvailabilityConfig())
	reservationUseCase := usecase.NewReservationUseCase(reservationRepo, counterRepo, availabilityUseCase, notifier, mailer)
	reconciliationUseCase := usecase.NewReconciliationUseCase(reservationRepo, quoteRepo, cartRepo, paymentGateway, reservationUseCase)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, counterRepo, paymentGateway, mailer)
	calendarUseCase := usecase.NewCalendarUseCase(calendarRepo)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUseCase)
	reservationHandler := handlers.NewReservationHandler(reservationUseCase)
	reconciliationHandler := handlers.NewReconciliationHandler(reconciliationUseCase, paymentGateway)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	calendarHandler := handlers.NewCalendarHandler(calendarUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBakeryRoutes(v1, availabilityHandler, reservationHandler, reconciliationHandler, quoteHandler, calendarHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.NewTokenBucket(middleware.LoadRateLimitConfig()))
}
