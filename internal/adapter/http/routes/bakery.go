package routes

import (
	"maison_brioche/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAvailability = "/availability"
	PathCheckout     = "/checkout"
	PathReservations = "/reservations"
	PathReconcile    = "/reconcile"
	PathQuotes       = "/quotes"
	PathCalendar     = "/calendar"
	PathWebhooks     = "/webhooks"
)

func addBakeryRoutes(
	rg *gin.RouterGroup,
	availabilityHandler *handlers.AvailabilityHandler,
	reservationHandler *handlers.ReservationHandler,
	reconciliationHandler *handlers.ReconciliationHandler,
	quoteHandler *handlers.QuoteHandler,
	calendarHandler *handlers.CalendarHandler,
) {
	availability := rg.Group(PathAvailability)
	{
		availability.GET("", availabilityHandler.CheckAvailability)
		availability.GET("/projected", availabilityHandler.ProjectedAvailability)
	}

	rg.POST(PathCheckout, reconciliationHandler.CreateCheckout)

	reservations := rg.Group(PathReservations)
	{
		// Success-redirect landing: replays the paid cart into orders.
		reservations.POST("", reconciliationHandler.FinalizeReservations)
		reservations.GET("/:id", reservationHandler.GetReservation)
		reservations.POST("/:id/modify", reservationHandler.ModifyReservation)
		reservations.PATCH("/:id/status", reservationHandler.UpdateReservationStatus)
	}

	rg.POST(PathReconcile, reconciliationHandler.Reconcile)
	rg.POST(PathWebhooks+"/payment", reconciliationHandler.PaymentWebhook)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuoteRequest)
		quotes.GET("/:id", quoteHandler.GetQuoteRequest)
		quotes.PATCH("/:id/quote", quoteHandler.AttachQuote)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuoteRequest)
		quotes.PATCH("/:id/decline", quoteHandler.DeclineQuoteRequest)
		quotes.PATCH("/:id/override-capacity", quoteHandler.SetOverrideCapacity)
	}

	calendar := rg.Group(PathCalendar)
	{
		calendar.GET("", calendarHandler.ListOverrides)
		calendar.PUT("/:date", calendarHandler.SetOverride)
		calendar.DELETE("/:date", calendarHandler.ClearOverride)
	}
}
