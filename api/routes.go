package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/studioflow/studioflow-backend/usecases"
)

func addRoutes(r *gin.Engine, auth Authentication, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Stripe calls this endpoint directly; it authenticates through the
	// payload signature, not a bearer token.
	r.POST("/billing/webhook", handleStripeWebhook(uc))

	router := r.Use(auth.Middleware)

	router.GET("/license", handleLicense(uc))
	router.GET("/license/upgrade-benefits", handleUpgradeBenefits(uc))

	router.GET("/organizations/:organization_id", handleGetOrganization(uc))
	router.POST("/organizations", handlePostOrganization(uc))

	router.GET("/members", handleListMembers(uc))
	router.POST("/members", handlePostMember(uc))
	router.GET("/coaches", handleListCoaches(uc))
	router.POST("/coaches", handlePostCoach(uc))

	router.GET("/sessions", handleListSessions(uc))
	router.POST("/sessions", handlePostSession(uc))

	router.GET("/payments", handleListPayments(uc))
	router.POST("/payments", handlePostPayment(uc))

	router.POST("/billing/checkout-session", handlePostCheckoutSession(uc))
}
