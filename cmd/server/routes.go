package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"snapaml.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	wizardHandler       *handlers.WizardHandler
	profileHandler      *handlers.ProfileHandler
	requestHandler      *handlers.RequestHandler
	verificationHandler *handlers.VerificationHandler
	documentHandler     *handlers.DocumentHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/verify-email", d.authHandler.VerifyEmail)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Public verification badge lookup
		v1.GET("/verify/:registrationNumber", d.verificationHandler.Verify)

		// Company onboarding wizard (protected)
		kyb := v1.Group("/kyb")
		kyb.Use(d.authMiddleware)
		{
			kyb.GET("/wizard", d.wizardHandler.GetCompanyWizard)
			kyb.POST("/wizard/steps/:step", d.wizardHandler.SubmitCompanyStep)
			kyb.POST("/wizard/back", d.wizardHandler.CompanyWizardBack)
		}

		// Individual onboarding wizard (protected)
		kyc := v1.Group("/kyc")
		kyc.Use(d.authMiddleware)
		{
			kyc.GET("/wizard", d.wizardHandler.GetIndividualWizard)
			kyc.POST("/wizard/steps/:step", d.wizardHandler.SubmitIndividualStep)
			kyc.POST("/wizard/back", d.wizardHandler.IndividualWizardBack)
			if d.documentHandler != nil {
				kyc.POST("/documents", d.documentHandler.Upload)
			}
		}

		// Company profile (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.GetProfile)
			profile.PATCH("/fields/:field", d.profileHandler.UpdateProfileField)
		}

		// Peer verification requests (protected)
		requests := v1.Group("/requests")
		requests.Use(d.authMiddleware)
		{
			requests.POST("", d.requestHandler.CreateRequest)
			requests.GET("/incoming", d.requestHandler.ListIncoming)
			requests.GET("/outgoing", d.requestHandler.ListOutgoing)
			requests.POST("/:id/approve", d.requestHandler.ApproveRequest)
		}

		// Approved counterparties (protected)
		v1.GET("/counterparties", d.authMiddleware, d.requestHandler.ListCounterparties)
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "snapaml-backend",
			"version": "0.1.0",
		})
	})
}
