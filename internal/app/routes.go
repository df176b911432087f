package app

import "github.com/transitpay/settlement-service/internal/middlewares"

func (a *App) RegisterRoutes() {
	api := a.Router.Group("/api/settlements")

	// The gateway posts settlements unauthenticated; the checksum is its
	// credential.
	api.POST("/webhook", a.PostingHandler.Ingest)

	reviewed := api.Group("",
		middlewares.Auth(a.config.Auth.JWTSecret),
		middlewares.RequireElevatedRole(),
	)
	reviewed.GET("", a.SettlementHandler.List)
	reviewed.GET("/summary", a.SettlementHandler.Summarize)
	reviewed.POST("/verify", a.SettlementHandler.Verify)
	reviewed.POST("/manual-match", a.SettlementHandler.ManualMatch)
}
