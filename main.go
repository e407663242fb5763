package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/gofolio/internal/app"
)

// @title           Gofolio API
// @version         1.0
// @description     Gofolio serves the portfolio site backend: OTP-gated admin authentication and portfolio content management.
// @termsOfService  https://gofolio.dev/terms
// @contact.name    Contact Support
// @contact.url     https://gofolio.dev/contact
// @contact.email   support@gofolio.dev
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
// @server          https://localhost:8080
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
