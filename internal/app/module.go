package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/gofolio/internal/auth"
	"github.com/shandysiswandi/gofolio/internal/content"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		if err := auth.New(a.ctx, auth.Dependency{
			DBConn:     a.dbConn,
			Challenges: a.challenges,
			Goroutine:  a.goroutine,
			Router:     a.router,
			Messaging:  a.messaging,
			Mailer:     a.mail,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Bcrypt:     a.bcrypt,
			OTP:        a.otp,
			Clock:      a.clock,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.content.enabled") {
		if err := content.New(content.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Storage:    a.storage,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module content", "error", err)
			os.Exit(1)
		}
	}
}
