package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gofolio/internal/auth/outbound/challenge"
	"github.com/shandysiswandi/gofolio/internal/pkg/clock"
	"github.com/shandysiswandi/gofolio/internal/pkg/config"
	"github.com/shandysiswandi/gofolio/internal/pkg/goroutine"
	"github.com/shandysiswandi/gofolio/internal/pkg/hash"
	"github.com/shandysiswandi/gofolio/internal/pkg/instrument"
	"github.com/shandysiswandi/gofolio/internal/pkg/jwt"
	"github.com/shandysiswandi/gofolio/internal/pkg/mail"
	"github.com/shandysiswandi/gofolio/internal/pkg/messaging"
	"github.com/shandysiswandi/gofolio/internal/pkg/otp"
	"github.com/shandysiswandi/gofolio/internal/pkg/router"
	"github.com/shandysiswandi/gofolio/internal/pkg/storage"
	"github.com/shandysiswandi/gofolio/internal/pkg/uid"
	"github.com/shandysiswandi/gofolio/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn     *pgxpool.Pool
	cacheConn  *redis.Client
	challenges challenge.Store
	mail       mail.Mail
	messaging  messaging.Publisher
	storage    storage.Storage

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initChallenges()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
