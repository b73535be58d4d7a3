package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/amin75t/task-manager/internal/pkg/ai"
	"github.com/amin75t/task-manager/internal/pkg/clock"
	"github.com/amin75t/task-manager/internal/pkg/config"
	"github.com/amin75t/task-manager/internal/pkg/goroutine"
	"github.com/amin75t/task-manager/internal/pkg/hash"
	"github.com/amin75t/task-manager/internal/pkg/idempotency"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/pkg/jwt"
	"github.com/amin75t/task-manager/internal/pkg/messaging"
	"github.com/amin75t/task-manager/internal/pkg/otp"
	"github.com/amin75t/task-manager/internal/pkg/router"
	"github.com/amin75t/task-manager/internal/pkg/sms"
	"github.com/amin75t/task-manager/internal/pkg/uid"
	"github.com/amin75t/task-manager/internal/pkg/validator"
	"go.uber.org/atomic"
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
	hmac      hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	code      otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	sms       sms.SMS
	completer ai.Completer
	messaging messaging.Messaging

	// server
	router     *router.Router
	httpServer *http.Server
	healthy    *atomic.Bool

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
		ctx:     ctx,
		cancel:  cancel,
		healthy: atomic.NewBool(false),
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initSMS()
	app.initAI()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	app.healthy.Store(true)

	return app
}
