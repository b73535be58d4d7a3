// Package task wires the task module: CRUD over owned tasks, AI-assisted
// text processing, and creation events.
package task

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/amin75t/task-manager/internal/pkg/ai"
	"github.com/amin75t/task-manager/internal/pkg/clock"
	"github.com/amin75t/task-manager/internal/pkg/config"
	"github.com/amin75t/task-manager/internal/pkg/goroutine"
	"github.com/amin75t/task-manager/internal/pkg/hash"
	"github.com/amin75t/task-manager/internal/pkg/idempotency"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/pkg/messaging"
	"github.com/amin75t/task-manager/internal/pkg/router"
	"github.com/amin75t/task-manager/internal/pkg/uid"
	"github.com/amin75t/task-manager/internal/pkg/validator"
	"github.com/amin75t/task-manager/internal/task/inbound"
	outai "github.com/amin75t/task-manager/internal/task/outbound/ai"
	"github.com/amin75t/task-manager/internal/task/outbound/db"
	"github.com/amin75t/task-manager/internal/task/outbound/mq"
	"github.com/amin75t/task-manager/internal/task/usecase"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Completer   ai.Completer               `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	HMAC        hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	repoAI := outai.NewProcessor(dep.Completer, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoAI:        repoAI,
		RepoMessaging: repoMsg,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		HMAC:          dep.HMAC,
		UID:           dep.UID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
