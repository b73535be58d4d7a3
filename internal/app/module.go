package app

import (
	"log/slog"
	"os"

	"github.com/amin75t/task-manager/internal/identity"
	"github.com/amin75t/task-manager/internal/task"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Code:       a.code,
			Clock:      a.clock,
			Validator:  a.validator,
			Router:     a.router,
			DBConn:     a.dbConn,
			Messaging:  a.messaging,
			SMS:        a.sms,
			Goroutine:  a.goroutine,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.task.enabled") {
		if err := task.New(task.Dependency{
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			HMAC:        a.hmac,
			Clock:       a.clock,
			Validator:   a.validator,
			Router:      a.router,
			DBConn:      a.dbConn,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Completer:   a.completer,
			Goroutine:   a.goroutine,
		}); err != nil {
			slog.Error("failed to init module task", "error", err)
			os.Exit(1)
		}
	}
}
