// Package identity wires the phone sign-in module: code issuance over SMS,
// code verification, session tokens, and the profile endpoint.
package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/amin75t/task-manager/internal/identity/inbound"
	"github.com/amin75t/task-manager/internal/identity/outbound/db"
	"github.com/amin75t/task-manager/internal/identity/outbound/mq"
	outsms "github.com/amin75t/task-manager/internal/identity/outbound/sms"
	"github.com/amin75t/task-manager/internal/identity/usecase"
	"github.com/amin75t/task-manager/internal/pkg/clock"
	"github.com/amin75t/task-manager/internal/pkg/config"
	"github.com/amin75t/task-manager/internal/pkg/goroutine"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/pkg/jwt"
	"github.com/amin75t/task-manager/internal/pkg/messaging"
	"github.com/amin75t/task-manager/internal/pkg/otp"
	"github.com/amin75t/task-manager/internal/pkg/router"
	"github.com/amin75t/task-manager/internal/pkg/sms"
	"github.com/amin75t/task-manager/internal/pkg/uid"
	"github.com/amin75t/task-manager/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	SMS        sms.SMS                    `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Code       otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	codeSender := outsms.NewCodeSender(dep.SMS, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoMessaging: repoMsg,
		CodeSender:    codeSender,
		Validator:     dep.Validator,
		Config:        dep.Config,
		UID:           dep.UID,
		Code:          dep.Code,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
