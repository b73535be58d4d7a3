package usecase

import (
	"context"
	"time"

	"github.com/amin75t/task-manager/internal/identity/entity"
	"github.com/amin75t/task-manager/internal/pkg/clock"
	"github.com/amin75t/task-manager/internal/pkg/config"
	"github.com/amin75t/task-manager/internal/pkg/goroutine"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/pkg/jwt"
	"github.com/amin75t/task-manager/internal/pkg/otp"
	"github.com/amin75t/task-manager/internal/pkg/uid"
	"github.com/amin75t/task-manager/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type IdentityRegisteredEvent struct {
	IdentityID int64
	Phone      string
}

type repoMessaging interface {
	PublishIdentityRegistered(ctx context.Context, msg IdentityRegisteredEvent) error
}

type repoDB interface {
	GetIdentityByPhone(ctx context.Context, phone string) (*entity.Identity, error)
	GetIdentityByID(ctx context.Context, id int64) (*entity.Identity, error)

	UpsertPendingCode(ctx context.Context, in entity.PendingCode) (identityID int64, created bool, err error)
	ConsumeCode(ctx context.Context, identityID int64, code string) (bool, error)
}

type codeSender interface {
	Send(ctx context.Context, phone, code string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	codeSender    codeSender
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	code          otp.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	CodeSender    codeSender
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	Code          otp.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		codeSender:    dep.CodeSender,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		code:          dep.Code,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

// codeTTL is how long a sign-in code stays valid after it is issued.
func (s *Usecase) codeTTL() time.Duration {
	return s.cfg.GetMinute("modules.identity.code_ttl_minutes")
}
