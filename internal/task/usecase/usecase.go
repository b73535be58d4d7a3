package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amin75t/task-manager/internal/pkg/clock"
	"github.com/amin75t/task-manager/internal/pkg/config"
	"github.com/amin75t/task-manager/internal/pkg/goerror"
	"github.com/amin75t/task-manager/internal/pkg/goroutine"
	"github.com/amin75t/task-manager/internal/pkg/hash"
	"github.com/amin75t/task-manager/internal/pkg/idempotency"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/pkg/jwt"
	"github.com/amin75t/task-manager/internal/pkg/uid"
	"github.com/amin75t/task-manager/internal/pkg/validator"
	"github.com/amin75t/task-manager/internal/task/entity"
	"go.opentelemetry.io/otel/trace"
)

type TaskCreatedEvent struct {
	TaskID     int64
	IdentityID int64
	Title      string
	WithAI     bool
}

// ProcessedTask is the AI result for a raw task text.
type ProcessedTask struct {
	Title            string
	PreprocessedText string
}

type repoMessaging interface {
	PublishTaskCreated(ctx context.Context, msg TaskCreatedEvent) error
}

type repoDB interface {
	CreateTask(ctx context.Context, in entity.Task) error
	GetTaskByID(ctx context.Context, id int64) (*entity.Task, error)
	GetTaskList(ctx context.Context, identityID int64, filter entity.TaskListFilter) ([]entity.Task, int64, error)
	UpdateTask(ctx context.Context, in entity.Task) error
	DeleteTask(ctx context.Context, id int64) error
}

type repoAI interface {
	ProcessTask(ctx context.Context, text string) (*ProcessedTask, error)
}

type Usecase struct {
	repoDB        repoDB
	repoAI        repoAI
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	hmac          hash.Hash
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoAI        repoAI
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	HMAC          hash.Hash
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoAI:        dep.RepoAI,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		hmac:          dep.HMAC,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("task.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

// ownedTask loads a task and enforces that it belongs to the identity.
func (s *Usecase) ownedTask(ctx context.Context, taskID, identityID int64) (*entity.Task, error) {
	task, err := s.repoDB.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.IdentityID != identityID {
		return nil, goerror.NewBusiness("Not allowed to access this task", goerror.CodeForbidden)
	}

	return task, nil
}

// mapTaskError turns repo errors from task lookups into API errors,
// passing already classified errors through untouched.
func (s *Usecase) mapTaskError(ctx context.Context, taskID int64, err error) error {
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Task not found", goerror.CodeNotFound)
	}

	var gerr *goerror.Error
	if errors.As(err, &gerr) {
		return err
	}

	slog.ErrorContext(ctx, "failed to repo get task", "task_id", taskID, "error", err)
	return goerror.NewServer(err)
}
