package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amin75t/task-manager/internal/pkg/config"
	"github.com/amin75t/task-manager/internal/pkg/goerror"
	"github.com/amin75t/task-manager/internal/pkg/goroutine"
	"github.com/amin75t/task-manager/internal/pkg/idempotency"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/pkg/jwt"
	"github.com/amin75t/task-manager/internal/pkg/validator"
	"github.com/amin75t/task-manager/internal/task/entity"
)

// ---- fakes ----

type fakeRepoDB struct {
	tasks map[int64]*entity.Task

	createErr  error
	lastFilter entity.TaskListFilter
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{tasks: map[int64]*entity.Task{}}
}

func (f *fakeRepoDB) CreateTask(_ context.Context, in entity.Task) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := in
	f.tasks[in.ID] = &cp
	return nil
}

func (f *fakeRepoDB) GetTaskByID(_ context.Context, id int64) (*entity.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *task
	return &cp, nil
}

func (f *fakeRepoDB) GetTaskList(_ context.Context, identityID int64, filter entity.TaskListFilter) ([]entity.Task, int64, error) {
	f.lastFilter = filter

	var out []entity.Task
	for _, task := range f.tasks {
		if task.IdentityID == identityID {
			out = append(out, *task)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepoDB) UpdateTask(_ context.Context, in entity.Task) error {
	if _, ok := f.tasks[in.ID]; !ok {
		return goerror.ErrNotFound
	}
	cp := in
	f.tasks[in.ID] = &cp
	return nil
}

func (f *fakeRepoDB) DeleteTask(_ context.Context, id int64) error {
	if _, ok := f.tasks[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

type fakeAI struct {
	result *ProcessedTask
	err    error
}

func (f *fakeAI) ProcessTask(_ context.Context, _ string) (*ProcessedTask, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeMessaging struct{ published []TaskCreatedEvent }

func (f *fakeMessaging) PublishTaskCreated(_ context.Context, msg TaskCreatedEvent) error {
	f.published = append(f.published, msg)
	return nil
}

type fakeIdempotency struct {
	keys  []string
	state error
}

func (f *fakeIdempotency) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(context.Context, string, time.Duration) error { return nil }

func (f *fakeIdempotency) MarkFailed(context.Context, string, time.Duration) error { return nil }

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	f.keys = append(f.keys, key)
	if f.state != nil {
		return f.state
	}
	return fn(ctx)
}

type fakeHash struct{}

func (fakeHash) Hash(str string) ([]byte, error) { return []byte(str), nil }

func (fakeHash) Verify(hashed, str string) bool { return hashed == str }

type fakeNumberID struct{ next int64 }

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type stubConfig struct {
	config.Config

	listMaxSize int
}

func (s stubConfig) GetInt(string) int { return s.listMaxSize }

// ---- harness ----

type fixture struct {
	uc    *Usecase
	repo  *fakeRepoDB
	ai    *fakeAI
	msg   *fakeMessaging
	idemp *fakeIdempotency
	clock *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := newFakeRepoDB()
	processor := &fakeAI{result: &ProcessedTask{Title: "عنوان", PreprocessedText: "متن تمیز"}}
	msg := &fakeMessaging{}
	idemp := &fakeIdempotency{}
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	uc := New(Dependency{
		RepoDB:        repo,
		RepoAI:        processor,
		RepoMessaging: msg,
		Idempotency:   idemp,
		Validator:     v,
		Config:        stubConfig{},
		HMAC:          fakeHash{},
		UID:           &fakeNumberID{},
		Clock:         clk,
		Instrument:    instrument.NewNoop(),
		Goroutine:     goroutine.NewManager(4),
	})

	return &fixture{uc: uc, repo: repo, ai: processor, msg: msg, idemp: idemp, clock: clk}
}

func authCtx(identityID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: identityID, UserPhone: "09123456789"})
}

func assertBusinessCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected goerror, got %v", err)
	}
	if gerr.Code() != want {
		t.Fatalf("expected code %v, got %v (%s)", want, gerr.Code(), gerr.Msg())
	}
}

func seedTask(f *fixture, identityID int64, title string) entity.Task {
	task := entity.Task{
		ID:         f.uc.uid.Generate(),
		IdentityID: identityID,
		Title:      title,
		Priority:   entity.PriorityMedium,
		CreatedAt:  f.clock.now,
		UpdatedAt:  f.clock.now,
	}
	f.repo.tasks[task.ID] = &task
	return task
}

// ---- TaskCreate ----

func TestTaskCreate(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.TaskCreate(authCtx(7), TaskCreateInput{
		Title: "خرید نان",
		Tags:  []string{"خانه", "خانه", "خرید"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Task.IdentityID != 7 {
		t.Fatalf("expected identity 7, got %d", out.Task.IdentityID)
	}
	if out.Task.Priority != entity.PriorityLow {
		t.Fatalf("expected default priority Low, got %v", out.Task.Priority)
	}
	if len(out.Task.Tags) != 2 {
		t.Fatalf("expected deduplicated tags, got %v", out.Task.Tags)
	}
	if _, ok := f.repo.tasks[out.Task.ID]; !ok {
		t.Fatal("expected task persisted")
	}
}

func TestTaskCreateRequiresAuth(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.TaskCreate(context.Background(), TaskCreateInput{Title: "خرید نان"})
	assertBusinessCode(t, err, goerror.CodeUnauthorized)
}

func TestTaskCreateValidatesTitle(t *testing.T) {
	f := newFixture(t)

	if _, err := f.uc.TaskCreate(authCtx(7), TaskCreateInput{}); err == nil {
		t.Fatal("expected validation error for missing title")
	}
}

func TestTaskCreateInvalidPriority(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.TaskCreate(authCtx(7), TaskCreateInput{Title: "خرید نان", Priority: "critical"})
	assertBusinessCode(t, err, goerror.CodeInvalidInput)
}

func TestTaskCreateIdempotencyKey(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.TaskCreate(authCtx(7), TaskCreateInput{Title: "خرید نان", IdempotencyKey: "req-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := f.repo.tasks[out.Task.ID]; !ok {
		t.Fatal("expected task persisted through the idempotency wrapper")
	}
	if len(f.idemp.keys) != 1 {
		t.Fatalf("expected one idempotency execution, got %d", len(f.idemp.keys))
	}
	// The raw client key must never reach the store directly.
	if f.idemp.keys[0] == "req-1" {
		t.Fatal("expected fingerprinted idempotency key")
	}
}

func TestTaskCreateIdempotencyReplay(t *testing.T) {
	f := newFixture(t)
	f.idemp.state = idempotency.ErrAlreadyCompleted

	_, err := f.uc.TaskCreate(authCtx(7), TaskCreateInput{Title: "خرید نان", IdempotencyKey: "req-1"})
	assertBusinessCode(t, err, goerror.CodeConflict)
}

func TestTaskCreateIdempotencyInProgress(t *testing.T) {
	f := newFixture(t)
	f.idemp.state = idempotency.ErrAlreadyInProgress

	_, err := f.uc.TaskCreate(authCtx(7), TaskCreateInput{Title: "خرید نان", IdempotencyKey: "req-1"})
	assertBusinessCode(t, err, goerror.CodeConflict)
}

// ---- TaskDetail ----

func TestTaskDetail(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(f, 7, "خرید نان")

	out, err := f.uc.TaskDetail(authCtx(7), TaskDetailInput{ID: seeded.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Task.Title != "خرید نان" {
		t.Fatalf("unexpected task %+v", out.Task)
	}
}

func TestTaskDetailNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.TaskDetail(authCtx(7), TaskDetailInput{ID: 404})
	assertBusinessCode(t, err, goerror.CodeNotFound)
}

func TestTaskDetailForbidden(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(f, 7, "خرید نان")

	// Another identity must not see the task even though it exists.
	_, err := f.uc.TaskDetail(authCtx(8), TaskDetailInput{ID: seeded.ID})
	assertBusinessCode(t, err, goerror.CodeForbidden)
}

// ---- TaskUpdate ----

func TestTaskUpdatePartial(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(f, 7, "خرید نان")

	f.clock.now = f.clock.now.Add(time.Hour)

	desc := "از نانوایی سر کوچه"
	out, err := f.uc.TaskUpdate(authCtx(7), TaskUpdateInput{ID: seeded.ID, Description: &desc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Task.Title != "خرید نان" {
		t.Fatalf("expected title untouched, got %q", out.Task.Title)
	}
	if out.Task.Description != desc {
		t.Fatalf("expected description updated, got %q", out.Task.Description)
	}
	if out.Task.Priority != entity.PriorityMedium {
		t.Fatalf("expected priority untouched, got %v", out.Task.Priority)
	}
	if !out.Task.UpdatedAt.After(seeded.UpdatedAt) {
		t.Fatal("expected updated timestamp to advance")
	}
}

func TestTaskUpdateEmptyTitle(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(f, 7, "خرید نان")

	empty := ""
	_, err := f.uc.TaskUpdate(authCtx(7), TaskUpdateInput{ID: seeded.ID, Title: &empty})
	assertBusinessCode(t, err, goerror.CodeInvalidInput)
}

func TestTaskUpdateNegativeMinutes(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(f, 7, "خرید نان")

	minutes := int32(-5)
	_, err := f.uc.TaskUpdate(authCtx(7), TaskUpdateInput{ID: seeded.ID, EstimatedMinutes: &minutes})
	assertBusinessCode(t, err, goerror.CodeInvalidInput)
}

func TestTaskUpdateForbidden(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(f, 7, "خرید نان")

	title := "عنوان جدید"
	_, err := f.uc.TaskUpdate(authCtx(8), TaskUpdateInput{ID: seeded.ID, Title: &title})
	assertBusinessCode(t, err, goerror.CodeForbidden)
}

// ---- TaskDelete ----

func TestTaskDelete(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(f, 7, "خرید نان")

	if err := f.uc.TaskDelete(authCtx(7), TaskDeleteInput{ID: seeded.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := f.repo.tasks[seeded.ID]; ok {
		t.Fatal("expected task removed")
	}
}

func TestTaskDeleteNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.uc.TaskDelete(authCtx(7), TaskDeleteInput{ID: 404})
	assertBusinessCode(t, err, goerror.CodeNotFound)
}

func TestTaskDeleteForbidden(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(f, 7, "خرید نان")

	err := f.uc.TaskDelete(authCtx(8), TaskDeleteInput{ID: seeded.ID})
	assertBusinessCode(t, err, goerror.CodeForbidden)

	if _, ok := f.repo.tasks[seeded.ID]; !ok {
		t.Fatal("expected task to survive a forbidden delete")
	}
}

// ---- TaskList ----

func TestTaskListDefaults(t *testing.T) {
	f := newFixture(t)
	seedTask(f, 7, "خرید نان")
	seedTask(f, 7, "پرداخت قبض")
	seedTask(f, 8, "تسک شخص دیگر")

	out, err := f.uc.TaskList(authCtx(7), TaskListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Tasks) != 2 || out.Total != 2 {
		t.Fatalf("expected only the identity's tasks, got %d (total %d)", len(out.Tasks), out.Total)
	}
	if out.Size != 20 || out.Page != 1 {
		t.Fatalf("expected default paging 20/1, got %d/%d", out.Size, out.Page)
	}
}

func TestTaskListClampsSize(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.TaskList(authCtx(7), TaskListInput{Size: 5000, Page: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Size != 100 {
		t.Fatalf("expected size clamped to 100, got %d", out.Size)
	}
	if f.repo.lastFilter.Size != 100 || f.repo.lastFilter.Page != 3 {
		t.Fatalf("unexpected filter %+v", f.repo.lastFilter)
	}
}

func TestTaskListConfiguredCap(t *testing.T) {
	f := newFixture(t)
	f.uc.cfg = stubConfig{listMaxSize: 50}

	out, err := f.uc.TaskList(authCtx(7), TaskListInput{Size: 5000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Size != 50 {
		t.Fatalf("expected size clamped to configured cap, got %d", out.Size)
	}
}

func TestTaskListRequiresAuth(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.TaskList(context.Background(), TaskListInput{})
	assertBusinessCode(t, err, goerror.CodeUnauthorized)
}

// ---- TaskProcess ----

func TestTaskProcess(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.TaskProcess(authCtx(7), TaskProcessInput{Text: "تسم زمگ به یکی"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Title != "عنوان" || out.PreprocessedText != "متن تمیز" {
		t.Fatalf("unexpected output %+v", out)
	}
	if out.OriginalText != "تسم زمگ به یکی" {
		t.Fatalf("expected original text echoed back, got %q", out.OriginalText)
	}
}

func TestTaskProcessUnavailable(t *testing.T) {
	f := newFixture(t)
	f.ai.err = errors.New("upstream down")

	_, err := f.uc.TaskProcess(authCtx(7), TaskProcessInput{Text: "تسم زمگ به یکی"})
	assertBusinessCode(t, err, goerror.CodeUnavailable)
}

func TestTaskProcessValidatesText(t *testing.T) {
	f := newFixture(t)

	if _, err := f.uc.TaskProcess(authCtx(7), TaskProcessInput{}); err == nil {
		t.Fatal("expected validation error for empty text")
	}
}

func TestTaskProcessRequiresAuth(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.TaskProcess(context.Background(), TaskProcessInput{Text: "تسم زمگ به یکی"})
	assertBusinessCode(t, err, goerror.CodeUnauthorized)
}

// ---- TaskSubmitProcessed ----

func TestTaskSubmitProcessed(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.TaskSubmitProcessed(authCtx(7), TaskSubmitProcessedInput{
		Title:       "تماس تلفنی",
		Description: "تماس زنگ زدن به یکی",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Task.WithAI {
		t.Fatal("expected AI flag forced on")
	}
	if out.Task.Description != "تماس زنگ زدن به یکی" {
		t.Fatalf("unexpected description %q", out.Task.Description)
	}
}

func TestTaskSubmitProcessedRequiresDescription(t *testing.T) {
	f := newFixture(t)

	if _, err := f.uc.TaskSubmitProcessed(authCtx(7), TaskSubmitProcessedInput{Title: "تماس تلفنی"}); err == nil {
		t.Fatal("expected validation error for missing description")
	}
}
