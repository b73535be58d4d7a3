package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amin75t/task-manager/internal/identity/entity"
	"github.com/amin75t/task-manager/internal/pkg/config"
	"github.com/amin75t/task-manager/internal/pkg/goerror"
	"github.com/amin75t/task-manager/internal/pkg/goroutine"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/pkg/jwt"
	"github.com/amin75t/task-manager/internal/pkg/validator"
)

// ---- fakes ----

type fakeRepoDB struct {
	identities map[string]*entity.Identity

	upsertErr    error
	consumeErr   error
	consumeCalls int
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{identities: map[string]*entity.Identity{}}
}

func (f *fakeRepoDB) GetIdentityByPhone(_ context.Context, phone string) (*entity.Identity, error) {
	ident, ok := f.identities[phone]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *ident
	return &cp, nil
}

func (f *fakeRepoDB) GetIdentityByID(_ context.Context, id int64) (*entity.Identity, error) {
	for _, ident := range f.identities {
		if ident.ID == id {
			cp := *ident
			return &cp, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) UpsertPendingCode(_ context.Context, in entity.PendingCode) (int64, bool, error) {
	if f.upsertErr != nil {
		return 0, false, f.upsertErr
	}

	if existing, ok := f.identities[in.Phone]; ok {
		code := in.Code
		issued := in.IssuedAt
		existing.PendingCode = &code
		existing.CodeIssuedAt = &issued
		existing.CodeVerified = false
		return existing.ID, false, nil
	}

	code := in.Code
	issued := in.IssuedAt
	f.identities[in.Phone] = &entity.Identity{
		ID:           in.ID,
		Phone:        in.Phone,
		PendingCode:  &code,
		CodeIssuedAt: &issued,
		CreatedAt:    in.IssuedAt,
		UpdatedAt:    in.IssuedAt,
	}
	return in.ID, true, nil
}

func (f *fakeRepoDB) ConsumeCode(_ context.Context, identityID int64, code string) (bool, error) {
	f.consumeCalls++
	if f.consumeErr != nil {
		return false, f.consumeErr
	}

	for _, ident := range f.identities {
		if ident.ID != identityID {
			continue
		}
		if ident.PendingCode == nil || *ident.PendingCode != code {
			return false, nil
		}
		ident.PendingCode = nil
		ident.CodeIssuedAt = nil
		ident.CodeVerified = true
		return true, nil
	}
	return false, nil
}

type fakeCodeSender struct {
	sent []string
	err  error
}

func (f *fakeCodeSender) Send(_ context.Context, phone, code string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, phone+":"+code)
	return nil
}

type fakeMessaging struct{ published []IdentityRegisteredEvent }

func (f *fakeMessaging) PublishIdentityRegistered(_ context.Context, msg IdentityRegisteredEvent) error {
	f.published = append(f.published, msg)
	return nil
}

type fakeCodeGen struct{ code string }

func (f fakeCodeGen) Generate() (string, error) { return f.code, nil }

type fakeNumberID struct{ next int64 }

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeJWT struct{ err error }

func (f fakeJWT) Generate(int64, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "session-token", nil
}

func (fakeJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, nil }

type stubConfig struct {
	config.Config

	codeTTL    time.Duration
	exposeCode bool
}

func (s stubConfig) GetMinute(string) time.Duration { return s.codeTTL }

func (s stubConfig) GetBool(string) bool { return s.exposeCode }

// ---- harness ----

type fixture struct {
	uc     *Usecase
	repo   *fakeRepoDB
	sender *fakeCodeSender
	msg    *fakeMessaging
	clock  *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := newFakeRepoDB()
	sender := &fakeCodeSender{}
	msg := &fakeMessaging{}
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: msg,
		CodeSender:    sender,
		Validator:     v,
		Config:        stubConfig{codeTTL: 5 * time.Minute, exposeCode: true},
		UID:           &fakeNumberID{},
		Code:          fakeCodeGen{code: "123456"},
		Clock:         clk,
		JWT:           fakeJWT{},
		Instrument:    instrument.NewNoop(),
		Goroutine:     goroutine.NewManager(4),
	})

	return &fixture{uc: uc, repo: repo, sender: sender, msg: msg, clock: clk}
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

// ---- RequestCode ----

func TestRequestCodeNewIdentity(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.RequestCode(context.Background(), RequestCodeInput{Phone: "09123456789"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.IsNewIdentity {
		t.Fatal("expected a new identity on first request")
	}
	if out.Code != "123456" {
		t.Fatalf("expected exposed code, got %q", out.Code)
	}
	if len(f.sender.sent) != 1 || f.sender.sent[0] != "09123456789:123456" {
		t.Fatalf("expected one delivery, got %v", f.sender.sent)
	}
}

func TestRequestCodeNormalizesPhone(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.RequestCode(context.Background(), RequestCodeInput{Phone: "+98 912 345 6789"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsNewIdentity {
		t.Fatal("expected a new identity")
	}

	if _, ok := f.repo.identities["09123456789"]; !ok {
		t.Fatalf("expected identity stored under normalized phone, have %v", f.repo.identities)
	}
}

func TestRequestCodeInvalidPhone(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RequestCode(context.Background(), RequestCodeInput{Phone: "12345"})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRequestCodeSupersedesPrevious(t *testing.T) {
	f := newFixture(t)

	if _, err := f.uc.RequestCode(context.Background(), RequestCodeInput{Phone: "09123456789"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := f.uc.RequestCode(context.Background(), RequestCodeInput{Phone: "09123456789"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.IsNewIdentity {
		t.Fatal("second request must not report a new identity")
	}
	if len(f.sender.sent) != 2 {
		t.Fatalf("expected two deliveries, got %d", len(f.sender.sent))
	}
}

func TestRequestCodeDeliveryFailure(t *testing.T) {
	f := newFixture(t)
	f.sender.err = errors.New("gateway down")

	_, err := f.uc.RequestCode(context.Background(), RequestCodeInput{Phone: "09123456789"})
	assertBusinessCode(t, err, goerror.CodeUnavailable)

	// The code is stored before delivery, so a retry can still verify.
	ident := f.repo.identities["09123456789"]
	if ident == nil || ident.PendingCode == nil || *ident.PendingCode != "123456" {
		t.Fatal("expected pending code to survive a delivery failure")
	}
}

// ---- VerifyCode ----

func requestAndReset(t *testing.T, f *fixture, phone string) {
	t.Helper()
	if _, err := f.uc.RequestCode(context.Background(), RequestCodeInput{Phone: phone}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifyCodeSuccess(t *testing.T) {
	f := newFixture(t)
	requestAndReset(t, f, "09123456789")

	out, err := f.uc.VerifyCode(context.Background(), VerifyCodeInput{Phone: "09123456789", Code: "123456"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.AccessToken != "session-token" {
		t.Fatalf("expected session token, got %q", out.AccessToken)
	}
	if out.TokenType != "bearer" {
		t.Fatalf("expected bearer token type, got %q", out.TokenType)
	}

	ident := f.repo.identities["09123456789"]
	if ident.PendingCode != nil || !ident.CodeVerified {
		t.Fatal("expected code consumed and identity marked verified")
	}
}

func TestVerifyCodeUnknownPhone(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.VerifyCode(context.Background(), VerifyCodeInput{Phone: "09123456789", Code: "123456"})
	assertBusinessCode(t, err, goerror.CodeNotFound)
}

func TestVerifyCodeNoPendingCode(t *testing.T) {
	f := newFixture(t)
	requestAndReset(t, f, "09123456789")

	if _, err := f.uc.VerifyCode(context.Background(), VerifyCodeInput{Phone: "09123456789", Code: "123456"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Replaying the same code must fail once consumed.
	_, err := f.uc.VerifyCode(context.Background(), VerifyCodeInput{Phone: "09123456789", Code: "123456"})
	assertBusinessCode(t, err, goerror.CodeInvalidInput)
}

func TestVerifyCodeExpired(t *testing.T) {
	f := newFixture(t)
	requestAndReset(t, f, "09123456789")

	f.clock.now = f.clock.now.Add(5*time.Minute + time.Second)

	// Correct code, but past its ttl: expiry wins over the comparison.
	_, err := f.uc.VerifyCode(context.Background(), VerifyCodeInput{Phone: "09123456789", Code: "123456"})
	assertBusinessCode(t, err, goerror.CodeInvalidInput)

	if f.repo.consumeCalls != 0 {
		t.Fatal("expired attempt must not reach the consume step")
	}
}

func TestVerifyCodeMismatchKeepsCode(t *testing.T) {
	f := newFixture(t)
	requestAndReset(t, f, "09123456789")

	_, err := f.uc.VerifyCode(context.Background(), VerifyCodeInput{Phone: "09123456789", Code: "999999"})
	assertBusinessCode(t, err, goerror.CodeInvalidInput)

	// A wrong guess must not burn the stored code.
	out, err := f.uc.VerifyCode(context.Background(), VerifyCodeInput{Phone: "09123456789", Code: "123456"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AccessToken == "" {
		t.Fatal("expected token after correct retry")
	}
}

func TestVerifyCodeValidatesFormat(t *testing.T) {
	f := newFixture(t)
	requestAndReset(t, f, "09123456789")

	if _, err := f.uc.VerifyCode(context.Background(), VerifyCodeInput{Phone: "09123456789", Code: "12ab56"}); err == nil {
		t.Fatal("expected validation error for non-numeric code")
	}

	if _, err := f.uc.VerifyCode(context.Background(), VerifyCodeInput{Phone: "09123456789", Code: "12345"}); err == nil {
		t.Fatal("expected validation error for short code")
	}
}

// ---- Profile ----

func TestProfile(t *testing.T) {
	f := newFixture(t)
	requestAndReset(t, f, "09123456789")

	out, err := f.uc.VerifyCode(context.Background(), VerifyCodeInput{Phone: "09123456789", Code: "123456"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: out.IdentityID, UserPhone: out.Phone})

	profile, err := f.uc.Profile(ctx, ProfileInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Phone != "09123456789" || !profile.Verified {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestProfileRequiresAuth(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Profile(context.Background(), ProfileInput{})
	assertBusinessCode(t, err, goerror.CodeUnauthorized)
}
