package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/auth/outbound/challenge"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
	"github.com/shandysiswandi/gofolio/internal/pkg/goroutine"
	"github.com/shandysiswandi/gofolio/internal/pkg/hash"
	"github.com/shandysiswandi/gofolio/internal/pkg/instrument"
	"github.com/shandysiswandi/gofolio/internal/pkg/jwt"
	"github.com/shandysiswandi/gofolio/internal/pkg/mail"
	"github.com/shandysiswandi/gofolio/internal/pkg/validator"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeDB struct {
	mu     sync.Mutex
	admins map[int64]entity.Admin
	nextID int64
}

func newFakeDB() *fakeDB {
	return &fakeDB{admins: map[int64]entity.Admin{}}
}

func (f *fakeDB) GetAdminByEmail(_ context.Context, email string) (*entity.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.admins {
		if strings.EqualFold(a.Email, email) {
			out := a
			return &out, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) GetAdminByUsernameOrEmail(_ context.Context, username, email string) (*entity.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.admins {
		if strings.EqualFold(a.Username, username) || strings.EqualFold(a.Email, email) {
			out := a
			return &out, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) CreateAdmin(_ context.Context, a entity.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.admins {
		if strings.EqualFold(existing.Username, a.Username) || strings.EqualFold(existing.Email, a.Email) {
			return goerror.ErrConflict
		}
	}
	f.admins[a.ID] = a
	return nil
}

func (f *fakeDB) UpdateAdminPassword(_ context.Context, id int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.admins[id]
	if !ok {
		return goerror.ErrNotFound
	}
	a.PasswordHash = passwordHash
	f.admins[id] = a
	return nil
}

func (f *fakeDB) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.admins)
}

type fakeMessaging struct{}

func (fakeMessaging) PublishAdminRegistered(context.Context, AdminRegisteredEvent) error { return nil }
func (fakeMessaging) PublishAdminLoggedIn(context.Context, AdminLoggedInEvent) error     { return nil }
func (fakeMessaging) PublishPasswordReset(context.Context, PasswordResetEvent) error     { return nil }

var errSMTPDown = errors.New("smtp connection refused")

type fakeMailer struct {
	mu      sync.Mutex
	sent    []mail.Message
	sendErr error
}

func (f *fakeMailer) Close() error { return nil }

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeOTP struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func (f *fakeOTP) Generate() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.next >= len(f.codes) {
		return "999999", nil
	}
	code := f.codes[f.next]
	f.next++
	return code, nil
}

type fakeUID struct {
	mu   sync.Mutex
	next int64
}

func (f *fakeUID) Generate() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	return f.next
}

type fakeUUID struct{}

func (fakeUUID) Generate() string { return "0198f1a2-0000-7000-8000-000000000001" }

type stubConfig struct{}

func (stubConfig) Close() error                    { return nil }
func (stubConfig) GetSecond(string) time.Duration  { return time.Second }
func (stubConfig) GetMinute(string) time.Duration  { return 10 * time.Minute }
func (stubConfig) GetHour(string) time.Duration    { return 12 * time.Hour }
func (stubConfig) GetDay(string) time.Duration     { return 24 * time.Hour }
func (stubConfig) GetInt(string) int               { return 0 }
func (stubConfig) GetInt32(string) int32           { return 0 }
func (stubConfig) GetInt64(string) int64           { return 0 }
func (stubConfig) GetUint(string) uint             { return 0 }
func (stubConfig) GetUint16(string) uint16         { return 0 }
func (stubConfig) GetUint32(string) uint32         { return 0 }
func (stubConfig) GetUint64(string) uint64         { return 0 }
func (stubConfig) GetFloat32(string) float32       { return 0 }
func (stubConfig) GetFloat64(string) float64       { return 0 }
func (stubConfig) GetBool(string) bool             { return false }
func (stubConfig) GetString(string) string         { return "" }
func (stubConfig) GetBinary(string) []byte         { return nil }
func (stubConfig) GetArray(string) []string        { return nil }
func (stubConfig) GetMap(string) map[string]string { return nil }

type fixture struct {
	uc     *Usecase
	db     *fakeDB
	store  *challenge.Memory
	mailer *fakeMailer
	otp    *fakeOTP
	clock  *fakeClock
}

func newFixture(tb testingTB, codes ...string) *fixture {
	tb.Helper()

	clk := &fakeClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	db := newFakeDB()
	store := challenge.NewMemory(clk)
	mailer := &fakeMailer{}
	otpGen := &fakeOTP{codes: codes}

	v, err := validator.NewV10Validator()
	if err != nil {
		tb.Fatalf("NewV10Validator() error = %v", err)
	}

	signer, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte(strings.Repeat("k", 64)),
		Issuer:    "gofolio",
		Audiences: []string{"gofolio-admin"},
		TTL:       12 * time.Hour,
		Clock:     clk,
		UUID:      fakeUUID{},
	})
	if err != nil {
		tb.Fatalf("NewHS512() error = %v", err)
	}

	uc := New(Dependency{
		RepoDB:        db,
		RepoMessaging: fakeMessaging{},
		Challenges:    store,
		Mailer:        mailer,
		Validator:     v,
		Config:        stubConfig{},
		Bcrypt:        hash.NewBcrypt(4, ""),
		OTP:           otpGen,
		UID:           &fakeUID{},
		Clock:         clk,
		JWT:           signer,
		Instrument:    instrument.NewNoop(),
		Goroutine:     goroutine.NewManager(10),
	})

	return &fixture{
		uc:     uc,
		db:     db,
		store:  store,
		mailer: mailer,
		otp:    otpGen,
		clock:  clk,
	}
}

// testingTB is the subset of testing.TB the fixture needs.
type testingTB interface {
	Helper()
	Fatalf(format string, args ...any)
}

func codeStatus(err error) (goerror.Code, bool) {
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		return 0, false
	}
	return gerr.Code(), true
}
