package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
	"github.com/shandysiswandi/gofolio/internal/pkg/instrument"
	"github.com/shandysiswandi/gofolio/internal/pkg/storage"
	"github.com/shandysiswandi/gofolio/internal/pkg/validator"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeRepo struct {
	mu           sync.Mutex
	profile      *entity.Profile
	experiences  map[int64]entity.Experience
	educations   map[int64]entity.Education
	skills       map[int64]entity.Skill
	projects     map[int64]entity.Project
	achievements map[int64]entity.Achievement
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		experiences:  map[int64]entity.Experience{},
		educations:   map[int64]entity.Education{},
		skills:       map[int64]entity.Skill{},
		projects:     map[int64]entity.Project{},
		achievements: map[int64]entity.Achievement{},
	}
}

func (f *fakeRepo) GetLatestProfile(context.Context) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.profile == nil {
		return nil, goerror.ErrNotFound
	}
	out := *f.profile
	return &out, nil
}

func (f *fakeRepo) CreateProfile(_ context.Context, p entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = &p
	return nil
}

func (f *fakeRepo) UpdateProfile(_ context.Context, p entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.profile == nil || f.profile.ID != p.ID {
		return goerror.ErrNotFound
	}
	p.AvatarURL = f.profile.AvatarURL
	f.profile = &p
	return nil
}

func (f *fakeRepo) UpdateProfileAvatar(_ context.Context, id int64, avatarURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.profile == nil || f.profile.ID != id {
		return goerror.ErrNotFound
	}
	f.profile.AvatarURL = avatarURL
	return nil
}

func (f *fakeRepo) ListExperiences(context.Context) ([]entity.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []entity.Experience
	for _, e := range f.experiences {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeRepo) CreateExperience(_ context.Context, e entity.Experience) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.experiences[e.ID] = e
	return nil
}

func (f *fakeRepo) UpdateExperience(_ context.Context, e entity.Experience) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.experiences[e.ID]; !ok {
		return goerror.ErrNotFound
	}
	f.experiences[e.ID] = e
	return nil
}

func (f *fakeRepo) DeleteExperience(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.experiences[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.experiences, id)
	return nil
}

func (f *fakeRepo) ListEducations(context.Context) ([]entity.Education, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []entity.Education
	for _, e := range f.educations {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeRepo) CreateEducation(_ context.Context, e entity.Education) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.educations[e.ID] = e
	return nil
}

func (f *fakeRepo) UpdateEducation(_ context.Context, e entity.Education) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.educations[e.ID]; !ok {
		return goerror.ErrNotFound
	}
	f.educations[e.ID] = e
	return nil
}

func (f *fakeRepo) DeleteEducation(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.educations[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.educations, id)
	return nil
}

func (f *fakeRepo) ListSkills(context.Context) ([]entity.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []entity.Skill
	for _, sk := range f.skills {
		out = append(out, sk)
	}
	return out, nil
}

func (f *fakeRepo) CreateSkill(_ context.Context, sk entity.Skill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.skills[sk.ID] = sk
	return nil
}

func (f *fakeRepo) UpdateSkill(_ context.Context, sk entity.Skill) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.skills[sk.ID]; !ok {
		return goerror.ErrNotFound
	}
	f.skills[sk.ID] = sk
	return nil
}

func (f *fakeRepo) DeleteSkill(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.skills[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.skills, id)
	return nil
}

func (f *fakeRepo) ListProjects(context.Context) ([]entity.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []entity.Project
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) GetProjectByID(_ context.Context, id int64) (*entity.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.projects[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	out := p
	return &out, nil
}

func (f *fakeRepo) CreateProject(_ context.Context, p entity.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects[p.ID] = p
	return nil
}

func (f *fakeRepo) UpdateProject(_ context.Context, p entity.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, ok := f.projects[p.ID]
	if !ok {
		return goerror.ErrNotFound
	}
	p.ImageURL = current.ImageURL
	p.FileURLs = current.FileURLs
	f.projects[p.ID] = p
	return nil
}

func (f *fakeRepo) UpdateProjectFiles(_ context.Context, id int64, imageURL string, fileURLs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.projects[id]
	if !ok {
		return goerror.ErrNotFound
	}
	p.ImageURL = imageURL
	p.FileURLs = fileURLs
	f.projects[id] = p
	return nil
}

func (f *fakeRepo) DeleteProject(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.projects[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeRepo) ListAchievements(context.Context) ([]entity.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []entity.Achievement
	for _, a := range f.achievements {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) CreateAchievement(_ context.Context, a entity.Achievement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.achievements[a.ID] = a
	return nil
}

func (f *fakeRepo) UpdateAchievement(_ context.Context, a entity.Achievement) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.achievements[a.ID]; !ok {
		return goerror.ErrNotFound
	}
	f.achievements[a.ID] = a
	return nil
}

func (f *fakeRepo) DeleteAchievement(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.achievements[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.achievements, id)
	return nil
}

type storedObject struct {
	bucket      string
	contentType string
	data        []byte
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string]storedObject
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]storedObject{}}
}

func (f *fakeStorage) Close() error { return nil }

func (f *fakeStorage) PutObject(_ context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return storage.ObjectInfo{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = storedObject{
		bucket:      bucket,
		contentType: opts.ContentType,
		data:        buf.Bytes(),
	}
	return storage.ObjectInfo{Bucket: bucket, Key: key, Size: int64(buf.Len())}, nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, _, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) PresignGet(_ context.Context, _, key string, _ time.Duration) (string, error) {
	return "https://signed.example.com/" + key, nil
}

func (f *fakeStorage) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
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

type fakeUUID struct {
	mu   sync.Mutex
	next int
}

func (f *fakeUUID) Generate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	return "object-" + string(rune('a'+f.next-1))
}

type stubConfig struct{}

func (stubConfig) Close() error                   { return nil }
func (stubConfig) GetSecond(string) time.Duration { return time.Second }
func (stubConfig) GetMinute(string) time.Duration { return 10 * time.Minute }
func (stubConfig) GetHour(string) time.Duration   { return time.Hour }
func (stubConfig) GetDay(string) time.Duration    { return 24 * time.Hour }
func (stubConfig) GetInt(string) int              { return 0 }
func (stubConfig) GetInt32(string) int32          { return 0 }
func (stubConfig) GetInt64(key string) int64 {
	if key == "modules.content.media_max_size_bytes" {
		return 1 << 20
	}
	return 0
}
func (stubConfig) GetUint(string) uint       { return 0 }
func (stubConfig) GetUint16(string) uint16   { return 0 }
func (stubConfig) GetUint32(string) uint32   { return 0 }
func (stubConfig) GetUint64(string) uint64   { return 0 }
func (stubConfig) GetFloat32(string) float32 { return 0 }
func (stubConfig) GetFloat64(string) float64 { return 0 }
func (stubConfig) GetBool(string) bool       { return false }
func (stubConfig) GetString(key string) string {
	switch key {
	case "modules.content.media_bucket":
		return "gofolio-media"
	case "modules.content.media_base_url":
		return "https://cdn.example.com"
	}
	return ""
}
func (stubConfig) GetBinary(string) []byte         { return nil }
func (stubConfig) GetArray(string) []string        { return nil }
func (stubConfig) GetMap(string) map[string]string { return nil }

type fixture struct {
	uc      *Usecase
	repo    *fakeRepo
	storage *fakeStorage
	clock   *fakeClock
}

func newFixture(tb testingTB) *fixture {
	tb.Helper()

	clk := &fakeClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	repo := newFakeRepo()
	store := newFakeStorage()

	v, err := validator.NewV10Validator()
	if err != nil {
		tb.Fatalf("NewV10Validator() error = %v", err)
	}

	uc := New(Dependency{
		RepoDB:     repo,
		Storage:    store,
		Validator:  v,
		Config:     stubConfig{},
		UID:        &fakeUID{},
		UUID:       &fakeUUID{},
		Clock:      clk,
		Instrument: instrument.NewNoop(),
	})

	return &fixture{
		uc:      uc,
		repo:    repo,
		storage: store,
		clock:   clk,
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
