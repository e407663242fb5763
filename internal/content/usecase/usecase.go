package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/clock"
	"github.com/shandysiswandi/gofolio/internal/pkg/config"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
	"github.com/shandysiswandi/gofolio/internal/pkg/instrument"
	"github.com/shandysiswandi/gofolio/internal/pkg/storage"
	"github.com/shandysiswandi/gofolio/internal/pkg/uid"
	"github.com/shandysiswandi/gofolio/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

//nolint:gochecknoglobals // global for fast reuse
var imageContentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

//nolint:gochecknoglobals // global for fast reuse
var projectFileContentTypeExt = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

var errFileTooLarge = errors.New("file exceeds max size")

type repoDB interface {
	GetLatestProfile(ctx context.Context) (*entity.Profile, error)
	CreateProfile(ctx context.Context, p entity.Profile) error
	UpdateProfile(ctx context.Context, p entity.Profile) error
	UpdateProfileAvatar(ctx context.Context, id int64, avatarURL string) error

	ListExperiences(ctx context.Context) ([]entity.Experience, error)
	CreateExperience(ctx context.Context, e entity.Experience) error
	UpdateExperience(ctx context.Context, e entity.Experience) error
	DeleteExperience(ctx context.Context, id int64) error

	ListEducations(ctx context.Context) ([]entity.Education, error)
	CreateEducation(ctx context.Context, e entity.Education) error
	UpdateEducation(ctx context.Context, e entity.Education) error
	DeleteEducation(ctx context.Context, id int64) error

	ListSkills(ctx context.Context) ([]entity.Skill, error)
	CreateSkill(ctx context.Context, sk entity.Skill) error
	UpdateSkill(ctx context.Context, sk entity.Skill) error
	DeleteSkill(ctx context.Context, id int64) error

	ListProjects(ctx context.Context) ([]entity.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*entity.Project, error)
	CreateProject(ctx context.Context, p entity.Project) error
	UpdateProject(ctx context.Context, p entity.Project) error
	UpdateProjectFiles(ctx context.Context, id int64, imageURL string, fileURLs []string) error
	DeleteProject(ctx context.Context, id int64) error

	ListAchievements(ctx context.Context) ([]entity.Achievement, error)
	CreateAchievement(ctx context.Context, a entity.Achievement) error
	UpdateAchievement(ctx context.Context, a entity.Achievement) error
	DeleteAchievement(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB    repoDB
	storage   storage.Storage
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	uuid      uid.StringID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Storage    storage.Storage
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	UUID       uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		storage:   dep.Storage,
		validator: dep.Validator,
		cfg:       dep.Config,
		uid:       dep.UID,
		uuid:      dep.UUID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("content.usecase").Start(ctx, name)
}

// uploadObject stores the file under a fresh key below prefix and
// returns its download URL. With a configured base URL the object is
// addressed directly; otherwise a presigned URL is handed out for
// buckets that are not publicly readable.
func (s *Usecase) uploadObject(ctx context.Context, prefix, contentType, ext string, r io.Reader) (string, error) {
	bucket := strings.TrimSpace(s.cfg.GetString("modules.content.media_bucket"))
	baseURL := strings.TrimSpace(s.cfg.GetString("modules.content.media_base_url"))
	maxSize := s.cfg.GetInt64("modules.content.media_max_size_bytes")
	key := prefix + "/" + s.uuid.Generate() + ext

	reader := &maxBytesReader{
		r:   r,
		max: maxSize,
	}
	_, err := s.storage.PutObject(ctx, bucket, key, reader, storage.PutOptions{
		Size:        -1,
		ContentType: contentType,
	})
	if err != nil {
		if errors.Is(err, errFileTooLarge) {
			return "", goerror.NewInvalidInput(errFileTooLarge)
		}
		slog.ErrorContext(ctx, "failed to upload media object", "key", key, "error", err)
		return "", goerror.NewServer(err)
	}

	if baseURL == "" {
		url, err := s.storage.PresignGet(ctx, bucket, key, s.cfg.GetHour("modules.content.media_url_ttl_hours"))
		if err != nil {
			slog.ErrorContext(ctx, "failed to presign media object", "key", key, "error", err)
			return "", goerror.NewServer(err)
		}
		return url, nil
	}

	return baseURL + "/" + key, nil
}

// removeObjects best-effort deletes stored media by URL. Only URLs
// under the configured base URL can be mapped back to object keys.
func (s *Usecase) removeObjects(ctx context.Context, urls []string) {
	bucket := strings.TrimSpace(s.cfg.GetString("modules.content.media_bucket"))
	baseURL := strings.TrimSpace(s.cfg.GetString("modules.content.media_base_url"))
	if baseURL == "" {
		return
	}

	for _, url := range urls {
		key, ok := strings.CutPrefix(url, baseURL+"/")
		if !ok {
			continue
		}
		if err := s.storage.DeleteObject(ctx, bucket, key); err != nil {
			slog.WarnContext(ctx, "failed to delete media object", "key", key, "error", err)
		}
	}
}

type maxBytesReader struct {
	r     io.Reader
	max   int64
	read  int64
	buf   [1]byte
	ended bool
}

func (m *maxBytesReader) Read(p []byte) (int, error) {
	if m.read >= m.max {
		if m.ended {
			return 0, errFileTooLarge
		}

		n, err := m.r.Read(m.buf[:])
		if n > 0 {
			m.ended = true
			return 0, errFileTooLarge
		}
		if err == nil {
			m.ended = true
			return 0, errFileTooLarge
		}
		return 0, err
	}

	remaining := m.max - m.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := m.r.Read(p)
	m.read += int64(n)
	return n, err
}
