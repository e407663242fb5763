package inbound

import (
	"context"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/content/usecase"
	"github.com/shandysiswandi/gofolio/internal/pkg/router"
)

type uc interface {
	ProfileGet(ctx context.Context) (*entity.Profile, error)
	ProfileUpsert(ctx context.Context, in usecase.ProfileUpsertInput) (*entity.Profile, error)
	ProfileUpdateAvatar(ctx context.Context, in usecase.ProfileUpdateAvatarInput) (*usecase.ProfileUpdateAvatarOutput, error)

	ExperienceList(ctx context.Context) ([]entity.Experience, error)
	ExperienceCreate(ctx context.Context, in usecase.ExperienceCreateInput) (*entity.Experience, error)
	ExperienceUpdate(ctx context.Context, in usecase.ExperienceUpdateInput) error
	ExperienceDelete(ctx context.Context, id int64) error

	EducationList(ctx context.Context) ([]entity.Education, error)
	EducationCreate(ctx context.Context, in usecase.EducationCreateInput) (*entity.Education, error)
	EducationUpdate(ctx context.Context, in usecase.EducationUpdateInput) error
	EducationDelete(ctx context.Context, id int64) error

	SkillList(ctx context.Context) ([]entity.Skill, error)
	SkillCreate(ctx context.Context, in usecase.SkillCreateInput) (*entity.Skill, error)
	SkillUpdate(ctx context.Context, in usecase.SkillUpdateInput) error
	SkillDelete(ctx context.Context, id int64) error

	ProjectList(ctx context.Context) ([]entity.Project, error)
	ProjectCreate(ctx context.Context, in usecase.ProjectCreateInput) (*entity.Project, error)
	ProjectUpdate(ctx context.Context, in usecase.ProjectUpdateInput) error
	ProjectUploadFiles(ctx context.Context, in usecase.ProjectUploadFilesInput) (*entity.Project, error)
	ProjectDelete(ctx context.Context, id int64) error

	AchievementList(ctx context.Context) ([]entity.Achievement, error)
	AchievementCreate(ctx context.Context, in usecase.AchievementCreateInput) (*entity.Achievement, error)
	AchievementUpdate(ctx context.Context, in usecase.AchievementUpdateInput) error
	AchievementDelete(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Profile is a singleton: reads are public, writes need a token.
	r.GET("/api/v1/profile", end.ProfileGet)
	r.POST("/api/v1/profile", end.ProfileUpsert)
	r.PUT("/api/v1/profile/avatar", end.ProfileUpdateAvatar)

	r.GET("/api/v1/experience", end.ExperienceList)
	r.POST("/api/v1/experience", end.ExperienceCreate)
	r.PUT("/api/v1/experience/:id", end.ExperienceUpdate)
	r.DELETE("/api/v1/experience/:id", end.ExperienceDelete)

	r.GET("/api/v1/education", end.EducationList)
	r.POST("/api/v1/education", end.EducationCreate)
	r.PUT("/api/v1/education/:id", end.EducationUpdate)
	r.DELETE("/api/v1/education/:id", end.EducationDelete)

	r.GET("/api/v1/skills", end.SkillList)
	r.POST("/api/v1/skills", end.SkillCreate)
	r.PUT("/api/v1/skills/:id", end.SkillUpdate)
	r.DELETE("/api/v1/skills/:id", end.SkillDelete)

	r.GET("/api/v1/projects", end.ProjectList)
	r.POST("/api/v1/projects", end.ProjectCreate)
	r.PUT("/api/v1/projects/:id", end.ProjectUpdate)
	r.POST("/api/v1/projects/:id/files", end.ProjectUploadFiles)
	r.DELETE("/api/v1/projects/:id", end.ProjectDelete)

	r.GET("/api/v1/achievements", end.AchievementList)
	r.POST("/api/v1/achievements", end.AchievementCreate)
	r.PUT("/api/v1/achievements/:id", end.AchievementUpdate)
	r.DELETE("/api/v1/achievements/:id", end.AchievementDelete)
}
