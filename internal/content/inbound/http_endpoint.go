package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gofolio/internal/content/entity"
	"github.com/shandysiswandi/gofolio/internal/content/usecase"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
	"github.com/shandysiswandi/gofolio/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the portfolio content.
type HTTPEndpoint struct {
	uc uc
}

// ProfileGet returns the site owner's profile.
// @Summary Get profile
// @Description Returns the most recently updated profile, or an empty object when none exists.
// @Tags Content, Profile
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile result"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/profile [get]
func (h *HTTPEndpoint) ProfileGet(r *router.Request) (any, error) {
	p, err := h.uc.ProfileGet(r.Context())
	if err != nil {
		return nil, err
	}

	return newProfileResponse(p), nil
}

// ProfileUpsert creates or replaces the site owner's profile.
// @Summary Upsert profile
// @Description Creates the profile on first use, replaces its fields afterwards.
// @Tags Content, Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ProfileUpsertRequest true "Profile payload"
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile saved"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/profile [post]
func (h *HTTPEndpoint) ProfileUpsert(r *router.Request) (any, error) {
	var req ProfileUpsertRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	p, err := h.uc.ProfileUpsert(r.Context(), usecase.ProfileUpsertInput{
		Name:    req.Name,
		Title:   req.Title,
		Summary: req.Summary,
		Email:   req.Email,
		Phone:   req.Phone,
		Website: req.Website,
		Socials: req.Socials,
	})
	if err != nil {
		return nil, err
	}

	return newProfileResponse(p), nil
}

// ProfileUpdateAvatar uploads a new avatar image.
// @Summary Update profile avatar
// @Description Stores the uploaded image and points the profile at it.
// @Tags Content, Profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} router.successResponse{data=AvatarResponse} "Avatar updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Profile not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/profile/avatar [put]
func (h *HTTPEndpoint) ProfileUpdateAvatar(r *router.Request) (any, error) {
	ctx := r.Context()

	file, err := r.StreamSingleFile("avatar")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	resp, err := h.uc.ProfileUpdateAvatar(ctx, usecase.ProfileUpdateAvatarInput{
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	})
	if err != nil {
		return nil, err
	}

	return AvatarResponse{Avatar: resp.AvatarURL}, nil
}

// ExperienceList returns all work history entries.
// @Summary List experience
// @Tags Content, Experience
// @Produce json
// @Success 200 {object} router.successResponse{data=[]ExperienceResponse} "Experience list"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/experience [get]
func (h *HTTPEndpoint) ExperienceList(r *router.Request) (any, error) {
	items, err := h.uc.ExperienceList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(e entity.Experience, _ int) ExperienceResponse {
		return newExperienceResponse(e)
	}), nil
}

// ExperienceCreate adds a work history entry.
// @Summary Create experience
// @Tags Content, Experience
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ExperienceRequest true "Experience payload"
// @Success 201 {object} router.successResponse{data=ExperienceResponse} "Experience created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/experience [post]
func (h *HTTPEndpoint) ExperienceCreate(r *router.Request) (any, error) {
	var req ExperienceRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	e, err := h.uc.ExperienceCreate(r.Context(), usecase.ExperienceCreateInput{
		Role:        req.Role,
		Company:     req.Company,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Duration:    req.Duration,
		Description: req.Description,
		SortOrder:   req.Order,
	})
	if err != nil {
		return nil, err
	}

	return CreatedResponse{Record: newExperienceResponse(*e)}, nil
}

// ExperienceUpdate replaces a work history entry.
// @Summary Update experience
// @Tags Content, Experience
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Experience ID"
// @Param request body ExperienceRequest true "Experience payload"
// @Success 200 {object} router.successResponse "Experience updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Experience not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/experience/{id} [put]
func (h *HTTPEndpoint) ExperienceUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ExperienceRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ExperienceUpdate(r.Context(), usecase.ExperienceUpdateInput{
		ID:          id,
		Role:        req.Role,
		Company:     req.Company,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Duration:    req.Duration,
		Description: req.Description,
		SortOrder:   req.Order,
	}); err != nil {
		return nil, err
	}

	return UpdatedResponse{}, nil
}

// ExperienceDelete removes a work history entry.
// @Summary Delete experience
// @Tags Content, Experience
// @Security BearerAuth
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} router.successResponse "Experience deleted"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Experience not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/experience/{id} [delete]
func (h *HTTPEndpoint) ExperienceDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.ExperienceDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeletedResponse{}, nil
}

// EducationList returns all education entries.
// @Summary List education
// @Tags Content, Education
// @Produce json
// @Success 200 {object} router.successResponse{data=[]EducationResponse} "Education list"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/education [get]
func (h *HTTPEndpoint) EducationList(r *router.Request) (any, error) {
	items, err := h.uc.EducationList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(e entity.Education, _ int) EducationResponse {
		return newEducationResponse(e)
	}), nil
}

// EducationCreate adds an education entry.
// @Summary Create education
// @Tags Content, Education
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EducationRequest true "Education payload"
// @Success 201 {object} router.successResponse{data=EducationResponse} "Education created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/education [post]
func (h *HTTPEndpoint) EducationCreate(r *router.Request) (any, error) {
	var req EducationRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	e, err := h.uc.EducationCreate(r.Context(), usecase.EducationCreateInput{
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
		Grade:       req.Grade,
		Description: req.Description,
		SortOrder:   req.Order,
	})
	if err != nil {
		return nil, err
	}

	return CreatedResponse{Record: newEducationResponse(*e)}, nil
}

// EducationUpdate replaces an education entry.
// @Summary Update education
// @Tags Content, Education
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Education ID"
// @Param request body EducationRequest true "Education payload"
// @Success 200 {object} router.successResponse "Education updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Education not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/education/{id} [put]
func (h *HTTPEndpoint) EducationUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req EducationRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.EducationUpdate(r.Context(), usecase.EducationUpdateInput{
		ID:          id,
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
		Grade:       req.Grade,
		Description: req.Description,
		SortOrder:   req.Order,
	}); err != nil {
		return nil, err
	}

	return UpdatedResponse{}, nil
}

// EducationDelete removes an education entry.
// @Summary Delete education
// @Tags Content, Education
// @Security BearerAuth
// @Produce json
// @Param id path string true "Education ID"
// @Success 200 {object} router.successResponse "Education deleted"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Education not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/education/{id} [delete]
func (h *HTTPEndpoint) EducationDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.EducationDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeletedResponse{}, nil
}

// SkillList returns all skills.
// @Summary List skills
// @Tags Content, Skill
// @Produce json
// @Success 200 {object} router.successResponse{data=[]SkillResponse} "Skill list"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/skills [get]
func (h *HTTPEndpoint) SkillList(r *router.Request) (any, error) {
	items, err := h.uc.SkillList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(sk entity.Skill, _ int) SkillResponse {
		return newSkillResponse(sk)
	}), nil
}

// SkillCreate adds a skill.
// @Summary Create skill
// @Tags Content, Skill
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SkillRequest true "Skill payload"
// @Success 201 {object} router.successResponse{data=SkillResponse} "Skill created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/skills [post]
func (h *HTTPEndpoint) SkillCreate(r *router.Request) (any, error) {
	var req SkillRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	sk, err := h.uc.SkillCreate(r.Context(), usecase.SkillCreateInput{
		Name:      req.Name,
		Level:     req.Level,
		Percent:   req.Percent,
		Category:  req.Category,
		SortOrder: req.Order,
	})
	if err != nil {
		return nil, err
	}

	return CreatedResponse{Record: newSkillResponse(*sk)}, nil
}

// SkillUpdate replaces a skill.
// @Summary Update skill
// @Tags Content, Skill
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Skill ID"
// @Param request body SkillRequest true "Skill payload"
// @Success 200 {object} router.successResponse "Skill updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Skill not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/skills/{id} [put]
func (h *HTTPEndpoint) SkillUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req SkillRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SkillUpdate(r.Context(), usecase.SkillUpdateInput{
		ID:        id,
		Name:      req.Name,
		Level:     req.Level,
		Percent:   req.Percent,
		Category:  req.Category,
		SortOrder: req.Order,
	}); err != nil {
		return nil, err
	}

	return UpdatedResponse{}, nil
}

// SkillDelete removes a skill.
// @Summary Delete skill
// @Tags Content, Skill
// @Security BearerAuth
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} router.successResponse "Skill deleted"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Skill not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/skills/{id} [delete]
func (h *HTTPEndpoint) SkillDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.SkillDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeletedResponse{}, nil
}

// ProjectList returns all projects.
// @Summary List projects
// @Tags Content, Project
// @Produce json
// @Success 200 {object} router.successResponse{data=[]ProjectResponse} "Project list"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/projects [get]
func (h *HTTPEndpoint) ProjectList(r *router.Request) (any, error) {
	items, err := h.uc.ProjectList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(p entity.Project, _ int) ProjectResponse {
		return newProjectResponse(p)
	}), nil
}

// ProjectCreate adds a project.
// @Summary Create project
// @Tags Content, Project
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ProjectRequest true "Project payload"
// @Success 201 {object} router.successResponse{data=ProjectResponse} "Project created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/projects [post]
func (h *HTTPEndpoint) ProjectCreate(r *router.Request) (any, error) {
	var req ProjectRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	p, err := h.uc.ProjectCreate(r.Context(), usecase.ProjectCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Tech:        req.Tech,
		Link:        req.Link,
		Featured:    req.Featured,
		SortOrder:   req.Order,
	})
	if err != nil {
		return nil, err
	}

	return CreatedResponse{Record: newProjectResponse(*p)}, nil
}

// ProjectUpdate replaces a project's descriptive fields.
// @Summary Update project
// @Tags Content, Project
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body ProjectRequest true "Project payload"
// @Success 200 {object} router.successResponse "Project updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Project not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/projects/{id} [put]
func (h *HTTPEndpoint) ProjectUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ProjectRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ProjectUpdate(r.Context(), usecase.ProjectUpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Tech:        req.Tech,
		Link:        req.Link,
		Featured:    req.Featured,
		SortOrder:   req.Order,
	}); err != nil {
		return nil, err
	}

	return UpdatedResponse{}, nil
}

// ProjectUploadFiles attaches uploaded files to a project.
// @Summary Upload project files
// @Description Stores the uploaded files and appends their URLs to the project.
// @Tags Content, Project
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID"
// @Param files formData file true "Project files"
// @Success 200 {object} router.successResponse{data=ProjectResponse} "Files attached"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Project not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/projects/{id}/files [post]
func (h *HTTPEndpoint) ProjectUploadFiles(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	parts, err := r.ReadFiles("files", 10)
	if err != nil {
		return nil, err
	}

	files := lo.Map(parts, func(p router.FilePart, _ int) usecase.ProjectFile {
		return usecase.ProjectFile{
			Filename:    p.Filename,
			ContentType: http.DetectContentType(p.Data),
			Data:        bytes.NewReader(p.Data),
		}
	})

	project, err := h.uc.ProjectUploadFiles(r.Context(), usecase.ProjectUploadFilesInput{
		ID:    id,
		Files: files,
	})
	if err != nil {
		return nil, err
	}

	return newProjectResponse(*project), nil
}

// ProjectDelete removes a project.
// @Summary Delete project
// @Tags Content, Project
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} router.successResponse "Project deleted"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Project not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/projects/{id} [delete]
func (h *HTTPEndpoint) ProjectDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.ProjectDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeletedResponse{}, nil
}

// AchievementList returns all achievements.
// @Summary List achievements
// @Tags Content, Achievement
// @Produce json
// @Success 200 {object} router.successResponse{data=[]AchievementResponse} "Achievement list"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/achievements [get]
func (h *HTTPEndpoint) AchievementList(r *router.Request) (any, error) {
	items, err := h.uc.AchievementList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(a entity.Achievement, _ int) AchievementResponse {
		return newAchievementResponse(a)
	}), nil
}

// AchievementCreate adds an achievement.
// @Summary Create achievement
// @Tags Content, Achievement
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AchievementRequest true "Achievement payload"
// @Success 201 {object} router.successResponse{data=AchievementResponse} "Achievement created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/achievements [post]
func (h *HTTPEndpoint) AchievementCreate(r *router.Request) (any, error) {
	var req AchievementRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	a, err := h.uc.AchievementCreate(r.Context(), usecase.AchievementCreateInput{
		Title:       req.Title,
		Issuer:      req.Issuer,
		Date:        req.Date,
		Description: req.Description,
		Link:        req.Link,
		ImageURL:    req.Image,
		SortOrder:   req.Order,
	})
	if err != nil {
		return nil, err
	}

	return CreatedResponse{Record: newAchievementResponse(*a)}, nil
}

// AchievementUpdate replaces an achievement.
// @Summary Update achievement
// @Tags Content, Achievement
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Achievement ID"
// @Param request body AchievementRequest true "Achievement payload"
// @Success 200 {object} router.successResponse "Achievement updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Achievement not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/achievements/{id} [put]
func (h *HTTPEndpoint) AchievementUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req AchievementRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.AchievementUpdate(r.Context(), usecase.AchievementUpdateInput{
		ID:          id,
		Title:       req.Title,
		Issuer:      req.Issuer,
		Date:        req.Date,
		Description: req.Description,
		Link:        req.Link,
		ImageURL:    req.Image,
		SortOrder:   req.Order,
	}); err != nil {
		return nil, err
	}

	return UpdatedResponse{}, nil
}

// AchievementDelete removes an achievement.
// @Summary Delete achievement
// @Tags Content, Achievement
// @Security BearerAuth
// @Produce json
// @Param id path string true "Achievement ID"
// @Success 200 {object} router.successResponse "Achievement deleted"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Achievement not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/achievements/{id} [delete]
func (h *HTTPEndpoint) AchievementDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.AchievementDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return DeletedResponse{}, nil
}
