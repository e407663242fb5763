package inbound

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shandysiswandi/gofolio/internal/content/entity"
)

// CreatedResponse wraps a freshly created record so creates answer
// with 201 while the record itself stays the payload.
type CreatedResponse struct {
	Record any `json:"-"`
}

func (CreatedResponse) Message() string {
	return "Created"
}

func (CreatedResponse) StatusCode() int {
	return http.StatusCreated
}

func (c CreatedResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Record)
}

type UpdatedResponse struct{}

func (UpdatedResponse) Message() string {
	return "Updated"
}

type DeletedResponse struct{}

func (DeletedResponse) Message() string {
	return "Deleted"
}

type ProfileResponse struct {
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name,omitempty"`
	Title     string         `json:"title,omitempty"`
	Summary   string         `json:"summary,omitempty"`
	Email     string         `json:"email,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Website   string         `json:"website,omitempty"`
	Avatar    string         `json:"avatar,omitempty"`
	Socials   map[string]any `json:"socials,omitempty"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

type ProfileUpsertRequest struct {
	Name    string            `json:"name"`
	Title   string            `json:"title"`
	Summary string            `json:"summary"`
	Email   string            `json:"email"`
	Phone   string            `json:"phone"`
	Website string            `json:"website"`
	Socials map[string]string `json:"socials"`
}

type AvatarResponse struct {
	Avatar string `json:"avatar"`
}

func (AvatarResponse) Message() string {
	return "Avatar updated"
}

type ExperienceResponse struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Order       int32     `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ExperienceRequest struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Order       int32  `json:"order"`
}

type EducationResponse struct {
	ID          string    `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	StartYear   string    `json:"start_year"`
	EndYear     string    `json:"end_year"`
	Grade       string    `json:"grade"`
	Description string    `json:"description"`
	Order       int32     `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EducationRequest struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	Grade       string `json:"grade"`
	Description string `json:"description"`
	Order       int32  `json:"order"`
}

type SkillResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	Percent   int16     `json:"percent"`
	Category  string    `json:"category"`
	Order     int32     `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SkillRequest struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Percent  int16  `json:"percent"`
	Category string `json:"category"`
	Order    int32  `json:"order"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tech        []string  `json:"tech"`
	Link        string    `json:"link"`
	Image       string    `json:"image"`
	Files       []string  `json:"files"`
	Featured    bool      `json:"featured"`
	Order       int32     `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Link        string   `json:"link"`
	Featured    bool     `json:"featured"`
	Order       int32    `json:"order"`
}

type AchievementResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Issuer      string    `json:"issuer"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Image       string    `json:"image"`
	Order       int32     `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AchievementRequest struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	Order       int32  `json:"order"`
}

func newProfileResponse(p *entity.Profile) ProfileResponse {
	if p == nil {
		return ProfileResponse{}
	}

	createdAt, updatedAt := p.CreatedAt, p.UpdatedAt
	return ProfileResponse{
		ID:        strconv.FormatInt(p.ID, 10),
		Name:      p.Name,
		Title:     p.Title,
		Summary:   p.Summary,
		Email:     p.Email,
		Phone:     p.Phone,
		Website:   p.Website,
		Avatar:    p.AvatarURL,
		Socials:   p.Socials,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}
}

func newExperienceResponse(e entity.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:          strconv.FormatInt(e.ID, 10),
		Role:        e.Role,
		Company:     e.Company,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Duration:    e.Duration,
		Description: e.Description,
		Order:       e.SortOrder,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func newEducationResponse(e entity.Education) EducationResponse {
	return EducationResponse{
		ID:          strconv.FormatInt(e.ID, 10),
		Institution: e.Institution,
		Degree:      e.Degree,
		Field:       e.Field,
		StartYear:   e.StartYear,
		EndYear:     e.EndYear,
		Grade:       e.Grade,
		Description: e.Description,
		Order:       e.SortOrder,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func newSkillResponse(sk entity.Skill) SkillResponse {
	return SkillResponse{
		ID:        strconv.FormatInt(sk.ID, 10),
		Name:      sk.Name,
		Level:     sk.Level,
		Percent:   sk.Percent,
		Category:  sk.Category,
		Order:     sk.SortOrder,
		CreatedAt: sk.CreatedAt,
		UpdatedAt: sk.UpdatedAt,
	}
}

func newProjectResponse(p entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:          strconv.FormatInt(p.ID, 10),
		Title:       p.Title,
		Description: p.Description,
		Tech:        p.Tech,
		Link:        p.Link,
		Image:       p.ImageURL,
		Files:       p.FileURLs,
		Featured:    p.Featured,
		Order:       p.SortOrder,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newAchievementResponse(a entity.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:          strconv.FormatInt(a.ID, 10),
		Title:       a.Title,
		Issuer:      a.Issuer,
		Date:        a.Date,
		Description: a.Description,
		Link:        a.Link,
		Image:       a.ImageURL,
		Order:       a.SortOrder,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
