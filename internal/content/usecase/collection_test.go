package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

func TestExperienceLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	e, err := f.uc.ExperienceCreate(ctx, ExperienceCreateInput{
		Role:      "Backend Engineer",
		Company:   "Acme",
		StartDate: "Jan 2020",
		EndDate:   "Present",
	})
	if err != nil {
		t.Fatalf("ExperienceCreate() error = %v", err)
	}

	if err := f.uc.ExperienceUpdate(ctx, ExperienceUpdateInput{
		ID:      e.ID,
		Role:    "Senior Backend Engineer",
		Company: "Acme",
	}); err != nil {
		t.Fatalf("ExperienceUpdate() error = %v", err)
	}

	items, err := f.uc.ExperienceList(ctx)
	if err != nil {
		t.Fatalf("ExperienceList() error = %v", err)
	}
	if len(items) != 1 || items[0].Role != "Senior Backend Engineer" {
		t.Fatalf("ExperienceList() = %+v", items)
	}

	if err := f.uc.ExperienceDelete(ctx, e.ID); err != nil {
		t.Fatalf("ExperienceDelete() error = %v", err)
	}
	if err := f.uc.ExperienceDelete(ctx, e.ID); err == nil {
		t.Fatal("deleting twice should fail")
	}
}

func TestExperienceValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ExperienceCreate(context.Background(), ExperienceCreateInput{Role: "Engineer"})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("ExperienceCreate() error = %v, want invalid input", err)
	}

	err = f.uc.ExperienceUpdate(context.Background(), ExperienceUpdateInput{Role: "Engineer", Company: "Acme"})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("ExperienceUpdate() without id error = %v, want invalid input", err)
	}
}

func TestEducationLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	e, err := f.uc.EducationCreate(ctx, EducationCreateInput{
		Institution: "State University",
		Degree:      "BSc",
		Field:       "Computer Science",
		StartYear:   "2015",
		EndYear:     "2019",
	})
	if err != nil {
		t.Fatalf("EducationCreate() error = %v", err)
	}

	if err := f.uc.EducationUpdate(ctx, EducationUpdateInput{
		ID:          e.ID,
		Institution: "State University",
		Grade:       "3.8",
	}); err != nil {
		t.Fatalf("EducationUpdate() error = %v", err)
	}

	items, err := f.uc.EducationList(ctx)
	if err != nil {
		t.Fatalf("EducationList() error = %v", err)
	}
	if len(items) != 1 || items[0].Grade != "3.8" {
		t.Fatalf("EducationList() = %+v", items)
	}

	if err := f.uc.EducationDelete(ctx, e.ID); err != nil {
		t.Fatalf("EducationDelete() error = %v", err)
	}

	err = f.uc.EducationUpdate(ctx, EducationUpdateInput{ID: e.ID, Institution: "State University"})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeNotFound {
		t.Fatalf("EducationUpdate() after delete error = %v, want not found", err)
	}
}

func TestSkillLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sk, err := f.uc.SkillCreate(ctx, SkillCreateInput{
		Name:     "Go",
		Level:    "Advanced",
		Percent:  90,
		Category: "Backend",
	})
	if err != nil {
		t.Fatalf("SkillCreate() error = %v", err)
	}

	if err := f.uc.SkillUpdate(ctx, SkillUpdateInput{
		ID:      sk.ID,
		Name:    "Go",
		Percent: 95,
	}); err != nil {
		t.Fatalf("SkillUpdate() error = %v", err)
	}

	items, err := f.uc.SkillList(ctx)
	if err != nil {
		t.Fatalf("SkillList() error = %v", err)
	}
	if len(items) != 1 || items[0].Percent != 95 {
		t.Fatalf("SkillList() = %+v", items)
	}

	if err := f.uc.SkillDelete(ctx, sk.ID); err != nil {
		t.Fatalf("SkillDelete() error = %v", err)
	}
}

func TestSkillPercentBounds(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.SkillCreate(context.Background(), SkillCreateInput{Name: "Go", Percent: 101})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("SkillCreate() percent>100 error = %v, want invalid input", err)
	}

	_, err = f.uc.SkillCreate(context.Background(), SkillCreateInput{Name: "Go", Percent: -1})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("SkillCreate() percent<0 error = %v, want invalid input", err)
	}
}

func TestAchievementLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.uc.AchievementCreate(ctx, AchievementCreateInput{
		Title:  "Cloud Certification",
		Issuer: "Cloud Vendor",
		Date:   "2024",
		Link:   "https://example.com/cert",
	})
	if err != nil {
		t.Fatalf("AchievementCreate() error = %v", err)
	}

	if err := f.uc.AchievementUpdate(ctx, AchievementUpdateInput{
		ID:     a.ID,
		Title:  "Cloud Certification",
		Issuer: "Cloud Vendor Inc",
	}); err != nil {
		t.Fatalf("AchievementUpdate() error = %v", err)
	}

	items, err := f.uc.AchievementList(ctx)
	if err != nil {
		t.Fatalf("AchievementList() error = %v", err)
	}
	if len(items) != 1 || items[0].Issuer != "Cloud Vendor Inc" {
		t.Fatalf("AchievementList() = %+v", items)
	}

	if err := f.uc.AchievementDelete(ctx, a.ID); err != nil {
		t.Fatalf("AchievementDelete() error = %v", err)
	}

	err = f.uc.AchievementDelete(ctx, a.ID)
	if code, ok := codeStatus(err); !ok || code != goerror.CodeNotFound {
		t.Fatalf("AchievementDelete() after delete error = %v, want not found", err)
	}
}

func TestAchievementValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AchievementCreate(context.Background(), AchievementCreateInput{Link: "not a url"})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("AchievementCreate() error = %v, want invalid input", err)
	}
}
