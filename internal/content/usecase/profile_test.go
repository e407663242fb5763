package usecase

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

func TestProfileGetWithoutProfile(t *testing.T) {
	f := newFixture(t)

	p, err := f.uc.ProfileGet(context.Background())
	if err != nil {
		t.Fatalf("ProfileGet() error = %v", err)
	}
	if p != nil {
		t.Fatalf("ProfileGet() = %+v, want nil", p)
	}
}

func TestProfileUpsertCreatesThenUpdates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.ProfileUpsert(ctx, ProfileUpsertInput{
		Name:    "Jamie Doe",
		Title:   "Software Engineer",
		Email:   "jamie@example.com",
		Socials: map[string]string{"github": "https://github.com/jamie"},
	})
	if err != nil {
		t.Fatalf("ProfileUpsert() error = %v", err)
	}
	if created.ID == 0 {
		t.Fatal("ProfileUpsert() created profile without id")
	}
	if created.Socials.GetString("github") != "https://github.com/jamie" {
		t.Fatalf("ProfileUpsert() socials = %+v", created.Socials)
	}

	updated, err := f.uc.ProfileUpsert(ctx, ProfileUpsertInput{
		Name:  "Jamie Doe",
		Title: "Staff Engineer",
	})
	if err != nil {
		t.Fatalf("ProfileUpsert() second call error = %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("ProfileUpsert() replaced id: got %d, want %d", updated.ID, created.ID)
	}
	if updated.Title != "Staff Engineer" {
		t.Fatalf("ProfileUpsert() title = %q", updated.Title)
	}

	p, err := f.uc.ProfileGet(ctx)
	if err != nil {
		t.Fatalf("ProfileGet() error = %v", err)
	}
	if p.Title != "Staff Engineer" {
		t.Fatalf("ProfileGet() title = %q", p.Title)
	}
}

func TestProfileUpsertValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		in   ProfileUpsertInput
	}{
		{name: "missing name", in: ProfileUpsertInput{Email: "a@b.com"}},
		{name: "bad email", in: ProfileUpsertInput{Name: "Jamie", Email: "not-an-email"}},
		{name: "bad website", in: ProfileUpsertInput{Name: "Jamie", Website: "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.ProfileUpsert(context.Background(), tt.in)
			if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
				t.Fatalf("ProfileUpsert() error = %v, want invalid input", err)
			}
		})
	}
}

func TestProfileUpdateAvatar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.uc.ProfileUpsert(ctx, ProfileUpsertInput{Name: "Jamie"}); err != nil {
		t.Fatalf("ProfileUpsert() error = %v", err)
	}

	out, err := f.uc.ProfileUpdateAvatar(ctx, ProfileUpdateAvatarInput{
		File:        bytes.NewReader([]byte("first image bytes")),
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("ProfileUpdateAvatar() error = %v", err)
	}
	if !strings.HasPrefix(out.AvatarURL, "https://cdn.example.com/avatars/") {
		t.Fatalf("ProfileUpdateAvatar() url = %q", out.AvatarURL)
	}
	if !strings.HasSuffix(out.AvatarURL, ".png") {
		t.Fatalf("ProfileUpdateAvatar() url = %q, want .png suffix", out.AvatarURL)
	}

	p, err := f.uc.ProfileGet(ctx)
	if err != nil {
		t.Fatalf("ProfileGet() error = %v", err)
	}
	if p.AvatarURL != out.AvatarURL {
		t.Fatalf("profile avatar = %q, want %q", p.AvatarURL, out.AvatarURL)
	}

	// Replacing the avatar drops the previous object.
	out2, err := f.uc.ProfileUpdateAvatar(ctx, ProfileUpdateAvatarInput{
		File:        bytes.NewReader([]byte("second image bytes")),
		ContentType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("ProfileUpdateAvatar() second call error = %v", err)
	}
	if out2.AvatarURL == out.AvatarURL {
		t.Fatal("second avatar upload reused the same url")
	}
	if f.storage.count() != 1 {
		t.Fatalf("stored objects = %d, want 1 after replacement", f.storage.count())
	}
}

func TestProfileUpdateAvatarRejectsUnsupportedType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.uc.ProfileUpsert(ctx, ProfileUpsertInput{Name: "Jamie"}); err != nil {
		t.Fatalf("ProfileUpsert() error = %v", err)
	}

	_, err := f.uc.ProfileUpdateAvatar(ctx, ProfileUpdateAvatarInput{
		File:        bytes.NewReader([]byte("plain text")),
		ContentType: "text/plain",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("ProfileUpdateAvatar() error = %v, want invalid input", err)
	}
	if f.storage.count() != 0 {
		t.Fatalf("stored objects = %d, want 0", f.storage.count())
	}
}

func TestProfileUpdateAvatarWithoutProfile(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ProfileUpdateAvatar(context.Background(), ProfileUpdateAvatarInput{
		File:        bytes.NewReader([]byte("image bytes")),
		ContentType: "image/png",
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeNotFound {
		t.Fatalf("ProfileUpdateAvatar() error = %v, want not found", err)
	}
}
