package usecase

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

func TestProjectCreateAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.uc.ProjectCreate(ctx, ProjectCreateInput{
		Title: "Portfolio Site",
		Tech:  []string{"go", "postgres"},
		Link:  "https://example.com/portfolio",
	})
	if err != nil {
		t.Fatalf("ProjectCreate() error = %v", err)
	}
	if p.ID == 0 {
		t.Fatal("ProjectCreate() returned project without id")
	}
	if p.ImageURL != "" || len(p.FileURLs) != 0 {
		t.Fatalf("ProjectCreate() media = %q %v, want empty", p.ImageURL, p.FileURLs)
	}

	items, err := f.uc.ProjectList(ctx)
	if err != nil {
		t.Fatalf("ProjectList() error = %v", err)
	}
	if len(items) != 1 || items[0].Title != "Portfolio Site" {
		t.Fatalf("ProjectList() = %+v", items)
	}
}

func TestProjectCreateValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ProjectCreate(context.Background(), ProjectCreateInput{Link: "https://example.com"})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("ProjectCreate() error = %v, want invalid input", err)
	}
}

func TestProjectUploadFiles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.ProjectCreate(ctx, ProjectCreateInput{Title: "Portfolio Site"})
	if err != nil {
		t.Fatalf("ProjectCreate() error = %v", err)
	}

	updated, err := f.uc.ProjectUploadFiles(ctx, ProjectUploadFilesInput{
		ID: created.ID,
		Files: []ProjectFile{
			{Filename: "shot.png", ContentType: "image/png", Data: bytes.NewReader([]byte("png bytes"))},
			{Filename: "spec.pdf", ContentType: "application/pdf", Data: bytes.NewReader([]byte("pdf bytes"))},
		},
	})
	if err != nil {
		t.Fatalf("ProjectUploadFiles() error = %v", err)
	}

	if len(updated.FileURLs) != 2 {
		t.Fatalf("file urls = %v, want 2 entries", updated.FileURLs)
	}
	if updated.ImageURL != updated.FileURLs[0] {
		t.Fatalf("image = %q, want first upload %q", updated.ImageURL, updated.FileURLs[0])
	}
	if !strings.HasSuffix(updated.FileURLs[1], ".pdf") {
		t.Fatalf("second file url = %q, want .pdf suffix", updated.FileURLs[1])
	}
	if f.storage.count() != 2 {
		t.Fatalf("stored objects = %d, want 2", f.storage.count())
	}

	// A second batch appends and keeps the existing cover image.
	again, err := f.uc.ProjectUploadFiles(ctx, ProjectUploadFilesInput{
		ID: created.ID,
		Files: []ProjectFile{
			{Filename: "extra.jpg", ContentType: "image/jpeg", Data: bytes.NewReader([]byte("jpg bytes"))},
		},
	})
	if err != nil {
		t.Fatalf("ProjectUploadFiles() second batch error = %v", err)
	}
	if len(again.FileURLs) != 3 {
		t.Fatalf("file urls = %v, want 3 entries", again.FileURLs)
	}
	if again.ImageURL != updated.ImageURL {
		t.Fatalf("image changed: %q, want %q", again.ImageURL, updated.ImageURL)
	}
}

func TestProjectUploadFilesRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.ProjectCreate(ctx, ProjectCreateInput{Title: "Portfolio Site"})
	if err != nil {
		t.Fatalf("ProjectCreate() error = %v", err)
	}

	_, err = f.uc.ProjectUploadFiles(ctx, ProjectUploadFilesInput{ID: created.ID})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("empty batch error = %v, want invalid input", err)
	}

	tooMany := make([]ProjectFile, maxProjectFiles+1)
	for i := range tooMany {
		tooMany[i] = ProjectFile{ContentType: "image/png", Data: bytes.NewReader([]byte("x"))}
	}
	_, err = f.uc.ProjectUploadFiles(ctx, ProjectUploadFilesInput{ID: created.ID, Files: tooMany})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("oversized batch error = %v, want invalid input", err)
	}

	_, err = f.uc.ProjectUploadFiles(ctx, ProjectUploadFilesInput{
		ID:    created.ID,
		Files: []ProjectFile{{ContentType: "video/mp4", Data: bytes.NewReader([]byte("mp4"))}},
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("unsupported type error = %v, want invalid input", err)
	}

	_, err = f.uc.ProjectUploadFiles(ctx, ProjectUploadFilesInput{
		ID:    created.ID + 99,
		Files: []ProjectFile{{ContentType: "image/png", Data: bytes.NewReader([]byte("png"))}},
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeNotFound {
		t.Fatalf("unknown project error = %v, want not found", err)
	}
}

func TestProjectUploadFilesTooLarge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.ProjectCreate(ctx, ProjectCreateInput{Title: "Portfolio Site"})
	if err != nil {
		t.Fatalf("ProjectCreate() error = %v", err)
	}

	// stubConfig caps media at 1 MiB.
	big := bytes.Repeat([]byte("a"), (1<<20)+1)
	_, err = f.uc.ProjectUploadFiles(ctx, ProjectUploadFilesInput{
		ID:    created.ID,
		Files: []ProjectFile{{ContentType: "image/png", Data: bytes.NewReader(big)}},
	})
	if code, ok := codeStatus(err); !ok || code != goerror.CodeInvalidInput {
		t.Fatalf("oversized file error = %v, want invalid input", err)
	}
}

func TestProjectUpdateKeepsMedia(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.ProjectCreate(ctx, ProjectCreateInput{Title: "Portfolio Site"})
	if err != nil {
		t.Fatalf("ProjectCreate() error = %v", err)
	}
	if _, err := f.uc.ProjectUploadFiles(ctx, ProjectUploadFilesInput{
		ID:    created.ID,
		Files: []ProjectFile{{Filename: "shot.png", ContentType: "image/png", Data: bytes.NewReader([]byte("png"))}},
	}); err != nil {
		t.Fatalf("ProjectUploadFiles() error = %v", err)
	}

	if err := f.uc.ProjectUpdate(ctx, ProjectUpdateInput{
		ID:    created.ID,
		Title: "Portfolio Site v2",
		Tech:  []string{"go"},
	}); err != nil {
		t.Fatalf("ProjectUpdate() error = %v", err)
	}

	items, err := f.uc.ProjectList(ctx)
	if err != nil {
		t.Fatalf("ProjectList() error = %v", err)
	}
	if items[0].Title != "Portfolio Site v2" {
		t.Fatalf("title = %q", items[0].Title)
	}
	if items[0].ImageURL == "" || len(items[0].FileURLs) != 1 {
		t.Fatalf("media lost on update: image=%q files=%v", items[0].ImageURL, items[0].FileURLs)
	}
}

func TestProjectDeleteRemovesMedia(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.ProjectCreate(ctx, ProjectCreateInput{Title: "Portfolio Site"})
	if err != nil {
		t.Fatalf("ProjectCreate() error = %v", err)
	}
	if _, err := f.uc.ProjectUploadFiles(ctx, ProjectUploadFilesInput{
		ID:    created.ID,
		Files: []ProjectFile{{Filename: "shot.png", ContentType: "image/png", Data: bytes.NewReader([]byte("png"))}},
	}); err != nil {
		t.Fatalf("ProjectUploadFiles() error = %v", err)
	}

	if err := f.uc.ProjectDelete(ctx, created.ID); err != nil {
		t.Fatalf("ProjectDelete() error = %v", err)
	}

	items, err := f.uc.ProjectList(ctx)
	if err != nil {
		t.Fatalf("ProjectList() error = %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("ProjectList() = %+v, want empty", items)
	}
	if f.storage.count() != 0 {
		t.Fatalf("stored objects = %d, want 0 after delete", f.storage.count())
	}

	if err := f.uc.ProjectDelete(ctx, created.ID); err == nil {
		t.Fatal("deleting twice should fail")
	}
}
