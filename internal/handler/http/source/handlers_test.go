package source_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techdiet/internal/domain/entity"
	"techdiet/internal/handler/http/source"
	catalogUC "techdiet/internal/usecase/catalog"
)

type stubCustomRepo struct {
	sources   []*entity.MediaSource
	created   *entity.MediaSource
	deleted   []string
	listErr   error
	createErr error
}

func (s *stubCustomRepo) List(_ context.Context) ([]*entity.MediaSource, error) {
	return s.sources, s.listErr
}

func (s *stubCustomRepo) Get(_ context.Context, id string) (*entity.MediaSource, error) {
	for _, src := range s.sources {
		if src.ID == id {
			return src, nil
		}
	}
	return nil, nil
}

func (s *stubCustomRepo) Create(_ context.Context, src *entity.MediaSource) error {
	s.created = src
	return s.createErr
}

func (s *stubCustomRepo) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubCustomRepo) Count(_ context.Context) (int, error) {
	return len(s.sources), nil
}

func builtIns() []*entity.MediaSource {
	return []*entity.MediaSource{
		{ID: "hard-fork", Name: "Hard Fork", Type: entity.TypePodcast, Frequency: "Weekly", BuiltIn: true},
		{ID: "tldr", Name: "TLDR", Type: entity.TypeNewsletter, Frequency: "Daily", BuiltIn: true},
	}
}

func TestListHandler_BuiltInsFirst(t *testing.T) {
	repo := &stubCustomRepo{sources: []*entity.MediaSource{
		{ID: "my-blog-a1b2c3d4", Name: "My Blog", Type: entity.TypeArticle, Frequency: "Weekly"},
	}}
	handler := source.ListHandler{Svc: &catalogUC.Service{BuiltIn: builtIns(), Custom: repo}}

	req := httptest.NewRequest(http.MethodGet, "/sources", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var got []source.DTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if !got[0].BuiltIn || !got[1].BuiltIn {
		t.Error("built-in sources must come first")
	}
	if got[2].ID != "my-blog-a1b2c3d4" {
		t.Errorf("last id = %q, want the custom source", got[2].ID)
	}
}

func TestCreateHandler_Success(t *testing.T) {
	repo := &stubCustomRepo{}
	handler := source.CreateHandler{Svc: &catalogUC.Service{BuiltIn: builtIns(), Custom: repo}}

	body := `{
		"name": "Stratechery",
		"type": "newsletter",
		"frequency": "Daily",
		"publish_days": [1, 2, 3, 4],
		"duration": "15 min read",
		"topics": ["strategy", "big tech"],
		"url": "https://stratechery.com"
	}`
	req := httptest.NewRequest(http.MethodPost, "/sources", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d; body %s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if repo.created == nil {
		t.Fatal("expected source to be created")
	}
	if repo.created.Name != "Stratechery" {
		t.Errorf("Name = %q, want %q", repo.created.Name, "Stratechery")
	}
	if !strings.HasPrefix(repo.created.ID, "stratechery-") {
		t.Errorf("ID = %q, want slug-prefixed", repo.created.ID)
	}

	var got source.DTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.BuiltIn {
		t.Error("custom source marked built-in")
	}
	if len(got.PublishDays) != 4 || got.PublishDays[0] != 1 {
		t.Errorf("PublishDays = %v, want [1 2 3 4]", got.PublishDays)
	}
}

func TestCreateHandler_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"type": "podcast", "frequency": "Weekly"}`},
		{name: "missing type", body: `{"name": "X", "frequency": "Weekly"}`},
		{name: "missing frequency", body: `{"name": "X", "type": "podcast"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubCustomRepo{}
			handler := source.CreateHandler{Svc: &catalogUC.Service{Custom: repo}}

			req := httptest.NewRequest(http.MethodPost, "/sources", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestCreateHandler_InvalidType(t *testing.T) {
	handler := source.CreateHandler{Svc: &catalogUC.Service{Custom: &stubCustomRepo{}}}

	body := `{"name": "X", "type": "telegram", "frequency": "Weekly"}`
	req := httptest.NewRequest(http.MethodPost, "/sources", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateHandler_DuplicateID(t *testing.T) {
	handler := source.CreateHandler{Svc: &catalogUC.Service{BuiltIn: builtIns(), Custom: &stubCustomRepo{}}}

	body := `{"id": "hard-fork", "name": "Another", "type": "podcast", "frequency": "Weekly"}`
	req := httptest.NewRequest(http.MethodPost, "/sources", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestDeleteHandler_Custom(t *testing.T) {
	repo := &stubCustomRepo{sources: []*entity.MediaSource{
		{ID: "my-blog-a1b2c3d4", Name: "My Blog", Type: entity.TypeArticle, Frequency: "Weekly"},
	}}
	handler := source.DeleteHandler{Svc: &catalogUC.Service{BuiltIn: builtIns(), Custom: repo}}

	req := httptest.NewRequest(http.MethodDelete, "/sources/my-blog-a1b2c3d4", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "my-blog-a1b2c3d4" {
		t.Errorf("deleted = %v", repo.deleted)
	}
}

func TestDeleteHandler_BuiltInIsNoOp(t *testing.T) {
	repo := &stubCustomRepo{}
	handler := source.DeleteHandler{Svc: &catalogUC.Service{BuiltIn: builtIns(), Custom: repo}}

	req := httptest.NewRequest(http.MethodDelete, "/sources/hard-fork", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if len(repo.deleted) != 0 {
		t.Errorf("built-in delete reached the repository: %v", repo.deleted)
	}
}
