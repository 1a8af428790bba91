package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"navio/internal/apperror"
	"navio/internal/middleware"
	"navio/internal/models"
	"navio/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorResponder(zap.NewNop(), false))
	return r
}

func request(r http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestPagingPage(t *testing.T) {
	paging := Paging{DefaultLimit: 50, MaxLimit: 200}

	tests := []struct {
		name    string
		query   string
		want    models.Page
		wantErr bool
	}{
		{"defaults", "", models.Page{Limit: 50}, false},
		{"explicit", "limit=10&offset=5", models.Page{Limit: 10, Offset: 5}, false},
		{"capped", "limit=5000", models.Page{Limit: 200}, false},
		{"zero falls back to default", "limit=0", models.Page{Limit: 50}, false},
		{"non integer limit", "limit=ten", models.Page{}, true},
		{"negative offset", "offset=-1", models.Page{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)

			got, err := paging.page(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperror.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type stubTips struct {
	repository.TipRepository
	created models.CreateTipInput
}

func (s *stubTips) Create(_ context.Context, in models.CreateTipInput) (*models.Tip, error) {
	s.created = in
	return &models.Tip{ID: "tip-1", Title: in.Title, Category: in.Category, Content: in.Content, Status: "draft"}, nil
}

func TestTipHandler_ValidationAndPathIDs(t *testing.T) {
	repo := &stubTips{}
	h := NewTipHandler(repo, Paging{DefaultLimit: 50, MaxLimit: 200}, zap.NewNop())
	r := newEngine()
	r.POST("/tips", h.CreateTip)
	r.GET("/tips/:id", h.GetTip)

	w, body := request(r, http.MethodPost, "/tips", `{"title":"X","category":"Digital Security"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title, category, and content are required", body["error"])

	w, body = request(r, http.MethodPost, "/tips", `not json`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title, category, and content are required", body["error"])

	w, body = request(r, http.MethodPost, "/tips", `{"title":"X","category":"Digital Security","content":"Y"}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "draft", body["status"])
	assert.Equal(t, "Y", repo.created.Content)

	w, body = request(r, http.MethodGet, "/tips/not-a-uuid", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Tip not found", body["error"])
}

type stubAnswers struct {
	repository.AnswerRepository
	verified *bool
}

func (s *stubAnswers) SetVerified(_ context.Context, id string, verified bool) (*models.Answer, error) {
	s.verified = &verified
	return &models.Answer{ID: id, IsVerified: verified}, nil
}

func TestAnswerHandler_Verify(t *testing.T) {
	const id = "0b9c7c36-8f43-4d0e-9d7e-3f1b2c4d5e6f"

	tests := []struct {
		name string
		body string
		want bool
	}{
		{"empty body verifies", "", true},
		{"null verifies", `{"is_verified":null}`, true},
		{"true verifies", `{"is_verified":true}`, true},
		{"explicit false unverifies", `{"is_verified":false}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubAnswers{}
			r := newEngine()
			r.PATCH("/answers/:id/verify", NewAnswerHandler(repo, Paging{DefaultLimit: 50, MaxLimit: 200}, zap.NewNop()).VerifyAnswer)

			w, body := request(r, http.MethodPatch, "/answers/"+id+"/verify", tt.body, "")
			require.Equal(t, http.StatusOK, w.Code)
			require.NotNil(t, repo.verified)
			assert.Equal(t, tt.want, *repo.verified)
			assert.Equal(t, tt.want, body["is_verified"])
		})
	}
}

type stubAnalyses struct {
	repository.AnalysisRepository
	stored []*models.AIAnalysis
}

func (s *stubAnalyses) Create(_ context.Context, a *models.AIAnalysis) error {
	a.ID = "analysis-1"
	a.CreatedAt = time.Now().UTC()
	s.stored = append(s.stored, a)
	return nil
}

func TestAnalysisHandler_Analyze(t *testing.T) {
	repo := &stubAnalyses{}
	r := newEngine()
	r.POST("/ai/analyze", NewAnalysisHandler(repo, Paging{DefaultLimit: 50, MaxLimit: 200}, zap.NewNop()).Analyze)

	for _, body := range []string{`{}`, `{"input_text":"   \n\t"}`} {
		w, out := request(r, http.MethodPost, "/ai/analyze", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Input text is required", out["error"])
	}
	assert.Empty(t, repo.stored)

	w, out := request(r, http.MethodPost, "/ai/analyze", `{"input_text":"Send the money transfer urgently and keep it secret"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.RiskHigh, out["risk_level"])
	assert.Equal(t, "analysis-1", out["id"])
	require.Len(t, repo.stored, 1)
	assert.Nil(t, repo.stored[0].UserID)
}

type stubPanic struct {
	repository.PanicInfoRepository
	active map[string]*models.PanicInfo
}

func (s *stubPanic) GetActive(_ context.Context, userID string) (*models.PanicInfo, error) {
	if info, ok := s.active[userID]; ok {
		return info, nil
	}
	return nil, apperror.NotFound("Panic info not found")
}

type stubNotifier struct {
	enabled bool
	err     error
	alerts  []models.PanicInfo
}

func (n *stubNotifier) Enabled() bool { return n.enabled }

func (n *stubNotifier) SendPanicAlert(_ context.Context, info models.PanicInfo, _ models.AuthUser) error {
	if n.err != nil {
		return n.err
	}
	n.alerts = append(n.alerts, info)
	return nil
}

func TestPanicHandler_SendAlert(t *testing.T) {
	auth := middleware.NewAuthenticator("test-secret", time.Hour, zap.NewNop())
	withCard, err := auth.SignToken(models.AuthUser{ID: "user-1", Email: "a@example.org"})
	require.NoError(t, err)
	withoutCard, err := auth.SignToken(models.AuthUser{ID: "user-2"})
	require.NoError(t, err)

	name := "Wanjiru"
	repo := &stubPanic{active: map[string]*models.PanicInfo{"user-1": {UserID: "user-1", FullName: &name}}}

	route := func(n AlertNotifier) *gin.Engine {
		r := newEngine()
		r.POST("/panic/alert", auth.RequireAuth(), NewPanicHandler(repo, n, zap.NewNop()).SendAlert)
		return r
	}

	t.Run("requires auth", func(t *testing.T) {
		w, _ := request(route(&stubNotifier{enabled: true}), http.MethodPost, "/panic/alert", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("disabled notifier", func(t *testing.T) {
		w, body := request(route(nil), http.MethodPost, "/panic/alert", "", withCard)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "Panic alerts are not configured", body["error"])

		w, _ = request(route(&stubNotifier{}), http.MethodPost, "/panic/alert", "", withCard)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("no active card", func(t *testing.T) {
		w, body := request(route(&stubNotifier{enabled: true}), http.MethodPost, "/panic/alert", "", withoutCard)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Panic info not found", body["error"])
	})

	t.Run("sent", func(t *testing.T) {
		n := &stubNotifier{enabled: true}
		w, body := request(route(n), http.MethodPost, "/panic/alert", "", withCard)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["sent"])
		require.Len(t, n.alerts, 1)
		assert.Equal(t, "Wanjiru", *n.alerts[0].FullName)
	})

	t.Run("delivery failure", func(t *testing.T) {
		n := &stubNotifier{enabled: true, err: errors.New("telegram unreachable")}
		w, body := request(route(n), http.MethodPost, "/panic/alert", "", withCard)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body["error"])
	})
}

func TestHealthAndIndex(t *testing.T) {
	r := newEngine()
	r.GET("/health", Health)
	r.GET("/", Index)
	r.NoRoute(NotFound)

	w, body := request(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Navio Application is running", body["message"])

	w, body = request(r, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.0.0", body["version"])
	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/api/quiz", endpoints["quiz"])

	w, body = request(r, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "API endpoint not found", body["error"])
}
