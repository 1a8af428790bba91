package api_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"navio/internal/config"
	"navio/internal/middleware"
	"navio/internal/models"
	"navio/internal/repository"
	"navio/internal/server"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

// newLiveServer runs the real router over a migrated sqlite database.
func newLiveServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	db, err := repository.NewDB(config.DriverSQLite, filepath.Join(t.TempDir(), "navio.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repository.MigrateUp(db, config.DriverSQLite, logger))

	cfg := &config.Config{}
	cfg.Server.Environment = "development"
	cfg.Database.Driver = config.DriverSQLite
	cfg.API.DefaultLimit = 50
	cfg.API.MaxLimit = 200
	cfg.Auth.JWTSecret = "client-secret"
	cfg.Auth.TokenTTL = time.Hour
	cfg.CORS.AllowedOrigin = "*"

	ts := httptest.NewServer(server.NewServer(db, cfg, logger, server.Options{}).Handler())
	t.Cleanup(ts.Close)

	token, err := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger).
		SignToken(models.AuthUser{ID: "client-user", Email: "client@example.org"})
	require.NoError(t, err)
	return ts, token
}

func TestClient_RoundTrip(t *testing.T) {
	ts, token := newLiveServer(t)
	ctx := context.Background()
	anon := NewClient(ts.URL, "")
	authed := NewClient(ts.URL+"/", token)

	health, err := anon.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", health["status"])

	_, err = anon.CreatePartner(ctx, models.CreatePartnerInput{OrganizationName: "Amani", ContactEmail: "a@amani.example"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Authentication required", apiErr.Err)

	partner, err := authed.CreatePartner(ctx, models.CreatePartnerInput{OrganizationName: "Amani", ContactEmail: "a@amani.example"})
	require.NoError(t, err)

	partner, err = authed.UpdatePartner(ctx, partner.ID, models.UpdatePartnerInput{VerificationStatus: strp("verified")})
	require.NoError(t, err)
	assert.Equal(t, "verified", partner.VerificationStatus)
	assert.Equal(t, "Amani", partner.OrganizationName)

	tip, err := anon.CreateTip(ctx, models.CreateTipInput{
		PartnerID: &partner.ID,
		Title:     "Lock your accounts",
		Category:  "Digital Security",
		Content:   "Turn on two-factor authentication.",
		Tags:      models.StringList{"2fa"},
	})
	require.NoError(t, err)
	assert.Equal(t, "draft", tip.Status)

	likes, err := anon.LikeTip(ctx, tip.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	tips, err := anon.ListTips(ctx, models.TipFilter{PartnerID: partner.ID, Page: models.Page{Limit: 10}})
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.Equal(t, models.StringList{"2fa"}, tips[0].Tags)

	session, err := anon.CreateSession(ctx, models.CreateSessionInput{Title: "Ask us anything", Description: "Open Q&A"})
	require.NoError(t, err)
	question, err := anon.CreateQuestion(ctx, models.CreateQuestionInput{SessionID: session.ID, QuestionText: "Is my data safe?"})
	require.NoError(t, err)
	answer, err := anon.CreateAnswer(ctx, models.CreateAnswerInput{QuestionID: question.ID, AnswerText: "Yes, with care."})
	require.NoError(t, err)

	answer, err = anon.VerifyAnswer(ctx, answer.ID, true)
	require.NoError(t, err)
	assert.True(t, answer.IsVerified)
	answer, err = anon.VerifyAnswer(ctx, answer.ID, false)
	require.NoError(t, err)
	assert.False(t, answer.IsVerified)

	result, err := anon.SubmitQuizResult(ctx, models.CreateQuizResultInput{
		UserID: strp("client-user"), QuizID: "phishing", Score: intp(5), TotalPoints: intp(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Score)

	stats, err := anon.QuizStats(ctx, "client-user")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Overall.TotalQuizzes)

	analysis, err := anon.Analyze(ctx, models.AnalyzeInput{InputText: "Let's meet at this address"})
	require.NoError(t, err)
	assert.Equal(t, models.RiskMedium, analysis.RiskLevel)

	_, err = authed.SavePanicInfo(ctx, models.PanicInfoInput{FullName: strp("Client User")})
	require.NoError(t, err)
	info, err := authed.GetPanicInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "client-user", info.UserID)
	require.NoError(t, authed.DeletePanicInfo(ctx))
	_, err = authed.GetPanicInfo(ctx)
	assert.True(t, IsNotFound(err))

	require.NoError(t, authed.DeletePartner(ctx, partner.ID))
	_, err = anon.GetPartner(ctx, partner.ID)
	assert.True(t, IsNotFound(err))

	dashboard, err := anon.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, dashboard.Partners)
}

func TestClient_QueryAndErrors(t *testing.T) {
	var gotQuery, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/api/questions":
			_, _ = w.Write([]byte(`[]`))
		case "/api/broken":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Internal server error","message":"pq: connection refused"}`))
		}
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "tok")
	_, err := c.ListQuestions(context.Background(), models.QuestionFilter{
		SessionID: "s1", Status: "pending", Page: models.Page{Limit: 20, Offset: 40},
	})
	require.NoError(t, err)
	assert.Equal(t, "limit=20&offset=40&session_id=s1&status=pending", gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)

	_, err = c.GetTip(context.Background(), "x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "pq: connection refused", apiErr.Details)
	assert.Contains(t, err.Error(), "api error 500")

	err = c.do(context.Background(), http.MethodGet, "/broken", nil, nil, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream down", apiErr.Err)
	assert.False(t, IsNotFound(err))
}
