package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"navio/internal/config"
	"navio/internal/handler"
	"navio/internal/middleware"
	"navio/internal/repository"
)

// Options carries the optional collaborators of the server. Nil fields disable
// the matching feature.
type Options struct {
	Sealer   repository.FieldSealer
	Notifier handler.AlertNotifier
}

type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *zap.Logger
	auth   *middleware.Authenticator
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger, opts Options) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.CORS(cfg.CORS.AllowedOrigin),
		middleware.ErrorResponder(logger, cfg.IsDevelopment()),
	)

	s := &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
		auth:   middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger),
	}
	s.setupRoutes(db, opts)
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes(db *sqlx.DB, opts Options) {
	paging := handler.Paging{DefaultLimit: s.cfg.API.DefaultLimit, MaxLimit: s.cfg.API.MaxLimit}

	partners := handler.NewPartnerHandler(repository.NewPartnerRepository(db, s.logger), paging, s.logger)
	tips := handler.NewTipHandler(repository.NewTipRepository(db, s.logger), paging, s.logger)
	campaigns := handler.NewCampaignHandler(repository.NewCampaignRepository(db, s.logger), paging, s.logger)
	sessions := handler.NewSessionHandler(repository.NewSessionRepository(db, s.logger), paging, s.logger)
	questions := handler.NewQuestionHandler(repository.NewQuestionRepository(db, s.logger), paging, s.logger)
	answers := handler.NewAnswerHandler(repository.NewAnswerRepository(db, s.logger), paging, s.logger)
	quiz := handler.NewQuizHandler(repository.NewQuizRepository(db, s.logger), paging, s.logger)
	risk := handler.NewRiskHandler(repository.NewRiskRepository(db, s.logger), paging, s.logger)
	ai := handler.NewAnalysisHandler(repository.NewAnalysisRepository(db, s.logger), paging, s.logger)
	panicInfo := handler.NewPanicHandler(repository.NewPanicInfoRepository(db, s.logger, opts.Sealer), opts.Notifier, s.logger)
	analytics := handler.NewAnalyticsHandler(repository.NewAnalyticsRepository(db, s.logger), s.logger)

	s.router.NoRoute(handler.NotFound)

	api := s.router.Group("/api")
	api.GET("/", handler.Index)
	api.GET("/health", handler.Health)

	required := s.auth.RequireAuth()

	partnerGroup := api.Group("/partners")
	{
		partnerGroup.GET("", partners.ListPartners)
		partnerGroup.GET("/:id", partners.GetPartner)
		partnerGroup.POST("", required, partners.CreatePartner)
		partnerGroup.PUT("/:id", required, partners.UpdatePartner)
		partnerGroup.DELETE("/:id", required, partners.DeletePartner)
	}

	panicGroup := api.Group("/panic", required)
	{
		panicGroup.GET("", panicInfo.GetPanicInfo)
		panicGroup.POST("", panicInfo.SavePanicInfo)
		panicGroup.PUT("", panicInfo.UpdatePanicInfo)
		panicGroup.DELETE("", panicInfo.DeletePanicInfo)
		panicGroup.POST("/alert", panicInfo.SendAlert)
	}

	// Everything else identifies the caller when it can but never insists.
	open := api.Group("", s.auth.OptionalAuth())

	tipGroup := open.Group("/tips")
	{
		tipGroup.GET("", tips.ListTips)
		tipGroup.GET("/:id", tips.GetTip)
		tipGroup.POST("", tips.CreateTip)
		tipGroup.PUT("/:id", tips.UpdateTip)
		tipGroup.POST("/:id/like", tips.LikeTip)
		tipGroup.DELETE("/:id", tips.DeleteTip)
	}

	campaignGroup := open.Group("/campaigns")
	{
		campaignGroup.GET("", campaigns.ListCampaigns)
		campaignGroup.GET("/:id", campaigns.GetCampaign)
		campaignGroup.POST("", campaigns.CreateCampaign)
		campaignGroup.PUT("/:id", campaigns.UpdateCampaign)
		campaignGroup.DELETE("/:id", campaigns.DeleteCampaign)
	}

	sessionGroup := open.Group("/sessions")
	{
		sessionGroup.GET("", sessions.ListSessions)
		sessionGroup.GET("/:id", sessions.GetSession)
		sessionGroup.POST("", sessions.CreateSession)
		sessionGroup.PUT("/:id", sessions.UpdateSession)
		sessionGroup.POST("/:id/join", sessions.JoinSession)
		sessionGroup.DELETE("/:id", sessions.DeleteSession)
	}

	questionGroup := open.Group("/questions")
	{
		questionGroup.GET("", questions.ListQuestions)
		questionGroup.GET("/:id", questions.GetQuestion)
		questionGroup.POST("", questions.CreateQuestion)
		questionGroup.POST("/:id/upvote", questions.UpvoteQuestion)
		questionGroup.PATCH("/:id/status", questions.UpdateQuestionStatus)
		questionGroup.DELETE("/:id", questions.DeleteQuestion)
	}

	answerGroup := open.Group("/answers")
	{
		answerGroup.GET("", answers.ListAnswers)
		answerGroup.GET("/:id", answers.GetAnswer)
		answerGroup.POST("", answers.CreateAnswer)
		answerGroup.PUT("/:id", answers.UpdateAnswer)
		answerGroup.POST("/:id/helpful", answers.MarkHelpful)
		answerGroup.PATCH("/:id/verify", answers.VerifyAnswer)
		answerGroup.DELETE("/:id", answers.DeleteAnswer)
	}

	quizGroup := open.Group("/quiz")
	{
		quizGroup.GET("/results", quiz.ListResults)
		quizGroup.GET("/results/:id", quiz.GetResult)
		quizGroup.POST("/results", quiz.SubmitResult)
		quizGroup.GET("/stats/:user_id", quiz.GetUserStats)
	}

	riskGroup := open.Group("/risk")
	{
		riskGroup.GET("", risk.ListAssessments)
		riskGroup.GET("/:id", risk.GetAssessment)
		riskGroup.POST("", risk.CreateAssessment)
	}

	aiGroup := open.Group("/ai")
	{
		aiGroup.GET("", ai.ListAnalyses)
		aiGroup.GET("/:id", ai.GetAnalysis)
		aiGroup.POST("", ai.Analyze)
		aiGroup.POST("/analyze", ai.Analyze)
	}

	open.GET("/analytics/dashboard", analytics.GetDashboard)
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("address", srv.Addr), zap.String("environment", s.cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info("Server exited")
	return nil
}
