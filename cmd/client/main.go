package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"ats-client/internal/access"
	"ats-client/internal/api"
	"ats-client/internal/common/cache"
	"ats-client/internal/common/config"
	"ats-client/internal/common/httpclient"
	"ats-client/internal/common/logger"
	"ats-client/internal/nav"
	"ats-client/internal/session"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.NewZapAdapter(zapLog)

	store := newCacheStore(cfg, log)
	defer store.Close()

	transport := httpclient.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.Timeout)*time.Millisecond, log)
	apiClient := api.NewClient(transport, log)
	sessions := session.NewStore(apiClient, log)
	router := nav.NewRouter()

	shell := &shell{
		cfg:      cfg,
		log:      log,
		api:      apiClient,
		sessions: sessions,
		router:   router,
		cache:    store,
		in:       bufio.NewReader(os.Stdin),
	}

	if err := shell.run(context.Background()); err != nil {
		zapLog.Fatal("client exited with error", zap.Error(err))
	}
}

// newCacheStore connects the Redis-backed progress cache when one is
// configured, falling back to the in-memory store when the endpoint is
// unreachable or disabled.
func newCacheStore(cfg *config.Config, log logger.Logger) cache.Store {
	if !cfg.Cache.Enabled {
		return cache.NewMemoryStore()
	}

	redisStore := cache.NewRedisStore(cfg.Cache.Redis)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisStore.Ping(ctx); err != nil {
		log.Warn("redis unavailable, using in-memory progress cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
			"error":   err.Error(),
		})
		redisStore.Close()
		return cache.NewMemoryStore()
	}
	return redisStore
}

// shell is the interactive terminal frontend. All decisions about who
// may see what are delegated to the router and the access gate; the
// shell only renders what it is told to.
type shell struct {
	cfg      *config.Config
	log      logger.Logger
	api      *api.Client
	sessions *session.Store
	router   *nav.Router
	cache    cache.Store
	in       *bufio.Reader
}

func (s *shell) run(ctx context.Context) error {
	path := access.LoginPath

	for {
		state, identity := s.sessions.Snapshot()
		res := s.router.Resolve(path, state, identity)

		switch res.Decision.Kind {
		case access.Pending:
			// Identity resolution in flight; render a neutral waiting
			// state and re-resolve.
			fmt.Println("Loading...")
			continue
		case access.Redirect:
			path = res.Decision.Target
			continue
		}

		next, quit := s.render(ctx, res)
		if quit {
			return nil
		}
		path = next
	}
}

// render draws one view and returns the next path to navigate to.
func (s *shell) render(ctx context.Context, res nav.Resolution) (next string, quit bool) {
	switch res.View {
	case nav.ViewLogin:
		return s.renderLogin(ctx)
	case nav.ViewCandidateDashboard:
		return s.renderCandidateDashboard(ctx)
	case nav.ViewBrowseJobs:
		return s.renderBrowseJobs(ctx)
	case nav.ViewMyApplications:
		return s.renderMyApplications(ctx)
	case nav.ViewInterview:
		return s.renderInterview(ctx, res.Param)
	case nav.ViewAdminDashboard, nav.ViewRecruiterDashboard,
		nav.ViewCandidates, nav.ViewRecruiters, nav.ViewInterviews,
		nav.ViewApplications, nav.ViewMyJobs, nav.ViewPostJob:
		// Admin and recruiter screens are plain fetch-and-render lists
		// served elsewhere; the shell only proves they are gated.
		fmt.Printf("\n[%s] view not available in the terminal client\n", res.View)
		return s.promptMenu()
	default:
		return access.DashboardPath, false
	}
}

// promptMenu shows the role menu and reads a selection.
func (s *shell) promptMenu() (next string, quit bool) {
	_, identity := s.sessions.Snapshot()
	if identity == nil {
		return access.LoginPath, false
	}

	items := nav.MenuFor(identity.Role)
	fmt.Println()
	for i, item := range items {
		fmt.Printf("  %d) %s\n", i+1, item.Label)
	}
	fmt.Println("  q) Log out and quit")
	fmt.Print("> ")

	line, err := s.in.ReadString('\n')
	if err != nil {
		return "", true
	}
	choice := strings.TrimSpace(line)
	if choice == "q" {
		s.sessions.Logout()
		return "", true
	}

	for i, item := range items {
		if choice == fmt.Sprintf("%d", i+1) {
			return item.Path, false
		}
	}
	// Anything unrecognized is a soft reset to the dashboard.
	return access.DashboardPath, false
}
