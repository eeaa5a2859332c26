package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aegislegal/demogate/internal/gate/service"
	"github.com/aegislegal/demogate/internal/gate/store"
	"github.com/aegislegal/demogate/pkg/httpx"
	"github.com/aegislegal/demogate/pkg/slogx"

	_ "github.com/aegislegal/demogate/api/demogate" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	cookieSecure bool
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	AdminService      *service.AdminService
	InvitationService *service.InvitationService
	ReportService     *service.ReportService
}

func NewRouter(
	buildVersion string,
	cookieSecure bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		cookieSecure: cookieSecure,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAdmin()
	r.registerDemo()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Aegis Demo Gate API
//	@version		0.1.0
//	@description	Invite-code gated access service for the Aegis Legal Intelligence demo. Operators mint single-use
//	@description	invite codes; invitees exchange a code for a 24-hour session carried in the authToken cookie.
//	@description
//	@description				Every authenticated request by an invited user is recorded in an append-only access log,
//	@description				which backs the operator activity report.
//	@description
//	@description				Admin operations use a short-lived signed bearer token obtained from the admin login endpoint.
//	@description
//	@contact.name				Aegis Legal Intelligence
//	@contact.url				https://github.com/aegislegal/demogate
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session or admin token. Format: "Bearer {token}". Browser clients use the authToken cookie instead.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{
		AuthService:  r.AuthService,
		CookieSecure: r.cookieSecure,
	}

	// POST /login - strict rate limit by IP (invite codes must not be guessable online)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /session - guarded, lenient rate limit by user (frontends poll this)
	r.Mux.Handle("GET /api/auth/session",
		httpx.Chain(&SessionHandler{},
			GuardMiddleware(r.AuthService, r.AdminService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /logout - unguarded so a dead session can still be cleared
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(&LogoutHandler{AuthService: r.AuthService},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	// POST /admin/login - strict rate limit by IP (password brute force)
	r.Mux.Handle("POST /api/admin/login",
		httpx.Chain(&AdminLoginHandler{AdminService: r.AdminService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	adminGuard := AdminGuardMiddleware(r.AdminService)

	r.Mux.Handle("POST /api/admin/invite",
		httpx.Chain(&InviteCreateHandler{InvitationService: r.InvitationService},
			adminGuard,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/admin/activity",
		httpx.Chain(&ActivityHandler{ReportService: r.ReportService},
			adminGuard,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /api/admin/users/{id}/deactivate",
		httpx.Chain(&DeactivateHandler{InvitationService: r.InvitationService},
			adminGuard,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerDemo() {
	guard := GuardMiddleware(r.AuthService, r.AdminService)

	demoRoutes := map[string]http.HandlerFunc{
		"GET /api/demo/contradictions": ContradictionsHandler(),
		"GET /api/demo/misconduct":     MisconductHandler(),
		"GET /api/demo/alienation":     AlienationHandler(),
		"GET /api/demo/timeline":       TimelineHandler(),
		"GET /api/demo/report":         ReportHandler(),
	}
	for pattern, handler := range demoRoutes {
		r.Mux.Handle(pattern,
			httpx.Chain(handler,
				guard,
				httpx.RateLimitByUser(httpx.LenientLimit),
			),
		)
	}
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
