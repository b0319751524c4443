package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
	"github.com/opencampus/edutrack/internal/edutrack/service"
	"github.com/opencampus/edutrack/internal/edutrack/store"
	"github.com/opencampus/edutrack/pkg/httpx"
	"github.com/opencampus/edutrack/pkg/jwtx"
	"github.com/opencampus/edutrack/pkg/slogx"

	_ "github.com/opencampus/edutrack/api/edutrack" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	UserService       *service.UserService
	TokenService      *service.TokenService
	EnrollmentService *service.EnrollmentService
	GradeService      *service.GradeService
	CourseService     *service.CourseService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
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
	r.registerStudents()
	r.registerGrades()
	r.registerCourses()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			EduTrack Academic Records API
//	@version		0.1.0
//	@description	Academic records service providing account registration, login with JWT-based
//	@description	bearer tokens, role-gated course enrolment, and grade recording.
//	@description
//	@description				Tokens are signed with HS256 and carry the account role used for endpoint authorization.
//
//	@contact.name				OpenCampus Team
//	@contact.url				https://github.com/opencampus/edutrack
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerStudents() {
	h := &EnrollHandler{EnrollmentService: r.EnrollmentService}

	// POST /enroll - student-only write, moderate rate limit by user
	securedEnroll := httpx.Chain(http.HandlerFunc(h.HandleEnroll),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole(string(domain.RoleStudent)),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// GET /enrollments - student-only read, lenient rate limit by user
	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole(string(domain.RoleStudent)),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("POST /api/students/enroll", securedEnroll)
	r.Mux.Handle("GET /api/students/enrollments", securedList)
}

func (r *Router) registerGrades() {
	gradeHandler := &GradeHandler{GradeService: r.GradeService}

	// POST /grades - faculty-only write, moderate rate limit by user
	secured := httpx.Chain(gradeHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole(string(domain.RoleFaculty)),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /api/students/grade", secured)
}

func (r *Router) registerCourses() {
	h := &CoursesHandler{CourseService: r.CourseService}

	// POST /courses - faculty-only write, moderate rate limit by user
	securedCreate := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole(string(domain.RoleFaculty)),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// GET /courses - public catalog read, lenient rate limit by IP
	r.Mux.Handle("POST /api/courses", securedCreate)
	r.Mux.Handle("GET /api/courses",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
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
