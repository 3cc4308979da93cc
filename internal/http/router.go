package http

import (
	"net/http"
	"strings"
	"time"

	"hirepulse/internal/domain/user"
	"hirepulse/internal/http/handlers"
	"hirepulse/internal/http/metrics"
	httpmw "hirepulse/internal/http/middleware"
	"hirepulse/internal/observability"
)

type RouterDependencies struct {
	JobHandler       *handlers.JobHandler
	InterviewHandler *handlers.InterviewHandler
	UserHandler      *handlers.UserHandler
	MetricsHandler   *handlers.MetricsHandler
	AuthMiddleware   *httpmw.AuthMiddleware
	Metrics          *metrics.Collector
	Logger           *observability.Logger
	AIProxy          http.Handler
	CORSOrigin       string
	RequestTimeout   time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// The AI proxy path skips the body limit and the request timeout:
	// uploads can exceed 1 MiB and the upstream has no latency contract.
	if r.deps.AIProxy != nil && strings.HasPrefix(req.URL.Path, "/api/ai/") {
		handler := httpmw.Chain(r.deps.AIProxy,
			httpmw.RequestID,
			httpmw.Logging(r.deps.Logger),
			httpmw.CORS(r.deps.CORSOrigin),
			httpmw.Recover,
			httpmw.Metrics(r.deps.Metrics),
		)
		handler.ServeHTTP(w, req)
		return
	}
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.CORS(r.deps.CORSOrigin),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover,
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && path == "/api/jobs":
			r.deps.JobHandler.List(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/jobs/") && !strings.HasSuffix(path, "/apply"):
			r.deps.JobHandler.Get(w, req)
			return
		}

		if strings.HasPrefix(path, "/api/jobs") || strings.HasPrefix(path, "/api/interviews") || strings.HasPrefix(path, "/api/users") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodPost && path == "/api/jobs":
		httpmw.RequireAnyRole("Only recruiters can post jobs", user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/jobs/") && strings.HasSuffix(path, "/apply"):
		httpmw.RequireAnyRole("Only candidates can apply for jobs", user.RoleCandidate)(http.HandlerFunc(r.deps.JobHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/jobs/"):
		r.deps.JobHandler.Update(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/jobs/"):
		r.deps.JobHandler.Delete(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/interviews/start":
		r.deps.InterviewHandler.Start(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/interviews/user/"):
		r.deps.InterviewHandler.ListByUser(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/interviews/") && strings.HasSuffix(path, "/answer"):
		r.deps.InterviewHandler.SubmitAnswer(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/interviews/") && strings.HasSuffix(path, "/questions"):
		r.deps.InterviewHandler.GenerateQuestions(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/interviews/") && strings.HasSuffix(path, "/feedback"):
		httpmw.RequireAnyRole("Only recruiters can provide feedback", user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.InterviewHandler.SubmitFeedback)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/interviews/"):
		r.deps.InterviewHandler.Get(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/users/profile":
		r.deps.UserHandler.Profile(w, req)
		return
	case req.Method == http.MethodPut && path == "/api/users/profile":
		r.deps.UserHandler.UpdateProfile(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/users":
		httpmw.RequireAnyRole("Admin access required", user.RoleAdmin)(http.HandlerFunc(r.deps.UserHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/users/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireAnyRole("Admin access required", user.RoleAdmin)(http.HandlerFunc(r.deps.UserHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/users/"):
		httpmw.RequireAnyRole("Admin access required", user.RoleAdmin)(http.HandlerFunc(r.deps.UserHandler.Delete)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
