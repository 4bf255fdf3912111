package cors

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

var developmentOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

var (
	defaultMethods        = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultHeaders        = []string{"Content-Type", "Authorization", "X-Request-ID"}
	defaultExposedHeaders = []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After", "X-Request-ID"}
)

type Config struct {
	AllowedOrigins   []string      `yaml:"allowed_origins" json:"allowed_origins,omitempty"`
	AllowedMethods   []string      `yaml:"allowed_methods" json:"allowed_methods,omitempty"`
	AllowedHeaders   []string      `yaml:"allowed_headers" json:"allowed_headers,omitempty"`
	AllowCredentials bool          `yaml:"allow_credentials" json:"allow_credentials"`
	MaxAge           time.Duration `yaml:"max_age" json:"max_age,omitempty"`
}

// Gate applies an origin allow-list and answers preflight requests itself.
type Gate struct {
	origins        map[string]struct{}
	methods        string
	headers        string
	exposedHeaders string
	credentials    bool
	maxAge         string
	logger         lager.Logger
}

// NewGate builds the allow-list for env. Production only trusts the
// configured origins; any other environment also trusts local dev servers.
func NewGate(env string, conf Config, logger lager.Logger) *Gate {
	origins := map[string]struct{}{}
	for _, o := range conf.AllowedOrigins {
		origins[strings.TrimSuffix(o, "/")] = struct{}{}
	}
	if env != EnvProduction {
		for _, o := range developmentOrigins {
			origins[o] = struct{}{}
		}
	}

	methods := conf.AllowedMethods
	if len(methods) == 0 {
		methods = defaultMethods
	}
	headers := conf.AllowedHeaders
	if len(headers) == 0 {
		headers = defaultHeaders
	}

	g := &Gate{
		origins:        origins,
		methods:        strings.Join(methods, ", "),
		headers:        strings.Join(headers, ", "),
		exposedHeaders: strings.Join(defaultExposedHeaders, ", "),
		credentials:    conf.AllowCredentials,
		logger:         logger.Session("cors", lager.Data{"environment": env}),
	}
	if conf.MaxAge > 0 {
		g.maxAge = strconv.Itoa(int(conf.MaxAge.Seconds()))
	}
	return g
}

func (g *Gate) AllowsOrigin(origin string) bool {
	_, ok := g.origins[origin]
	return ok
}

func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Add("Vary", "Origin")

		origin := r.Header.Get("Origin")
		if origin != "" {
			if g.AllowsOrigin(origin) {
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Expose-Headers", g.exposedHeaders)
				if g.credentials {
					header.Set("Access-Control-Allow-Credentials", "true")
				}
			} else {
				g.logger.Debug("origin-not-allowed", lager.Data{"origin": origin, "path": r.URL.Path})
			}
		}

		if r.Method == http.MethodOptions {
			header.Set("Access-Control-Allow-Methods", g.methods)
			header.Set("Access-Control-Allow-Headers", g.headers)
			if g.maxAge != "" {
				header.Set("Access-Control-Max-Age", g.maxAge)
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
