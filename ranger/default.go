package ranger

import (
	"context"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/middleware"
	"github.com/xy-planning-network/reqarg/logger"
	"golang.org/x/time/rate"
)

const (
	// CORS defaults
	corsOriginsEnvVar = "CORS_ORIGINS"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"
	defaultLogLvl  = logger.LogLevelInfo

	// Rate limit defaults
	rateLimitEnvVar = "RATE_LIMIT"
	rateBurstEnvVar = "RATE_BURST"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
	shutdownTimeout           = 5 * time.Second
)

// defaultOpts are applied before any RangerOption passed into New.
func defaultOpts() []RangerOption {
	return []RangerOption{
		WithContext(context.Background()),
		WithEnv(""),
		WithLogger(defaultLogger()),
		WithServer(defaultServer()),
		WithMiddlewares(defaultMiddlewares()...),
	}
}

// defaultLogger constructs a logger.Logger at the level LOG_LEVEL sets.
func defaultLogger() logger.Logger {
	return logger.NewLogger(logger.WithLevel(envVarOrLogLevel(logLevelEnvVar, defaultLogLvl)))
}

// defaultMiddlewares constructs the middleware.Adapters every route is served behind.
// The environment-dependent ones are added by New once the environment is known.
func defaultMiddlewares() []middleware.Adapter {
	vs := middleware.NewVisitors(
		rate.Limit(reqarg.EnvVarOrInt64(rateLimitEnvVar, 0)),
		int(reqarg.EnvVarOrInt64(rateBurstEnvVar, 0)),
	)

	return []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.CORS(envVarOrList(corsOriginsEnvVar)...),
	}
}

// defaultServer constructs an *http.Server listening on HOST and PORT.
func defaultServer() *http.Server {
	host := reqarg.EnvVarOrString(hostEnvVar, DefaultHost)
	port := reqarg.EnvVarOrString(portEnvVar, DefaultPort)
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &http.Server{
		Addr:         net.JoinHostPort(host, strings.TrimPrefix(port, ":")),
		ReadTimeout:  reqarg.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		IdleTimeout:  reqarg.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		WriteTimeout: reqarg.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
}

// envVarOrLogLevel gets the environment variable from the provided key,
// creates a logger.LogLevel from the retrieved value,
// or returns the provided default logger.LogLevel
// if the value is an unknown logger.LogLevel.
func envVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	ll := logger.NewLogLevel(strings.ToUpper(os.Getenv(key)))
	if ll == logger.LogLevelUnk {
		return def
	}

	return ll
}

// envVarOrList splits the comma-separated environment variable for key,
// dropping empty items.
func envVarOrList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
