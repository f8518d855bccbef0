/*
Package ranger initializes and manages a web server serving reqarg routes with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type,
constructed with [New].
A [Ranger] embeds a [*router.Router]: register routes on it directly,
or with [WithRoutes].

[*Ranger.Guide] begins the web server.
By default, [*Ranger.Guide] listens on [DefaultHost][DefaultPort] (localhost:3000).
Stop that web server with [*Ranger.Shutdown],
by canceling the context passed in with [WithContext],
or by sending a signal [*Ranger.Guide] listens for.

# Configuration

A Ranger is configured through environment variables and [RangerOption]s.
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - CORS_ORIGINS: comma-separated origins allowed to make cross-origin requests; default: none
  - ENVIRONMENT: the environment the application is running in; cf. [reqarg.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - RATE_LIMIT: requests a second allowed from each IP address; default: 5
  - RATE_BURST: requests allowed in a burst from each IP address; default: 20
  - SENTRY_DSN: the Sentry project errors are reported to; default: none
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package ranger
