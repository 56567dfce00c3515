// Package catalog wires the global dependencies shared by all Contexts of the catalog service.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	prometheusSDK "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/go-arrower/catalog/alog"
	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/repository"
)

var ErrMissingDependency = errors.New("missing dependency")

// Container holds global dependencies that can be used within each Context, to make initialisation easier.
// If the Context can operate with the shared resources.
// Otherwise, the Context is advised to initialise its own dependencies from its own configuration.
type Container struct {
	Logger        alog.Logger
	MeterProvider *metric.MeterProvider
	TraceProvider *trace.TracerProvider
	Registry      *prometheusSDK.Registry

	Config   *Config
	Validate *validator.Validate

	// Store snapshots the in memory repositories. It is repository.NoopStore,
	// unless a data directory is configured.
	Store repository.Store

	HTTPClient *http.Client
	WebRouter  *echo.Echo
	APIRouter  *echo.Group

	metricsEndpoint *http.Server
	startedAt       time.Time
}

// Instrumentation returns the dependencies for instrumenting use cases with the app package.
func (c *Container) Instrumentation() app.Instrumentation {
	return app.Instrumentation{
		TraceProvider: c.TraceProvider,
		MeterProvider: c.MeterProvider,
		Logger:        c.Logger,
		Validate:      c.Validate,
	}
}

// RepositoryOptions returns the options every in memory repository should be created with.
func (c *Container) RepositoryOptions() []repository.Option {
	return []repository.Option{repository.WithStore(c.Store)}
}

func InitialiseDefaultDependencies(ctx context.Context, conf *Config) (*Container, error) {
	if conf == nil {
		return nil, fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	dc := &Container{
		Config:     conf,
		Validate:   validator.New(validator.WithRequiredStructEnabled()),
		Store:      repository.NoopStore,
		HTTPClient: &http.Client{},
		startedAt:  time.Now(),
	}

	{ // observability
		resource := resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(conf.ApplicationName),
			semconv.ServiceInstanceIDKey.String(conf.InstanceName),
		)

		{ // traces
			opts := []otlptracegrpc.Option{
				otlptracegrpc.WithEndpoint(fmt.Sprintf("%s:%d", conf.OTEL.Host, conf.OTEL.Port)),
				otlptracegrpc.WithInsecure(),
			}

			if conf.Environment == TestEnv {
				// while unit testing no otel endpoint is running and
				// a traceprovider shutdown would block until the ctx expires.
				opts = append(opts, otlptracegrpc.WithTimeout(10*time.Millisecond))
			}

			traceExporter, err := otlptracegrpc.New(ctx, opts...)
			if err != nil {
				return nil, fmt.Errorf("could not connect to trace exporter: %w", err)
			}

			sampler := trace.ParentBased(trace.TraceIDRatioBased(0.6)) //nolint:mnd // sample 60% in production
			if conf.Environment == LocalEnv {
				sampler = trace.AlwaysSample()
			}

			dc.TraceProvider = trace.NewTracerProvider(
				trace.WithBatcher(traceExporter),
				trace.WithResource(resource),
				trace.WithSampler(sampler),
			)
			otel.SetTracerProvider(dc.TraceProvider)
		}

		{ // metrics
			dc.Registry = prometheusSDK.NewRegistry()
			dc.Registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			exporter, err := prometheus.New(prometheus.WithRegisterer(dc.Registry))
			if err != nil {
				return nil, fmt.Errorf("could not create prometheus exporter: %w", err)
			}

			dc.MeterProvider = metric.NewMeterProvider(
				metric.WithResource(resource),
				metric.WithReader(exporter),
			)
			otel.SetMeterProvider(dc.MeterProvider)
		}
	}

	{ // logger
		logger := alog.New()
		if conf.Environment == LocalEnv {
			logger = alog.NewDevelopment()
		}

		if conf.Environment == TestEnv {
			logger = alog.NewNoop()
		}

		dc.Logger = logger.With(
			slog.String("application_name", conf.ApplicationName),
			slog.String("instance_name", conf.InstanceName),
			slog.String("git_hash", gitHash()),
			slog.String("environment", string(conf.Environment)),
		)
	}

	if conf.Repository.DataDir != "" {
		dc.Store = repository.NewJSONStore(conf.Repository.DataDir)
	}

	{ // web routers
		router := echo.New()
		router.HideBanner = true
		router.HidePort = true
		router.Logger.SetOutput(io.Discard)
		router.HTTPErrorHandler = HTTPErrorHandler(dc.Logger)

		router.Use(otelecho.Middleware(conf.OTEL.Hostname, otelecho.WithTracerProvider(dc.TraceProvider)))
		router.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "http",
			Registerer: dc.Registry,
		}))
		router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TargetHeader: echo.HeaderXRequestID,
			RequestIDHandler: func(c echo.Context, rid string) {
				c.SetRequest(c.Request().WithContext(alog.AddAttr(
					c.Request().Context(),
					slog.String("request_id", rid)),
				))
			},
		}))

		if conf.Environment == LocalEnv {
			router.Debug = true
		}

		dc.WebRouter = router
		dc.APIRouter = router.Group("/api")
	}

	return dc, nil
}

func (c *Container) Start(ctx context.Context) error {
	c.Logger.LogAttrs(ctx, alog.LevelInfo, "starting all servers",
		slog.Int("port", c.Config.HTTP.Port),
	)

	if c.Config.HTTP.StatusEndpointEnabled {
		c.metricsEndpoint = serveMetrics(ctx, c)
	}

	go func() {
		err := c.WebRouter.Start(fmt.Sprintf(":%d", c.Config.HTTP.Port))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.Logger.InfoContext(ctx, "web server stopped", slog.String("err", err.Error()))
		}
	}()

	return nil
}

func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.LogAttrs(ctx, alog.LevelInfo, "shutting down all servers")

	var errs []error

	errs = append(errs, c.WebRouter.Shutdown(ctx))

	if c.metricsEndpoint != nil {
		errs = append(errs, c.metricsEndpoint.Shutdown(ctx))
	}

	errs = append(errs,
		c.TraceProvider.Shutdown(ctx),
		c.MeterProvider.Shutdown(ctx),
	)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("could not shut down: %w", err)
	}

	return nil
}

const (
	metricPath = "/metrics"
	statusPath = "/status"
)

// StatusHandler exposes the prometheus metrics and the system status.
func (c *Container) StatusHandler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle(metricPath, promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true, // to enable Examplars in the export format
	}))

	mux.HandleFunc(statusPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)

		_ = json.NewEncoder(w).Encode(c.systemStatus())
	})

	return mux
}

func serveMetrics(ctx context.Context, di *Container) *http.Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", di.Config.HTTP.StatusEndpointPort),
		Handler:           di.StatusHandler(),
		ReadHeaderTimeout: time.Second,
	}

	di.Logger.InfoContext(ctx, "serving status endpoint",
		slog.String("addr", srv.Addr),
		slog.String("metric_path", metricPath),
		slog.String("status_path", statusPath),
	)

	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			di.Logger.DebugContext(ctx, "error serving http", slog.String("err", err.Error()))
		}
	}()

	return srv
}

func gitHash() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}
