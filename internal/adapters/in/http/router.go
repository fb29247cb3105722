package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"logistics/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig carries what NewRouter needs besides the server itself.
type RouterConfig struct {
	Resolver     ActorResolver
	Gatherer     prometheus.Gatherer
	Logger       *slog.Logger
	AllowOrigins []string
}

// NewRouter builds the echo instance serving the API, the metrics endpoint
// and the docs UI.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	if server == nil {
		return nil, errors.New("server is required")
	}
	if cfg.Resolver == nil {
		return nil, errors.New("actor resolver is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load api document: %w", err)
	}
	if err = registerDocs(doc); err != nil {
		return nil, err
	}
	validator, err := NewRequestValidator(doc, cfg.Resolver)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Validator = NewBodyValidator()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(validator)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// apiDoc serves the embedded API document to the docs UI.
type apiDoc struct {
	raw string
}

func (d apiDoc) ReadDoc() string {
	return d.raw
}

var docsOnce sync.Once

// registerDocs publishes the API document under the instance name the docs
// UI reads from. swag keeps a process-wide registry, so only the first call
// registers.
func registerDocs(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode api document: %w", err)
	}
	docsOnce.Do(func() {
		if swag.GetSwagger(swag.Name) == nil {
			swag.Register(swag.Name, apiDoc{raw: string(raw)})
		}
	})
	return nil
}
