package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/httpjson"
	ordercontroller "storefront/internal/order/controller"
	"storefront/internal/product"
)

const serviceName = "storefront"

type Handlers struct {
	Auth     *auth.Module
	Products *product.Controller
	Orders   *ordercontroller.OrderController
}

func NewRouter(h Handlers, corsOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestSize(httpjson.MaxBodyBytes))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteMessage(w, http.StatusNotFound, "Not found", logger)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteMessage(w, http.StatusMethodNotAllowed, "Method not allowed", logger)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	health := healthHandler(logger)
	r.Get("/health", health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		r.Post("/auth/login", h.Auth.Controller.HandleLogin)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.HandleList)
			r.Get("/{id}", h.Products.HandleGet)

			r.Group(func(r chi.Router) {
				r.Use(h.Auth.Middleware.RequireAuth, h.Auth.Middleware.RequireAdmin)
				r.Post("/", h.Products.HandleCreate)
				r.Put("/{id}", h.Products.HandleUpdate)
				r.Delete("/{id}", h.Products.HandleDelete)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.Orders.Create)

			r.Group(func(r chi.Router) {
				r.Use(h.Auth.Middleware.RequireAuth)
				r.Get("/", h.Orders.List)
				r.Get("/{id}", h.Orders.Get)
			})
		})
	})

	return r
}

type healthResponse struct {
	OK      bool      `json:"ok"`
	Time    time.Time `json:"time"`
	Service string    `json:"service"`
}

func healthHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpjson.Write(w, http.StatusOK, healthResponse{
			OK:      true,
			Time:    time.Now().UTC(),
			Service: serviceName,
		}, logger)
	}
}

// requestLogger logs one line per request tagged with the chi request id.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					zap.String("requestId", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
