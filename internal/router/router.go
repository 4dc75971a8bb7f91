package router

import (
	"encoding/json"
	"net/http"

	_ "dogs-api/docs"
	mem "dogs-api/internal/adapters/storage/memory"
	"dogs-api/internal/domain/dogs"
	"dogs-api/internal/middleware"
	"dogs-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, in-memory. El caller es dueño del ciclo de vida
	// (Close al apagar).
	DogRepo dogs.Repository

	Log logger.Logger

	// StrictHTTP: 404 en not found y 200 en PATCH.
	StrictHTTP bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	repo := opts.DogRepo
	if repo == nil {
		repo = mem.NewDogRepo()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Hello World!"})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	dogsSvc := dogs.NewService(repo)
	dogs.RegisterRoutes(r, dogsSvc, dogs.HandlerOptions{
		StrictHTTP: opts.StrictHTTP,
		Log:        log,
	})

	return r
}
