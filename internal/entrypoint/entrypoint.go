package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/readingclub/internal/config"
	"github.com/mrlokans/readingclub/internal/database"
	"github.com/mrlokans/readingclub/internal/database/registry"
	http_controllers "github.com/mrlokans/readingclub/internal/http"
	"github.com/mrlokans/readingclub/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	// Close the pool only after in-flight requests are done with it.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// Services bundles the aggregate services built on one gateway.
type Services struct {
	Readers *services.ReaderService
	Books   *services.BookService
	Authors *services.AuthorService
}

// NewServices wires repositories and services over an initialized gateway.
func NewServices(gw *database.Gateway) *Services {
	repos := registry.New(gw)
	readers := services.NewReaderService(repos.Readers)
	authors := services.NewAuthorService(repos.Authors)
	return &Services{
		Readers: readers,
		Books:   services.NewBookService(repos.Books, readers, authors),
		Authors: authors,
	}
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Reading Club v%s", version)

	gw := database.NewGateway()
	if err := gw.Initialize(cfg.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	svc := NewServices(gw)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Readers:  svc.Readers,
		Books:    svc.Books,
		Authors:  svc.Authors,
		Database: gw,
		Version:  version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if err := gw.Close(); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	})
}
