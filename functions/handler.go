// Package functions adapts the shared router to per-invocation
// serverless runtimes. The platform invokes Handler once per request;
// the router, service and storage connection are built once per
// process and reused when the container survives across invocations.
package functions

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"school-platform/config"
	"school-platform/domain/content"
	"school-platform/pkg/logger"
	"school-platform/routes"
)

var (
	once sync.Once
	app  *echo.Echo
)

func bootstrap() {
	config.InitConfig()
	logger.Init(logger.Config{
		Level:       logger.Level(viper.GetString("LOG_LEVEL")),
		Environment: viper.GetString("ENVIRONMENT"),
	})

	log := logger.Get().WithComponent("functions")
	store := content.NewStore(log)
	app = routes.NewRouter(content.NewService(store))
}

// Handler serves a single invocation. Behavior is identical to the
// long-lived server: the only difference is how the request arrives.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(bootstrap)
	app.ServeHTTP(w, r)
}
