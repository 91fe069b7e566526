package main

import (
	"context"
	"flag"
	"os"

	"go-shortlink/internal/biz"
	"go-shortlink/internal/conf"
	"go-shortlink/internal/domain"
	"go-shortlink/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name = "shortlink"
	// Version is the version of the compiled software.
	Version string
	// flagconf is the config flag.
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, eg: -conf config.yaml")
}

func newApp(
	logger log.Logger,
	hs *http.Server,
	eventBus *eventbus.EventBus,
	router *eventbus.Router,
	visits domain.VisitRepository,
) *kratos.App {
	// Register event handlers
	biz.RegisterEventHandlers(router, visits, logger)

	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(
			hs,
		),
		kratos.BeforeStart(func(ctx context.Context) error {
			// Start the event router in a goroutine
			go func() {
				if err := router.Run(ctx); err != nil {
					log.NewHelper(logger).Errorf("event router error: %v", err)
				}
			}()
			return nil
		}),
		kratos.BeforeStop(func(ctx context.Context) error {
			if err := router.Close(); err != nil {
				log.NewHelper(logger).Errorf("failed to close router: %v", err)
			}
			if err := eventBus.Close(); err != nil {
				log.NewHelper(logger).Errorf("failed to close event bus: %v", err)
			}
			return nil
		}),
	)
}

func main() {
	flag.Parse()
	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)
	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}

	app, cleanup, err := wireApp(bc.Server, bc.Data, bc.Cookie, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	// start and wait for stop signal
	if err := app.Run(); err != nil {
		panic(err)
	}
}
