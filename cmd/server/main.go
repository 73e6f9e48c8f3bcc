package main

import (
	"blackjack-server/internal/config"
	"blackjack-server/internal/mux"
	"blackjack-server/pkg/history"
	"blackjack-server/pkg/protocol"
	"blackjack-server/pkg/room"
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const shutdownTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the player listen address (overrides config)")
var httpAddr = flag.String("http-addr", "", "the HTTP listen address (overrides config)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	if *addr != "" {
		cfg.Addr = *addr
	}

	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}

	recorder, err := history.New(history.Options{
		Driver:         cfg.History.Driver,
		DSN:            cfg.History.DSN,
		MigrationsPath: cfg.History.MigrationsPath,
		RecentLimit:    cfg.History.RecentLimit,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not open hand history")
	}
	defer recorder.Close()

	pitBoss := room.NewPitBoss(room.Options{
		MaxSessions: cfg.MaxSessions,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Second,
		Session: protocol.Options{
			Handshake:               cfg.Handshake,
			Recorder:                recorder,
			TerminateOnWriteFailure: cfg.TerminateOnWriteFailure,
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HTTPAddr != "" {
		srv := newHTTPServer(ctx, cfg, pitBoss, recorder)
		go func() {
			logrus.WithField("addr", srv.Addr).Info("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.WithError(err).Fatal("could not serve HTTP")
			}
		}()

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logrus.WithError(err).WithField("addr", cfg.Addr).Fatal("could not listen")
	}

	if err := pitBoss.Serve(ctx, ln); err != nil {
		logrus.WithError(err).Error("could not accept connections")
	}

	logrus.Info("shutting down")
}

func newHTTPServer(ctx context.Context, cfg config.Config, pitBoss *room.PitBoss, recorder history.Recorder) *http.Server {
	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet},
	})

	return &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     loggingHandler(c.Handler(mux.NewMux(Version, pitBoss, recorder, cfg.History.RecentLimit))),
		ReadTimeout: readTimeout,
		// websocket sessions end when the server shuts down
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
