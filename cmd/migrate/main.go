package main

import (
	"blackjack-server/internal/config"
	"blackjack-server/pkg/db"
	"database/sql"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
)

var dsn = flag.String("dsn", "", "the PostgreSQL DSN (overrides config)")

func main() {
	flag.Parse()

	cfg := config.Instance()
	if *dsn != "" {
		cfg.History.DSN = *dsn
	}

	dbh := waitForDB(cfg.History.DSN)
	defer dbh.Close()

	if err := db.Migrate(dbh, cfg.History.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	logrus.Info("migrations complete")
}

func waitForDB(dsn string) *sql.DB {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh, err := db.Open(dsn)
			if err == nil {
				return dbh
			}

			logrus.WithError(err).Debug("waiting for database")
			time.Sleep(time.Millisecond * 500)
		}
	}
}
