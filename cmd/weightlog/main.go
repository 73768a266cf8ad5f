package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	adapthttp "weightlog/internal/adapter/http"
	"weightlog/internal/adapter/postgres"
	"weightlog/internal/adapter/sqlite"
	"weightlog/internal/app"
	"weightlog/internal/config"
	"weightlog/internal/domain"
	"weightlog/internal/notify"
)

func main() {
	cfg := config.Load()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var (
		accounts domain.AccountRepository
		entries  domain.EntryRepository
		sessions domain.SessionRepository
	)

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			logrus.Fatalf("postgres open: %v", err)
		}
		defer func() { _ = db.Close() }()
		accounts, entries, sessions = db, db, postgres.NewSessionRepo(db)
	} else {
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			logrus.Fatalf("sqlite open: %v", err)
		}
		defer func() { _ = db.Close() }()
		accounts, entries, sessions = db, db, sqlite.NewSessionRepo(db)
	}

	credentialSvc := app.NewCredentialService(accounts)
	ledgerSvc := app.NewLedgerService(entries)
	sessionSvc := app.NewSessionService(credentialSvc, accounts, sessions)
	progressSvc := app.NewProgressService(entries, accounts)

	var notifier domain.Notifier = notify.LogOnly{}
	if cfg.SMSAccountSID != "" {
		notifier = notify.NewSMSGateway(cfg.SMSAccountSID, cfg.SMSAuthToken, cfg.SMSFrom)
	}

	var oidcCfg adapthttp.OIDCConfig
	if cfg.OIDCIssuer != "" {
		var err error
		oidcCfg, err = adapthttp.LoadOIDC(context.Background(), cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
		if err != nil {
			logrus.Fatalf("oidc setup: %v", err)
		}
	}

	h := adapthttp.New(credentialSvc, ledgerSvc, sessionSvc, progressSvc, notifier, cfg.SMSTo, oidcCfg).Handler()
	logrus.Infof("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}
