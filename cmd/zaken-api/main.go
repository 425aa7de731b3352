package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/zaken-api/internal/pkg/application"
	"github.com/diwise/zaken-api/internal/pkg/presentation/api"
	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
	"github.com/diwise/zaken-api/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

const serviceName string = "zaken-api"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx, log, cleanup := o11y.Init(ctx, serviceName, serviceVersion)
	defer cleanup()

	var opa, fp string

	flag.StringVar(&opa, "policies", "/opt/diwise/config/authz.rego", "An authorization policy file")
	flag.StringVar(&fp, "labels", "/opt/diwise/config/labels.yaml", "A file with display labels for coded values")
	flag.Parse()

	labels, err := loadLabels(ctx, fp)
	if err != nil {
		log.Error("file with labels found but could not be loaded", "err", err.Error())
		os.Exit(1)
	}

	s, err := storage.New(ctx, storage.LoadConfiguration(ctx))
	if err != nil {
		log.Error("could not configure storage", "err", err.Error())
		os.Exit(1)
	}

	routes, err := api.NewRoutes()
	if err != nil {
		log.Error("could not register routes", "err", err.Error())
		os.Exit(1)
	}

	a, err := application.New(s, routes, labels)
	if err != nil {
		log.Error("could not create application", "err", err.Error())
		os.Exit(1)
	}

	r, err := newRouter(ctx, opa, a, routes)
	if err != nil {
		log.Error("could not setup router", "err", err.Error())
		os.Exit(1)
	}

	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	webServer := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		if err := webServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("could not listen and serve", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	webServer.Shutdown(ctx)
	s.Close()
}

func newRouter(ctx context.Context, opa string, a application.App, routes *hyperlink.Routes) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	trustForwarded := env.GetVariableOrDefault(ctx, "TRUST_FORWARDED_HEADERS", "false") == "true"
	forwarded := api.WithForwardedHeaders(trustForwarded)

	policies, err := os.Open(opa)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to open opa policy file: %s", err.Error())
		}
		log.Warn("no opa policy file found", "path", opa)
		return api.Register(ctx, a, routes, nil, forwarded)
	}
	defer policies.Close()

	return api.Register(ctx, a, routes, policies, forwarded)
}

func loadLabels(ctx context.Context, fp string) (application.Labels, error) {
	log := logging.GetFromContext(ctx)

	f, err := os.Open(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no file with labels found, using defaults", "path", fp)
			return application.DefaultLabels(), nil
		}
		return nil, err
	}
	defer f.Close()

	labels, err := application.LoadLabels(f)
	if err != nil {
		return nil, err
	}

	return application.DefaultLabels().Merge(labels), nil
}
