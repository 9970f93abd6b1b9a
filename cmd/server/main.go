// Command server wires the contact registry's dependencies and runs the HTTP
// API. Business logic lives in the internal service packages.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	contacthandler "contactregistry/internal/contact/handler"
	contactservice "contactregistry/internal/contact/service"
	"contactregistry/internal/contact/store/memory"
	"contactregistry/internal/contact/store/postgres"
	httpapi "contactregistry/internal/http"
	jwttoken "contactregistry/internal/jwt_token"
	"contactregistry/internal/organisation"
	"contactregistry/internal/platform/config"
	"contactregistry/internal/platform/events"
	"contactregistry/internal/platform/httpserver"
	"contactregistry/internal/platform/logger"
	"contactregistry/internal/platform/metrics"
	platformpostgres "contactregistry/internal/platform/postgres"
	platformredis "contactregistry/internal/platform/redis"
	"contactregistry/internal/prisonercontact"
	prisonerhandler "contactregistry/internal/prisonercontact/handler"
	"contactregistry/internal/referencedata"
	refdatahandler "contactregistry/internal/referencedata/handler"
	"contactregistry/pkg/platform/tx"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	db, err := platformpostgres.Open(ctx, cfg.PostgresURL)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	} else {
		log.Warn("POSTGRES_URL not set, using in-memory stores")
	}

	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	m := metrics.New()

	// Reference data reads go through redis when it is configured; the
	// cache is never load-bearing.
	var refdataStore referencedata.Store
	if db != nil {
		refdataStore = referencedata.NewPostgres(db)
	} else {
		refdataStore = referencedata.NewInMemory()
	}
	if redisClient != nil {
		refdataStore = referencedata.NewCachedStore(refdataStore, redisClient.Client, cfg.Redis.CacheTTL, log, m)
	}
	validator := referencedata.NewValidator(refdataStore)

	var publisher contactservice.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := events.NewKafkaPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			return err
		}
		defer kafka.Close()
		publisher = kafka
	} else {
		log.Warn("KAFKA_BROKERS not set, domain events are not published")
	}

	var (
		stores        contactservice.Stores
		organisations organisation.SummaryStore
		runner        tx.Runner
		relationships prisonercontact.RelationshipStore
		relRestricts  prisonercontact.RestrictionStore
	)
	if db != nil {
		stores = contactservice.Stores{
			Contacts:      postgres.NewContactStore(db),
			Addresses:     postgres.NewAddressStore(db),
			Phones:        postgres.NewPhoneStore(db),
			AddressPhones: postgres.NewAddressPhoneStore(db),
			Emails:        postgres.NewEmailStore(db),
			Identities:    postgres.NewIdentityStore(db),
			Restrictions:  postgres.NewRestrictionStore(db),
			Employments:   postgres.NewEmploymentStore(db),
		}
		organisations = organisation.NewPostgres(db)
		runner = tx.NewSQLRunner(db)
		relationships = postgres.NewPrisonerContactStore(db)
		relRestricts = postgres.NewPrisonerContactRestrictionStore(db)
	} else {
		stores = contactservice.Stores{
			Contacts:      memory.NewContactStore(),
			Addresses:     memory.NewAddressStore(),
			Phones:        memory.NewPhoneStore(),
			AddressPhones: memory.NewAddressPhoneStore(),
			Emails:        memory.NewEmailStore(),
			Identities:    memory.NewIdentityStore(),
			Restrictions:  memory.NewRestrictionStore(),
			Employments:   memory.NewEmploymentStore(),
		}
		organisations = organisation.NewInMemory()
		runner = tx.NewPassthroughRunner()
		relationships = memory.NewPrisonerContactStore()
		relRestricts = memory.NewPrisonerContactRestrictionStore()
	}

	contactOpts := []contactservice.Option{
		contactservice.WithLogger(log),
		contactservice.WithMetrics(m),
		contactservice.WithTxRunner(runner),
	}
	if publisher != nil {
		contactOpts = append(contactOpts, contactservice.WithEventPublisher(publisher))
	}
	contacts := contactservice.New(stores, organisations, validator, contactOpts...)
	prisonerContacts := prisonercontact.New(stores.Contacts, relationships, relRestricts, validator, log)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)

	router := httpapi.NewRouter(httpapi.Config{
		Logger:         log,
		Metrics:        m,
		TokenValidator: jwttoken.NewMiddlewareAdapter(jwtService),
		AdminTokenHash: cfg.AdminTokenHash,
		Handlers: []httpapi.Registrar{
			contacthandler.New(contacts, log),
			prisonerhandler.New(prisonerContacts, log),
			refdatahandler.New(refdataStore, log),
		},
		Health: func() error {
			if db != nil {
				return db.Ping()
			}
			return nil
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting contact registry", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
