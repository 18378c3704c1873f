package main

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	"github.com/BruksfildServices01/garage-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/garage-scheduler/internal/db"
	"github.com/BruksfildServices01/garage-scheduler/internal/domain/ident"
	infraRepo "github.com/BruksfildServices01/garage-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/garage-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/notify"
	"github.com/BruksfildServices01/garage-scheduler/internal/routes"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
	"github.com/BruksfildServices01/garage-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/garage-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/garage-scheduler/internal/usecase/catalog"
	"github.com/BruksfildServices01/garage-scheduler/internal/usecase/report"
)

// app holds the process-wide singletons.
type app struct {
	cfg      *config.Config
	db       *gorm.DB
	location *time.Location

	toast     *notify.Toast
	audit     *audit.Dispatcher
	catalog   *ucCatalog.Store
	scheduler *ucAppointment.Scheduler
	reporter  *report.Reporter

	// loadErr is set when stored data could not be read and defaults
	// are in use.
	loadErr error
}

func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return nil, err
	}

	slot, err := storage.Open(ctx, cfg, db)
	if err != nil {
		dbpkg.Close(db)
		return nil, err
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	toast := notify.NewToast(notify.DefaultTTL)
	sink := notify.Fanout{toast, notify.Log{}}
	dispatcher := audit.NewDispatcher(audit.New(db))
	ids := ident.NewGenerator(nil)

	// ======================================================
	// USE CASES
	// ======================================================
	var loadErr error

	catalogStore := ucCatalog.NewStore(infraRepo.NewServiceStore(slot), sink, ids, ucCatalog.DefaultSeed())
	if err := catalogStore.Load(ctx); err != nil {
		log.Printf("using default services: %v", err)
		loadErr = err
	}

	scheduler := ucAppointment.NewScheduler(
		infraRepo.NewAppointmentStore(slot),
		catalogStore,
		sink,
		dispatcher,
		ids,
	)
	if err := scheduler.Load(ctx); err != nil {
		log.Printf("starting with no appointments: %v", err)
		loadErr = errors.Join(loadErr, err)
	}

	return &app{
		cfg:       cfg,
		db:        db,
		location:  timezone.Location(cfg.Timezone),
		toast:     toast,
		audit:     dispatcher,
		catalog:   catalogStore,
		scheduler: scheduler,
		reporter:  report.NewReporter(scheduler),
		loadErr:   loadErr,
	}, nil
}

// session is the operator context for work not tied to a request.
func (a *app) session() session.Session {
	return session.New(models.Staff{ID: a.cfg.StaffID, Name: a.cfg.StaffName}, a.location)
}

func (a *app) deps() routes.Deps {
	return routes.Deps{
		DB:        a.db,
		Catalog:   a.catalog,
		Scheduler: a.scheduler,
		Reporter:  a.reporter,
		Toast:     a.toast,
		Location:  a.location,
	}
}

func (a *app) Close() {
	a.audit.Close()
	if err := dbpkg.Close(a.db); err != nil {
		log.Printf("close database: %v", err)
	}
}
