package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/cloud"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/config"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/database"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/fixtures"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/repository"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/screens"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/store"
)

type Services struct {
	Snapshot    *store.Snapshot
	Screens     *screens.Builder
	Maintenance *MaintenanceService

	db *sqlx.DB
}

// New wires the screen builder over snap using the configured delays,
// profile user and failure rate. Extra options are applied last.
func New(snap *store.Snapshot, opts ...screens.Option) *Services {
	m := NewMaintenanceService(config.FailureRate())
	base := []screens.Option{
		screens.WithForecaster(m),
		screens.WithLoginDelay(config.LoginDelay()),
		screens.WithProfileUser(config.ProfileUserID()),
	}
	return &Services{
		Snapshot:    snap,
		Screens:     screens.New(snap, append(base, opts...)...),
		Maintenance: m,
	}
}

// NewLoader returns the loader for the configured DATA_SOURCE. The returned
// db is non-nil only for the postgres source and must be closed by the caller.
func NewLoader(ctx context.Context) (store.Loader, *sqlx.DB, error) {
	source, ok := config.DataSource()
	if !ok {
		log.Warn().Str("source", config.RawDataSource()).Msg("unknown DATA_SOURCE, using mock fixtures")
	}

	switch source {
	case config.SourcePostgres:
		db, err := database.Connect()
		if err != nil {
			return nil, nil, fmt.Errorf("db connect failed: %w", err)
		}
		return repository.New(db), db, nil
	case config.SourceDynamoDB:
		l, err := cloud.NewDynamoDBClient(ctx, config.AWSRegion(), config.DynamoTablePrefix())
		if err != nil {
			return nil, nil, err
		}
		return l, nil, nil
	case config.SourceS3:
		l, err := cloud.NewS3Client(ctx, config.AWSRegion(), config.S3Bucket(), config.SnapshotKey())
		if err != nil {
			return nil, nil, err
		}
		return l, nil, nil
	}
	return fixtures.NewStatic(), nil, nil
}

// Open loads the snapshot from the configured source and wires the services.
func Open(ctx context.Context, opts ...screens.Option) (*Services, error) {
	loader, db, err := NewLoader(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := store.Build(ctx, loader)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}

	s := New(snap, opts...)
	s.db = db
	log.Info().
		Int("sites", len(snap.Sites())).
		Int("tickets", len(snap.Tickets())).
		Msg("snapshot loaded")
	return s, nil
}

func (s *Services) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
