package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"voyager/internal/catalog"
	"voyager/internal/models/db_models"
	"voyager/internal/models/response_models"
	"voyager/internal/planner"
	"voyager/internal/repositories"
	"voyager/internal/telemetry"
	"voyager/pkg/utils"
)

type CatalogServiceInterface interface {
	Store() *catalog.Store
	Reload(ctx context.Context) error
	RankedPOIs(city string, interests []string) response_models.CityPOIs
	Cities() []string
}

// CatalogService decides where the POI catalog comes from and publishes
// each load as a new snapshot. Sources, in order: CATALOG_FILE, the
// catalog_pois table, the embedded default.
type CatalogService struct {
	store   *catalog.Store
	repo    repositories.POIRepository
	file    string
	log     *zap.Logger
	metrics *telemetry.Metrics
}

// NewCatalogService starts from the embedded catalog; call Reload to pick
// up the configured source. repo may be nil when no database is configured.
func NewCatalogService(repo repositories.POIRepository, file string, log *zap.Logger, metrics *telemetry.Metrics) CatalogServiceInterface {
	s := &CatalogService{
		store:   catalog.NewStore(catalog.Default()),
		repo:    repo,
		file:    file,
		log:     log,
		metrics: metrics,
	}
	s.observe(s.store.Snapshot())
	return s
}

func (s *CatalogService) Store() *catalog.Store {
	return s.store
}

// Reload builds a snapshot from the configured source and swaps it in. On
// failure the current snapshot stays active.
func (s *CatalogService) Reload(ctx context.Context) error {
	snap, source, err := s.load(ctx)
	if err != nil {
		s.log.Warn("Catalog reload failed, keeping current snapshot", zap.Error(err))
		return err
	}
	s.store.Swap(snap)
	s.observe(snap)
	s.log.Info("Catalog loaded",
		zap.String("source", source),
		zap.Int("cities", len(snap.Cities())),
		zap.Int("pois", snap.Size()))
	return nil
}

func (s *CatalogService) load(ctx context.Context) (*catalog.Snapshot, string, error) {
	if s.file != "" {
		snap, err := catalog.LoadFile(s.file)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", utils.ErrCatalogUnavailable, err)
		}
		return snap, s.file, nil
	}
	if s.repo == nil {
		return catalog.Default(), "embedded", nil
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if n > 0 {
		rows, err := s.repo.ListAll(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		return SnapshotFromRows(rows), "postgres", nil
	}

	// empty table: seed it with the embedded catalog
	snap := catalog.Default()
	if err := s.repo.ReplaceAll(ctx, RowsFromSnapshot(snap)); err != nil {
		return nil, "", fmt.Errorf("%w: seed catalog: %v", utils.ErrDatabaseError, err)
	}
	return snap, "postgres (seeded)", nil
}

func (s *CatalogService) observe(snap *catalog.Snapshot) {
	if s.metrics != nil {
		s.metrics.CatalogPOIs.Set(float64(snap.Size()))
	}
}

func (s *CatalogService) RankedPOIs(city string, interests []string) response_models.CityPOIs {
	name := utils.TitleCase(city)
	return response_models.CityPOIs{
		City:      name,
		Interests: interests,
		POIs:      planner.SelectPOIs(s.store, name, interests),
	}
}

func (s *CatalogService) Cities() []string {
	return s.store.Snapshot().Cities()
}

// SnapshotFromRows groups rows by city. Rows must already be in catalog
// order within each city.
func SnapshotFromRows(rows []db_models.CatalogPOI) *catalog.Snapshot {
	data := make(map[string][]catalog.POI)
	for _, r := range rows {
		data[r.City] = append(data[r.City], catalog.POI{
			Name:       r.Name,
			Tags:       []string(r.Tags),
			Popularity: r.Popularity,
			Notes:      r.Notes,
		})
	}
	return catalog.NewSnapshot(data)
}

func RowsFromSnapshot(snap *catalog.Snapshot) []db_models.CatalogPOI {
	var rows []db_models.CatalogPOI
	for _, city := range snap.Cities() {
		for i, p := range snap.Lookup(city) {
			rows = append(rows, db_models.CatalogPOI{
				City:       city,
				Position:   i,
				Name:       p.Name,
				Tags:       p.Tags,
				Popularity: p.Popularity,
				Notes:      p.Notes,
			})
		}
	}
	return rows
}
