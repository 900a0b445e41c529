package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/region-dashboard/app/models"
	"github.com/region-dashboard/helpers/utils"
	"github.com/region-dashboard/internal/aggregate"
	"github.com/region-dashboard/internal/gazetteer"
	"github.com/region-dashboard/internal/matcher"
	"github.com/region-dashboard/internal/seed"
	"github.com/region-dashboard/internal/sheets"
	"go.uber.org/zap"
)

// DashboardService owns the in-memory dataset and the derived aggregates for
// both levels. Aggregates are recomputed wholesale whenever the records or
// the mapping change; resolve calls between changes read the same immutable
// snapshot, so no per-call locking beyond the snapshot swap is needed.
type DashboardService struct {
	mu            sync.RWMutex
	records       []models.CustomerRecord
	matcher       *matcher.Matcher
	aggByLevel    map[gazetteer.Level]*aggregate.Result
	datasetVersion string

	store        *sheets.Client // nil when running offline from the seed
	pocThreshold int64
	logger       *zap.Logger
	startTime    time.Time
}

// NewDashboardService creates the service with an empty dataset. Call
// LoadRecords before serving.
func NewDashboardService(store *sheets.Client, mapping *gazetteer.Mapping, pocThreshold int64, logger *zap.Logger) *DashboardService {
	if pocThreshold < 0 {
		pocThreshold = matcher.DefaultPoCThreshold
	}
	return &DashboardService{
		matcher:      matcher.New(mapping, logger),
		aggByLevel:   make(map[gazetteer.Level]*aggregate.Result),
		store:        store,
		pocThreshold: pocThreshold,
		logger:       logger,
		startTime:    time.Now(),
	}
}

// LoadRecords pulls the customer dataset from the remote store, falling back
// to the embedded seed when the store is unreachable or unconfigured.
func (ds *DashboardService) LoadRecords(ctx context.Context) error {
	if ds.store != nil {
		records, err := ds.store.ListCustomers(ctx)
		if err == nil {
			ds.ReplaceRecords(records)
			ds.logger.Info("loaded customer records from sheet store", zap.Int("count", len(records)))
			return nil
		}
		ds.logger.Warn("sheet store unavailable, using embedded seed", zap.Error(err))
	}

	records, err := seed.Records()
	if err != nil {
		return err
	}
	ds.ReplaceRecords(records)
	ds.logger.Info("loaded embedded seed records", zap.Int("count", len(records)))
	return nil
}

// ReplaceRecords swaps in a new dataset and recomputes both aggregate
// snapshots. The dataset version is bumped so cached resolutions go stale.
func (ds *DashboardService) ReplaceRecords(records []models.CustomerRecord) {
	aggs := map[gazetteer.Level]*aggregate.Result{
		gazetteer.LevelProvince:     aggregate.Aggregate(records, gazetteer.LevelProvince),
		gazetteer.LevelMunicipality: aggregate.Aggregate(records, gazetteer.LevelMunicipality),
	}

	ds.mu.Lock()
	ds.records = records
	ds.aggByLevel = aggs
	ds.datasetVersion = utils.NewDatasetVersion()
	ds.mu.Unlock()
}

// Resolve answers one feature-name lookup against the current snapshot.
func (ds *DashboardService) Resolve(featureName string, level gazetteer.Level) matcher.Resolution {
	ds.mu.RLock()
	m := ds.matcher
	aggs := ds.aggByLevel[level]
	threshold := ds.pocThreshold
	ds.mu.RUnlock()

	return m.Resolve(featureName, level, aggs, threshold)
}

// ResolveBatch resolves a list of feature names in order.
func (ds *DashboardService) ResolveBatch(featureNames []string, level gazetteer.Level) []matcher.Resolution {
	out := make([]matcher.Resolution, 0, len(featureNames))
	for _, name := range featureNames {
		out = append(out, ds.Resolve(name, level))
	}
	return out
}

// Aggregates returns the ordered aggregates for a level, for the legend and
// color-scale domain.
func (ds *DashboardService) Aggregates(level gazetteer.Level) []*aggregate.RegionAggregate {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	aggs, ok := ds.aggByLevel[level]
	if !ok {
		return nil
	}
	return aggs.All()
}

// AggregateKeys returns the region keys for a level in insertion order.
func (ds *DashboardService) AggregateKeys(level gazetteer.Level) []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	aggs, ok := ds.aggByLevel[level]
	if !ok {
		return nil
	}
	return aggs.Keys()
}

// Records returns the current dataset.
func (ds *DashboardService) Records() []models.CustomerRecord {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return append([]models.CustomerRecord(nil), ds.records...)
}

// LearnAlias layers a learned external->internal alias over the mapping and
// bumps the dataset version. Returns an error for an unknown level.
func (ds *DashboardService) LearnAlias(levelStr, external, internal string) error {
	level, ok := gazetteer.ParseLevel(levelStr)
	if !ok {
		return errors.New("unknown level: " + levelStr)
	}

	ds.mu.Lock()
	mapping := ds.matcher.Mapping().WithAlias(level, external, internal)
	ds.matcher = matcher.New(mapping, ds.logger)
	ds.datasetVersion = utils.NewDatasetVersion()
	ds.mu.Unlock()

	ds.logger.Info("learned region alias",
		zap.String("level", levelStr),
		zap.String("external", external),
		zap.String("internal", internal))
	return nil
}

// Mapping exposes the current name tables (for the directory search fallback
// and suggestion building).
func (ds *DashboardService) Mapping() *gazetteer.Mapping {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.matcher.Mapping()
}

// DatasetVersion returns the cache-key version of the current snapshot.
func (ds *DashboardService) DatasetVersion() string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.datasetVersion
}

// PoCThreshold returns the classification threshold in use.
func (ds *DashboardService) PoCThreshold() int64 {
	return ds.pocThreshold
}

// GetStartTime returns when the service came up, for health reporting.
func (ds *DashboardService) GetStartTime() time.Time {
	return ds.startTime
}
