package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/region-dashboard/app/models"
	"github.com/region-dashboard/helpers/utils"
	"github.com/region-dashboard/internal/gazetteer"
	"github.com/region-dashboard/internal/normalizer"
	"github.com/xrash/smetrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrReviewNotFound is returned for unknown review ids.
var ErrReviewNotFound = errors.New("region review not found")

const maxSuggestions = 5

// AdminService records unmatched boundary names for operator review and
// turns approved reviews into learned mapping aliases. Suggestions are
// fuzzy-ranked; the fuzzy scores never feed the matching policy itself.
type AdminService struct {
	reviews   *mongo.Collection
	dashboard *DashboardService
	logger    *zap.Logger
}

// SystemStats is the admin dashboard snapshot.
type SystemStats struct {
	TotalRecords     int    `json:"total_records"`
	ProvinceRegions  int    `json:"province_regions"`
	MunicipalRegions int    `json:"municipal_regions"`
	PendingReviews   int64  `json:"pending_reviews"`
	TotalReviews     int64  `json:"total_reviews"`
	DatasetVersion   string `json:"dataset_version"`
	Uptime           string `json:"uptime"`
}

// NewAdminService creates the service and ensures the review indexes.
func NewAdminService(db *mongo.Database, dashboard *DashboardService, logger *zap.Logger) *AdminService {
	reviews := db.Collection("region_reviews")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := reviews.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "feature_name", Value: 1}, {Key: "level", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	})
	if err != nil {
		logger.Warn("create region_reviews indexes failed", zap.Error(err))
	}

	return &AdminService{
		reviews:   reviews,
		dashboard: dashboard,
		logger:    logger,
	}
}

// RecordMiss upserts a pending review for an unmatched feature name. Repeat
// misses only bump the seen counter, so review noise stays proportional to
// distinct names, not request volume.
func (as *AdminService) RecordMiss(ctx context.Context, featureName, levelStr, canonicalName string) {
	level, ok := gazetteer.ParseLevel(levelStr)
	if !ok || featureName == "" {
		return
	}

	filter := bson.M{"feature_name": featureName, "level": levelStr}
	res, err := as.reviews.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"seen_count": 1}})
	if err == nil && res.MatchedCount > 0 {
		return
	}

	review := models.NewRegionReview(
		utils.GenerateUUID(),
		featureName,
		levelStr,
		canonicalName,
		as.suggest(featureName, level),
	)
	if _, err := as.reviews.InsertOne(ctx, review); err != nil {
		// A concurrent insert losing the race is fine; anything else is worth a log line.
		if !mongo.IsDuplicateKeyError(err) {
			as.logger.Warn("record region miss failed", zap.Error(err), zap.String("feature", featureName))
		}
	}
}

// suggest ranks the mapping entries of a level against the unmatched name
// using Jaro-Winkler and Levenshtein over folded romanized forms. Short
// names need a higher score before they qualify, long names are more
// tolerant.
func (as *AdminService) suggest(featureName string, level gazetteer.Level) []models.RegionSuggestion {
	target := normalizer.FoldExternal(featureName)
	if target == "" {
		return nil
	}

	var suggestions []models.RegionSuggestion
	for _, entry := range as.dashboard.Mapping().Entries(level) {
		candidate := normalizer.FoldExternal(entry.External)
		if candidate == "" {
			continue
		}

		score := smetrics.JaroWinkler(target, candidate, 0.7, 4)

		dist := levenshtein.ComputeDistance(target, candidate)
		maxLen := math.Max(float64(len(target)), float64(len(candidate)))
		if levScore := 1.0 - float64(dist)/maxLen; levScore > score {
			score = levScore
		}

		if len(target) <= 10 && score <= 0.8 {
			continue
		}
		if len(target) > 10 && score <= 0.6 {
			continue
		}
		suggestions = append(suggestions, models.RegionSuggestion{Key: entry.Internal, Score: score})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// ListReviews returns reviews filtered by status, newest first.
func (as *AdminService) ListReviews(ctx context.Context, status string, limit, offset int64) ([]models.RegionReview, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := as.reviews.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)
	cursor, err := as.reviews.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var reviews []models.RegionReview
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// ApproveReview resolves a review against the chosen aggregate key and
// teaches the dashboard mapping the alias.
func (as *AdminService) ApproveReview(ctx context.Context, reviewID, key, reviewerID string) (*models.RegionReview, error) {
	var review models.RegionReview
	err := as.reviews.FindOne(ctx, bson.M{"review_id": reviewID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := as.dashboard.LearnAlias(review.Level, review.FeatureName, key); err != nil {
		return nil, err
	}

	review.Approve(key, reviewerID)
	_, err = as.reviews.ReplaceOne(ctx, bson.M{"review_id": reviewID}, review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// RejectReview marks a review as not mappable.
func (as *AdminService) RejectReview(ctx context.Context, reviewID, reviewerID string) (*models.RegionReview, error) {
	var review models.RegionReview
	err := as.reviews.FindOne(ctx, bson.M{"review_id": reviewID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}

	review.Reject(reviewerID)
	_, err = as.reviews.ReplaceOne(ctx, bson.M{"review_id": reviewID}, review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Stats builds the admin snapshot.
func (as *AdminService) Stats(ctx context.Context) (*SystemStats, error) {
	pending, err := as.reviews.CountDocuments(ctx, bson.M{"status": models.ReviewStatusPending})
	if err != nil {
		return nil, err
	}
	total, err := as.reviews.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	return &SystemStats{
		TotalRecords:     len(as.dashboard.Records()),
		ProvinceRegions:  len(as.dashboard.AggregateKeys(gazetteer.LevelProvince)),
		MunicipalRegions: len(as.dashboard.AggregateKeys(gazetteer.LevelMunicipality)),
		PendingReviews:   pending,
		TotalReviews:     total,
		DatasetVersion:   as.dashboard.DatasetVersion(),
		Uptime:           time.Since(as.dashboard.GetStartTime()).String(),
	}, nil
}
