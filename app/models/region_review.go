package models

import "time"

// RegionSuggestion is one fuzzy-ranked candidate key for an unmatched
// boundary feature name.
type RegionSuggestion struct {
	Key   string  `bson:"key" json:"key"`
	Score float64 `bson:"score" json:"score"`
}

// RegionReview records a boundary feature name that resolved to no aggregate,
// together with ranked mapping suggestions for an operator to pick from.
// Approving a review teaches the runtime mapping an alias.
type RegionReview struct {
	ID            string             `bson:"review_id" json:"review_id"`
	FeatureName   string             `bson:"feature_name" json:"feature_name"` // raw external-script name
	Level         string             `bson:"level" json:"level"`
	CanonicalName string             `bson:"canonical_name" json:"canonical_name"`
	Suggestions   []RegionSuggestion `bson:"suggestions" json:"suggestions"`
	Status        string             `bson:"status" json:"status"`
	ResolvedKey   *string            `bson:"resolved_key,omitempty" json:"resolved_key,omitempty"`
	ReviewerID    *string            `bson:"reviewer_id,omitempty" json:"reviewer_id,omitempty"`
	ReviewedAt    *time.Time         `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	SeenCount     int                `bson:"seen_count" json:"seen_count"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// Status constants
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// NewRegionReview creates a pending review for one unmatched feature name.
func NewRegionReview(id, featureName, level, canonicalName string, suggestions []RegionSuggestion) *RegionReview {
	return &RegionReview{
		ID:            id,
		FeatureName:   featureName,
		Level:         level,
		CanonicalName: canonicalName,
		Suggestions:   suggestions,
		Status:        ReviewStatusPending,
		SeenCount:     1,
		CreatedAt:     time.Now(),
	}
}

// Approve marks the review resolved against the chosen aggregate key.
func (rr *RegionReview) Approve(key, reviewerID string) {
	now := time.Now()
	rr.Status = ReviewStatusApproved
	rr.ResolvedKey = &key
	rr.ReviewerID = &reviewerID
	rr.ReviewedAt = &now
}

// Reject marks the review as not mappable.
func (rr *RegionReview) Reject(reviewerID string) {
	now := time.Now()
	rr.Status = ReviewStatusRejected
	rr.ReviewerID = &reviewerID
	rr.ReviewedAt = &now
}
