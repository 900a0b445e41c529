package requests

// ResolveRegionRequest resolves one boundary feature name.
type ResolveRegionRequest struct {
	FeatureName string `json:"feature_name" binding:"required"`
	Level       string `json:"level" binding:"required,oneof=province municipality"`
	UseCache    bool   `json:"use_cache,omitempty"`
}

// BatchResolveRequest resolves one rendering pass worth of feature names.
type BatchResolveRequest struct {
	FeatureNames []string `json:"feature_names" binding:"required,min=1,max=500"`
	Level        string   `json:"level" binding:"required,oneof=province municipality"`
}

// UpsertContractRequest creates or updates a contract overlay. Numeric
// fields are validated here; the aggregation core deliberately accepts
// whatever reaches it.
type UpsertContractRequest struct {
	ContractType string `json:"contract_type" binding:"required,oneof=poc annual subscription"`
	StartDate    string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Manager      string `json:"manager,omitempty"`
	Memo         string `json:"memo,omitempty"`
	MonthlyQuota int64  `json:"monthly_quota,omitempty" binding:"omitempty,min=0"`
}

// ReviewApproveRequest resolves a pending review against an aggregate key.
type ReviewApproveRequest struct {
	Key        string `json:"key" binding:"required"`
	ReviewerID string `json:"reviewer_id" binding:"required"`
}

// ReviewRejectRequest marks a review as not mappable.
type ReviewRejectRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required"`
}
