package models

// CustomerRecord is one customer organization's accumulated usage snapshot.
// Charge and Usage are accumulated independently; charge is never derived
// from the event count. Records are immutable during a session; contract
// metadata edited through the dashboard lives in a separate overlay keyed by
// Name.
type CustomerRecord struct {
	Name      string `json:"name" yaml:"name" bson:"name"`
	Region    string `json:"region,omitempty" yaml:"region,omitempty" bson:"region,omitempty"`           // top-level region, internal script, may be absent
	SubRegion string `json:"sub_region,omitempty" yaml:"sub_region,omitempty" bson:"sub_region,omitempty"` // finer-grained key when present
	Charge    int64  `json:"charge" yaml:"charge" bson:"charge"`                                          // smallest currency unit
	Usage     int64  `json:"usage" yaml:"usage" bson:"usage"`                                             // billable event count
	Category  string `json:"category,omitempty" yaml:"category,omitempty" bson:"category,omitempty"`
}

// Category constants for the public-sector dataset.
const (
	CategoryGovernment = "government"
	CategoryEducation  = "education"
	CategoryMedical    = "medical"
	CategoryEnterprise = "enterprise"
)

// HasRegion reports whether the record carries any usable region key.
func (r CustomerRecord) HasRegion() bool {
	return r.Region != "" || r.SubRegion != ""
}
