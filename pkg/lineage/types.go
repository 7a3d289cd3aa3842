package lineage

import "time"

// Direction selects which side of the center a lineage request covers.
type Direction string

const (
	DirectionBoth       Direction = "both"
	DirectionUpstream   Direction = "upstream"
	DirectionDownstream Direction = "downstream"
)

// EntityType splits catalog entities into data assets and the processes
// that transform them.
type EntityType string

const (
	EntityAsset   EntityType = "asset"
	EntityProcess EntityType = "process"
)

// Position is a 2D coordinate assigned by a layout algorithm.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// QualityScores holds per-dimension quality scores for a single asset,
// produced by the external scoring engine and merged in by guid.
type QualityScores struct {
	Completeness int `json:"completeness"`
	Accuracy     int `json:"accuracy"`
	Timeliness   int `json:"timeliness"`
	Consistency  int `json:"consistency"`
	Usability    int `json:"usability"`
	Overall      int `json:"overall"`
}

// Governance is the governance snapshot copied verbatim from the source
// entity. Nothing here is recomputed by the engine.
type Governance struct {
	CertificateStatus string   `json:"certificateStatus,omitempty"`
	OwnerUsers        []string `json:"ownerUsers,omitempty"`
	OwnerGroups       []string `json:"ownerGroups,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	Terms             []string `json:"terms,omitempty"`
	DomainGUIDs       []string `json:"domainGuids,omitempty"`
}

// Freshness is the staleness snapshot derived once at build time.
// A missing timestamp means freshness is unknown, never stale-by-default.
type Freshness struct {
	LastUpdatedAt *time.Time `json:"lastUpdatedAt,omitempty"`
	IsStale       bool       `json:"isStale"`
	StaleDays     int        `json:"staleDays"`
}

// Node represents a data asset or a transformation process in a lineage
// graph. Lineage flags are owned by Classify; Position by the layouts.
type Node struct {
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	Type       string     `json:"type"`
	EntityType EntityType `json:"entityType"`

	Governance Governance     `json:"governance"`
	Freshness  Freshness      `json:"freshness"`
	Quality    *QualityScores `json:"quality,omitempty"`

	HasUpstream     bool `json:"hasUpstream"`
	HasDownstream   bool `json:"hasDownstream"`
	UpstreamCount   int  `json:"upstreamCount"`
	DownstreamCount int  `json:"downstreamCount"`

	IsCenterNode bool      `json:"isCenterNode"`
	IsExpandable bool      `json:"isExpandable"`
	IsExpanded   bool      `json:"isExpanded"`
	Position     *Position `json:"position,omitempty"`
}

// Edge is one directed relationship between two nodes. The ID is the
// relationship id when the source provides one, otherwise a synthesized
// "source-target" composite. Two relation types connecting the same pair
// then share an id; consumers must not rely on edge ids being unique.
type Edge struct {
	ID               string `json:"id"`
	Source           string `json:"source"`
	Target           string `json:"target"`
	RelationshipType string `json:"relationshipType,omitempty"`
	IsUpstream       bool   `json:"isUpstream"`
	SourceType       string `json:"sourceType,omitempty"`
	TargetType       string `json:"targetType,omitempty"`
}

// Graph is a classified lineage graph centered on one asset. Once metrics
// or a layout have been computed from it, consumers must treat nodes and
// edges as immutable.
type Graph struct {
	Nodes        []Node `json:"nodes"`
	Edges        []Edge `json:"edges"`
	CenterNodeID string `json:"centerNodeId"`
}

// NodeByID returns the node with the given id, or nil.
func (g *Graph) NodeByID(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// CenterNode returns the center node, or nil for a malformed graph.
func (g *Graph) CenterNode() *Node {
	return g.NodeByID(g.CenterNodeID)
}

// RawRelation is one directed relationship as returned by the lineage API.
type RawRelation struct {
	FromEntityID     string `json:"fromEntityId"`
	ToEntityID       string `json:"toEntityId"`
	RelationshipID   string `json:"relationshipId,omitempty"`
	RelationshipType string `json:"relationshipType,omitempty"`
}

// RawLineageResponse is the already-fetched payload the engine consumes.
// The fetch layer is an external collaborator; the engine never performs I/O.
type RawLineageResponse struct {
	GuidEntityMap map[string]*AssetRecord `json:"guidEntityMap"`
	Relations     []RawRelation           `json:"relations"`
}

// AssetRecord is an explicit shape for the metadata platform's entity
// records. Identity fields are required; everything else is optional and
// every derivation helper is total over the zero value.
// Timestamps are epoch milliseconds, 0 meaning absent.
type AssetRecord struct {
	Guid          string `json:"guid"`
	TypeName      string `json:"typeName"`
	Name          string `json:"name,omitempty"`
	QualifiedName string `json:"qualifiedName,omitempty"`

	Description     string `json:"description,omitempty"`
	UserDescription string `json:"userDescription,omitempty"`

	OwnerUsers          []string `json:"ownerUsers,omitempty"`
	OwnerGroups         []string `json:"ownerGroups,omitempty"`
	AssetTags           []string `json:"assetTags,omitempty"`
	ClassificationNames []string `json:"classificationNames,omitempty"`
	Meanings            []string `json:"meanings,omitempty"`
	AssignedTerms       []string `json:"assignedTerms,omitempty"`
	DomainGUIDs         []string `json:"domainGUIDs,omitempty"`
	CertificateStatus   string   `json:"certificateStatus,omitempty"`

	UpdateTime       int64 `json:"updateTime,omitempty"`
	SourceUpdatedAt  int64 `json:"sourceUpdatedAt,omitempty"`
	SourceLastReadAt int64 `json:"sourceLastReadAt,omitempty"`
	LastSyncRunAt    int64 `json:"lastSyncRunAt,omitempty"`
}
