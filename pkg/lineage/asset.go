package lineage

import (
	"strings"
	"time"
)

// staleThreshold is the age after which an asset counts as stale.
const staleThreshold = 90 * 24 * time.Hour

// processTypeTokens identify transformation processes. A type name matches
// either exactly (lowercased) or by containing the "process" substring.
var processTypeTokens = map[string]bool{
	"process":       true,
	"columnprocess": true,
	"biprocess":     true,
	"dbtprocess":    true,
	"airflowtask":   true,
	"airflowdag":    true,
	"sparkjob":      true,
	"adfactivity":   true,
	"dataflow":      true,
}

// classifyEntityType derives the asset/process split from a raw type name.
func classifyEntityType(typeName string) EntityType {
	lower := strings.ToLower(typeName)
	if processTypeTokens[lower] || strings.Contains(lower, "process") {
		return EntityProcess
	}
	return EntityAsset
}

// resolveLabel picks a display name: name, then qualified name, then "Unknown".
func resolveLabel(record *AssetRecord) string {
	if record.Name != "" {
		return record.Name
	}
	if record.QualifiedName != "" {
		return record.QualifiedName
	}
	return "Unknown"
}

// extractGovernance copies the governance snapshot off a record. Tags merge
// asset tags with classification names; terms merge meanings with assigned
// terms, preserving source order.
func extractGovernance(record *AssetRecord) Governance {
	gov := Governance{
		CertificateStatus: record.CertificateStatus,
		OwnerUsers:        record.OwnerUsers,
		OwnerGroups:       record.OwnerGroups,
		DomainGUIDs:       record.DomainGUIDs,
	}
	if len(record.AssetTags) > 0 || len(record.ClassificationNames) > 0 {
		gov.Tags = append(append([]string{}, record.AssetTags...), record.ClassificationNames...)
	}
	if len(record.Meanings) > 0 || len(record.AssignedTerms) > 0 {
		gov.Terms = append(append([]string{}, record.Meanings...), record.AssignedTerms...)
	}
	return gov
}

// calculateFreshness derives the staleness snapshot. The last-updated
// timestamp is the first non-zero of update time, source-updated time and
// last sync time. With no timestamp at all the asset is not stale.
func calculateFreshness(record *AssetRecord, now time.Time) Freshness {
	var millis int64
	for _, candidate := range []int64{record.UpdateTime, record.SourceUpdatedAt, record.LastSyncRunAt} {
		if candidate > 0 {
			millis = candidate
			break
		}
	}
	if millis == 0 {
		return Freshness{}
	}

	updated := time.UnixMilli(millis).UTC()
	age := now.Sub(updated)
	return Freshness{
		LastUpdatedAt: &updated,
		IsStale:       age > staleThreshold,
		StaleDays:     int(age.Hours() / 24),
	}
}
