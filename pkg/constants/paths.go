package constants

// Authority Fabric API paths.
const (
	// HealthPath is the unauthenticated health endpoint
	HealthPath = "/health"

	// TokensPath is the token exchange endpoint
	TokensPath = "/v1/tokens"

	// ShadowDecisionsPath lists shadow-mode divergence decisions
	ShadowDecisionsPath = "/v1/shadow/decisions"

	// ShadowReplayPath replays IAM logs through the policy engine
	ShadowReplayPath = "/v1/shadow/replay"

	// ComplianceSOXPath is the SOX compliance report endpoint
	ComplianceSOXPath = "/v1/compliance/sox"

	// CompliancePCIPath is the PCI-DSS compliance report endpoint
	CompliancePCIPath = "/v1/compliance/pci"

	// AuditLogsPath lists audit log entries
	AuditLogsPath = "/v1/audit/logs"

	// UsagePath reports usage statistics for the license
	UsagePath = "/v1/usage"
)

// TokenValidatePath returns the validation path for a given token ID.
func TokenValidatePath(tokenID string) string {
	return TokensPath + "/" + tokenID + "/validate"
}
