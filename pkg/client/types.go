package client

// Tier identifies a license tier.
type Tier string

// Known license tiers.
const (
	TierFree         Tier = "free"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
	TierGovernment   Tier = "government"
)

// HealthResponse is the response of the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// TokenRequest exchanges an SSO token for an Authority Fabric token.
// Nonce and ChannelBinding are hex encodings of caller-supplied 32-byte
// values; see Client.ExchangeToken.
type TokenRequest struct {
	SSOToken       string   `json:"sso_token"`
	RequestedScope []string `json:"requested_scope"`
	Nonce          string   `json:"nonce"`
	ChannelBinding string   `json:"channel_binding"`
}

// TokenResponse is the result of a token exchange.
type TokenResponse struct {
	AFToken      string   `json:"af_token"`
	GrantedScope []string `json:"granted_scope"`
	ExpiresAt    int64    `json:"expires_at"`
	ExchangeID   string   `json:"exchange_id"`
}

// ValidateResponse is the result of a token validation.
type ValidateResponse struct {
	Valid   bool     `json:"valid"`
	Subject string   `json:"subject,omitempty"`
	Scope   []string `json:"scope,omitempty"`
}

// ShadowDecision is a single divergence between the IAM decision and the
// Authority Fabric policy evaluation.
type ShadowDecision struct {
	DivergenceID    string `json:"divergence_id"`
	IAMAllowed      bool   `json:"iam_allowed"`
	AFWouldAllow    bool   `json:"af_would_allow"`
	BreachPrevented bool   `json:"breach_prevented"`
}

// ReplayRequest replays IAM logs through the policy engine.
type ReplayRequest struct {
	Logs    []string `json:"logs"`
	Adapter string   `json:"adapter"`
}

// ReplayResponse summarizes a shadow replay run.
type ReplayResponse struct {
	EventsProcessed       uint64 `json:"events_processed"`
	BreachesPrevented     uint64 `json:"breaches_prevented"`
	FalsePositivesAvoided uint64 `json:"false_positives_avoided"`
}

// SOXReport is a SOX compliance report.
type SOXReport struct {
	Period             string `json:"period"`
	TotalEvents        uint64 `json:"total_events"`
	AuditTrailComplete bool   `json:"audit_trail_complete"`
	NoGaps             bool   `json:"no_gaps"`
}

// PCIReport is a PCI-DSS compliance report.
type PCIReport struct {
	Period                 string `json:"period"`
	AccessControlsEnforced bool   `json:"access_controls_enforced"`
	EncryptionVerified     bool   `json:"encryption_verified"`
	AuditComplete          bool   `json:"audit_complete"`
}

// AuditLog is a single audit log entry.
type AuditLog struct {
	Timestamp int64  `json:"timestamp"`
	EventType string `json:"event_type"`
	Subject   string `json:"subject"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// UsageResponse reports usage statistics for the license.
type UsageResponse struct {
	Tier          Tier    `json:"tier"`
	Usage         uint64  `json:"usage"`
	Limit         uint64  `json:"limit"`
	Percentage    float64 `json:"percentage"`
	DaysRemaining int64   `json:"days_remaining"`
}
