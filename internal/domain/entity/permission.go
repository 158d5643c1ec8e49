package entity

// Grant is a platform-level permission token. It is distinct from a web
// capability: one capability may require several grants.
type Grant string

const (
	// GrantMicrophone allows recording audio.
	GrantMicrophone Grant = "microphone"

	// GrantCamera allows capturing video.
	GrantCamera Grant = "camera"
)

// GrantRecord stores whether the platform currently holds a grant.
type GrantRecord struct {
	Grant     Grant
	Granted   bool
	UpdatedAt int64 // Unix timestamp in seconds when this record was last updated
}

// IsGranted returns true if the grant is held.
func (g *GrantRecord) IsGranted() bool {
	return g != nil && g.Granted
}

// GrantsToStrings converts grants to strings for logging.
func GrantsToStrings(grants []Grant) []string {
	result := make([]string, len(grants))
	for i, g := range grants {
		result[i] = string(g)
	}
	return result
}

// GrantDecision partitions the capabilities of one request into the granted
// and the denied set. Every requested capability lands in exactly one of them.
type GrantDecision struct {
	Granted []Capability
	Denied  []Capability
}

// DenyAll builds the decision that refuses every requested capability.
func DenyAll(caps []Capability) GrantDecision {
	denied := make([]Capability, len(caps))
	copy(denied, caps)
	return GrantDecision{Denied: denied}
}

// IsDenied returns true when nothing was granted.
func (d GrantDecision) IsDenied() bool {
	return len(d.Granted) == 0
}
