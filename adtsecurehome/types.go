package adtsecurehome

// StatusSuccess is the status value the vendor returns when a call succeeds.
// Any other value signals a domain-level failure.
const StatusSuccess = "SUCCESS"

// APIResponse is a decoded vendor payload. The vendor guarantees no schema
// beyond the status field (and a token on login), so the payload is exposed
// as-is for the caller to interpret.
type APIResponse map[string]any

// Status returns the embedded status field, or "" when it is absent or not
// a string.
func (r APIResponse) Status() string {
	s, _ := r["status"].(string)
	return s
}

// Token returns the embedded token field, or "" when it is absent or not a
// string.
func (r APIResponse) Token() string {
	t, _ := r["token"].(string)
	return t
}

// StoreFor selects which stored code a user preference update targets.
type StoreFor string

// Valid StoreFor selections.
const (
	StoreForArm    StoreFor = "Arm"
	StoreForBypass StoreFor = "Bypass"
)

// valid reports whether s is one of the accepted selections.
func (s StoreFor) valid() bool {
	return s == StoreForArm || s == StoreForBypass
}
