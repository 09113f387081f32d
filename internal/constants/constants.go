package constants

// Session
const (
	SessionCookieName = "skillnet_session"
	ContextKeyUserID  = "user_id"
)

// Auth
const (
	MinPasswordLength = 8
	// TokenTTLHours is how long email verification and password reset tokens stay valid.
	TokenTTLHours = 24
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AI
const (
	// MaxRecommendations caps how many skill recommendations are returned per call.
	MaxRecommendations = 5
	// MaxExtractedSkills caps how many skills a single extraction call may return.
	MaxExtractedSkills = 20
)
