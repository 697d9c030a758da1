package constants

// ContextKeyUserID is the gin context key the auth middleware stores the
// authenticated user's ID under.
const ContextKeyUserID = "user_id"

// DateLayout is the canonical calendar-date form stored and compared
// throughout the API.
const DateLayout = "2006-01-02"
