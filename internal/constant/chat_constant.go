package constant

const (
	// AuthRequiredMessage is returned verbatim when an intent requires
	// authentication and the session is anonymous. The pipeline short-circuits
	// before any query building or retrieval.
	AuthRequiredMessage = "This request requires authentication. " +
		"Please use the 'auth' command and provide your email and Client ID (ME-XXXXX)."

	AuthFailedMessage  = "Authentication failed. Please check your email and Client ID."
	AuthClearedMessage = "Authentication cleared."
)
