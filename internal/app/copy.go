package app

// Texts shown by the terminal client.
const (
	CopyWelcomeTitle    = "Welcome to Your Safe Space"
	CopyWelcomeSubtitle = "A gentle, empathetic companion for emotional support. Share your thoughts in your preferred language, at your own pace."

	CopyFeatureListen    = "Share what's on your mind. We're here to listen without judgment."
	CopyFeatureLanguages = "Communicate in Tamil, English, Telugu, Kannada, Hindi, Marathi, or Tanglish."
	CopyFeaturePrivacy   = "Your conversations are private and secure. We prioritize your wellbeing."
	CopyLoginPrompt      = "Login securely to start your conversation"

	CopyCrisisFooter = "If you're experiencing a crisis, please contact a mental health professional or emergency services."

	CopyProfileTitle       = "Welcome!"
	CopyProfileDescription = "Before we begin, please tell us your name so we can personalize your experience."
	CopyProfileNameLabel   = "Your Name"
	CopyProfileNameHint    = "Enter your name"
	CopyProfileNameEmpty   = "Please enter your name"
	CopyProfileCreated     = "Welcome! Your profile has been created."
	CopyProfileSaveFailed  = "Failed to save profile. Please try again."
	CopySaving             = "Saving..."

	CopyChatPlaceholder = "Share what's on your mind..."
	CopyTyping          = "Companion is typing"

	CopyCalmTitle       = "Calm Mode"
	CopyCalmDescription = "Take a moment to center yourself with this guided breathing exercise."
	CopyCalmFollow      = "Follow the circle"
	CopyCalmPressStart  = "Press space to begin"

	CopyCredentialsRequired = "Please enter a login and password."
	CopyInvalidCredentials  = "Invalid login or password."
	CopyLoginTaken          = "That login is already taken."
	CopySessionExpired      = "Your session has expired. Please log in again."
	CopyGenericFailure      = "Something went wrong. Please try again."
	CopyHistoryFailed       = "Could not load your history. Please try again."
	CopyHistoryEmpty        = "No conversations yet."

	CopyCopied          = "Copied to clipboard."
	CopyNothingToCopy   = "Nothing to copy yet."
	CopyClipboardFailed = "Clipboard is not available."

	CopyServerUnavailable = "No network connection or the server is unavailable."
	CopyPasswordsMismatch = "Passwords do not match."
	CopyLoggedOut         = "You have been logged out."
	CopyRegistered        = "Your account has been created."
	CopyAboutTitle        = "About Calm Companion"
	CopyNoLanguage        = "Not set"
	CopyAllLanguages      = "All languages"
)
