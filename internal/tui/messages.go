package tui

import "github.com/MKhiriev/calm-companion/models"

// Page names registered in the router.
const (
	pageLoading  = "loading"
	pageWelcome  = "welcome"
	pageLogin    = "login"
	pageRegister = "register"
	pageProfile  = "profile"
	pageChat     = "chat"
	pageCalm     = "calm"
	pageHistory  = "history"
	pageAbout    = "about"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// navigateBack returns to the page that was active before the current one.
type navigateBack struct{}

// statusNotice carries a one-off status line into the page that receives it.
type statusNotice struct {
	text  string
	isErr bool
}

// split returns the notice as the (status, error) pair of renderStatus.
func (n statusNotice) split() (string, string) {
	if n.isErr {
		return "", n.text
	}
	return n.text, ""
}

// authDoneMsg is produced after a successful login or registration.
type authDoneMsg struct {
	session models.Session
}

// sessionExpiredMsg asks the router to log out and return to Welcome.
type sessionExpiredMsg struct{}

// logoutMsg asks the router to end the session on user request.
type logoutMsg struct {
	notice statusNotice
}

type loggedOutMsg struct {
	notice statusNotice
}

type authResultMsg struct {
	err error
}

type profileLoadedMsg struct {
	profile models.UserProfile
	exists  bool
	err     error
}

type profileSavedMsg struct {
	err error
}

type localesLoadedMsg struct {
	locales []models.Locale
	err     error
}

type welcomeLoadedMsg struct {
	msg models.Message
}

type replyMsg struct {
	msg models.Message
	err error
}

type historyLoadedMsg struct {
	locale  string
	entries []models.ConversationEntry
	err     error
}

type versionLoadedMsg struct {
	info models.VersionInfo
	err  error
}

type breathTickMsg struct {
	generation uint64
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
