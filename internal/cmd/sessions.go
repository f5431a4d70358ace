package cmd

// SessionsCmd manages focus sessions
type SessionsCmd struct {
	End   SessionsEndCmd   `cmd:"end" help:"Stop the running session"`
	List  SessionsListCmd  `cmd:"list" help:"List sessions, running one first" default:"1"`
	Start SessionsStartCmd `cmd:"start" help:"Start a focus session"`
	View  SessionsViewCmd  `cmd:"view" help:"View a session and its interruptions"`
}
