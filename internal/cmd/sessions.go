package cmd

// SessionsCmd manages sessions
type SessionsCmd struct {
	Add    SessionsAddCmd    `cmd:"add" help:"Create a session"`
	Del    SessionsDelCmd    `cmd:"del" help:"Delete one or more sessions"`
	List   SessionsListCmd   `cmd:"list" aliases:"ls" help:"List sessions" default:"1"`
	Status SessionsStatusCmd `cmd:"status" help:"Set the status of a session"`
}
