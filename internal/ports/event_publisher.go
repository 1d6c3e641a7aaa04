package ports

// Event kinds published after successful mutations
const (
	EventNotesUpdated       = "notes.updated"
	EventSessionCreated     = "session.created"
	EventSessionDeleted     = "session.deleted"
	EventSessionUpdated     = "session.updated"
	EventTranscriptAppended = "transcript.appended"
)

// EventPublisher fans out change notifications to subscribers
type EventPublisher interface {
	Publish(kind string, data any)
}
