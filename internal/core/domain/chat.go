package domain

// Conversation roles. Roles are conventional, not validated: any value is
// accepted on input, and anything other than user/assistant is simply
// never forwarded to the backend.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Speaker labels understood by the Perplexica history format.
const (
	SpeakerHuman     = "human"
	SpeakerAssistant = "assistant"
)

// Message is a single role-tagged conversation message.
type Message struct {
	// Role is conventionally one of "system", "user", or "assistant".
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// HistoryPair is one prior conversation turn as (speaker, content).
// It marshals as a two-element JSON array, the wire shape Perplexica
// expects for history entries.
type HistoryPair [2]string

// Speaker returns the speaker label of the turn.
func (p HistoryPair) Speaker() string { return p[0] }

// Content returns the message text of the turn.
func (p HistoryPair) Content() string { return p[1] }

// SplitConversation separates a conversation into the current query and
// the prior history sent alongside it.
//
// The last message is always the query: its content is used verbatim and
// its role is ignored. Earlier user and assistant messages become history
// pairs in their original order. System messages, and messages with any
// unrecognised role, are dropped rather than mapped; system prompts are
// intentionally never forwarded to the backend.
func SplitConversation(messages []Message) (string, []HistoryPair, error) {
	if len(messages) == 0 {
		return "", nil, ErrNoMessages
	}

	query := messages[len(messages)-1].Content

	history := make([]HistoryPair, 0, len(messages)-1)
	for _, msg := range messages[:len(messages)-1] {
		switch msg.Role {
		case RoleUser:
			history = append(history, HistoryPair{SpeakerHuman, msg.Content})
		case RoleAssistant:
			history = append(history, HistoryPair{SpeakerAssistant, msg.Content})
		}
	}

	return query, history, nil
}
