package schema

// Message is one entry in the two-turn prompt sent to the model.
//
// Role is one of: "system", "user".
type Message struct {
	Role    string
	Content string
}

func NewSystemMessage(content string) Message {
	return Message{
		Role:    "system",
		Content: content,
	}
}

func NewUserMessage(content string) Message {
	return Message{
		Role:    "user",
		Content: content,
	}
}
