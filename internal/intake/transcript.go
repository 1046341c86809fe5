package intake

// Origin tags a transcript entry with its speaker.
type Origin string

const (
	OriginUser      Origin = "user"
	OriginAssistant Origin = "assistant"
)

// Entry is one line of the conversation transcript. The transcript is
// append-only; entries are never edited or reordered.
type Entry struct {
	Text   string
	Origin Origin
}
