package validation

// MessageBag accumulates rendered validation messages grouped by
// field. Fields keep first-failure order; messages within a field keep
// the order the rules ran in. The bag only grows: repeated Validate
// calls on the same Validator append to it, nothing resets it.
type MessageBag struct {
	fields   []string
	messages map[string][]string
}

// NewMessageBag creates an empty bag.
func NewMessageBag() *MessageBag {
	return &MessageBag{messages: make(map[string][]string)}
}

// Add appends a rendered message to the field's sequence.
func (b *MessageBag) Add(field, message string) {
	if _, ok := b.messages[field]; !ok {
		b.fields = append(b.fields, field)
	}
	b.messages[field] = append(b.messages[field], message)
}

// Has reports whether the field has at least one message.
func (b *MessageBag) Has(field string) bool {
	return len(b.messages[field]) > 0
}

// Get returns the field's messages in the order they were recorded,
// or nil if the field has none.
func (b *MessageBag) Get(field string) []string {
	return b.messages[field]
}

// First returns the field's first message, or "" if it has none.
func (b *MessageBag) First(field string) string {
	if messages := b.messages[field]; len(messages) > 0 {
		return messages[0]
	}
	return ""
}

// Fields returns the field names in the order they first failed.
func (b *MessageBag) Fields() []string {
	return b.fields
}

// Messages returns the underlying field → messages map, not a copy.
func (b *MessageBag) Messages() map[string][]string {
	return b.messages
}

// All flattens the bag into a single slice: fields in the order they
// first failed, then each field's messages in recorded order.
func (b *MessageBag) All() []string {
	var all []string
	for _, field := range b.fields {
		all = append(all, b.messages[field]...)
	}
	return all
}

// IsEmpty reports whether no field has any message.
func (b *MessageBag) IsEmpty() bool {
	return len(b.fields) == 0
}
