// Package domain contains core concepts of the aggregation layer.
// This file defines Message values and related rules.
// Messages are keyed by timestamp, unique within a channel, and the
// owning backend is authoritative over every cached copy.
package domain

// Message is one chat event inside a channel. Timestamp doubles as the
// message identifier, which is how thread parents are referenced.
type Message struct {
	Timestamp  string
	UserID     string
	Text       string
	Reactions  []Reaction
	ReplyCount int
}

// Reaction is an emoji tally on one message.
type Reaction struct {
	Name    string
	UserIDs []string
}

// ChannelMessages maps timestamp -> message for one channel.
type ChannelMessages map[string]Message
