package domain

// ChannelKind distinguishes the three conversation shapes every
// supported provider exposes.
type ChannelKind string

const (
	ChannelPublic  ChannelKind = "public"
	ChannelPrivate ChannelKind = "private"
	ChannelIM      ChannelKind = "im"
)

type Channel struct {
	ID   string
	Name string
	Kind ChannelKind
}

// Label renders the channel name the way tree views display it.
func (c Channel) Label() string {
	switch c.Kind {
	case ChannelPublic:
		return "#" + c.Name
	case ChannelPrivate:
		return c.Name + " (private)"
	default:
		return c.Name
	}
}
