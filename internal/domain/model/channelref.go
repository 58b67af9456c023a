package model

// ChannelRefKind says how a ChannelRef's Value identifies a channel.
type ChannelRefKind string

const (
	ChannelRefID       ChannelRefKind = "id"
	ChannelRefHandle   ChannelRefKind = "handle"
	ChannelRefUsername ChannelRefKind = "username"
)

// ChannelRef identifies a channel by id, @handle or legacy username.
// Handle values are stored without the leading "@".
type ChannelRef struct {
	Kind  ChannelRefKind
	Value string
}

// String renders the ref the way it would appear in a channel URL path.
func (r ChannelRef) String() string {
	switch r.Kind {
	case ChannelRefHandle:
		return "@" + r.Value
	case ChannelRefUsername:
		return "user/" + r.Value
	default:
		return r.Value
	}
}
