package upstream

// NoMediaHint is the message surfaced when the upstream answered successfully
// but the payload carried nothing downloadable.
const NoMediaHint = "the media may be private, unavailable, or deleted"

// StatusError is a definitive upstream failure: the resolver answered with a
// falsy status flag. Msg carries the upstream-provided message verbatim.
type StatusError struct {
	Platform string
	Msg      string
}

func (e *StatusError) Error() string {
	if e.Msg == "" {
		return "Failed to fetch from API"
	}
	return e.Msg
}
