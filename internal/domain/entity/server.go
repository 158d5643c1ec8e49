package entity

// MaxServerURLLength bounds the server address accepted at setup.
const MaxServerURLLength = 2048

// ServerURLError explains why a server address was refused. Message is
// shown to the user as-is.
type ServerURLError struct {
	Message string
}

func (e *ServerURLError) Error() string {
	return e.Message
}
