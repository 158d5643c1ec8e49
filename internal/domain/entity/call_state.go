package entity

// CallState tracks whether the web app reported an active call.
type CallState int32

const (
	CallNone CallState = iota
	CallAudio
	CallVideo
)

// String returns the value handed back to page script: "audio", "video" or "".
func (s CallState) String() string {
	switch s {
	case CallAudio:
		return "audio"
	case CallVideo:
		return "video"
	default:
		return ""
	}
}

// IsActive returns true while a call is in progress.
func (s CallState) IsActive() bool {
	return s == CallAudio || s == CallVideo
}

// CallStateForKind maps the kind passed by page script to a state.
// Only the exact string "video" selects video; anything else is audio.
func CallStateForKind(kind string) CallState {
	if kind == "video" {
		return CallVideo
	}
	return CallAudio
}
