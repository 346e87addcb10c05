package models

import "fmt"

// Mode selects which tutoring behavior and synthesized voice is active.
type Mode string

const (
	ModeUnset     Mode = ""
	ModeLearn     Mode = "learn"
	ModeQuiz      Mode = "quiz"
	ModeTeachBack Mode = "teach_back"
)

// ParseMode maps a raw mode string onto the closed enum. Anything outside
// the three valid modes is rejected; ModeUnset is never a valid target.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLearn, ModeQuiz, ModeTeachBack:
		return Mode(s), nil
	}
	return ModeUnset, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// VoiceForMode returns the synthesizer voice id for a mode. Unset or
// unrecognized modes fall back to the learn-mode voice.
func VoiceForMode(m Mode) string {
	switch m {
	case ModeQuiz:
		return "en-US-alicia"
	case ModeTeachBack:
		return "en-US-ken"
	default:
		return "en-US-matthew"
	}
}

// DisplayName is the spoken-friendly name used in tool responses.
func (m Mode) DisplayName() string {
	switch m {
	case ModeLearn:
		return "Learn mode with Matthew's voice"
	case ModeQuiz:
		return "Quiz mode with Alicia's voice"
	case ModeTeachBack:
		return "Teach back mode with Ken's voice"
	default:
		return string(m)
	}
}
