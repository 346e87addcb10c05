package services

import (
	"log"
	"sync"

	"voicecoach/models"
)

// VoiceApplier is the slice of the hosted voice session this router talks
// to: a settable synthesizer-voice property, nothing more.
type VoiceApplier interface {
	ApplyVoice(voiceID string) error
}

type SwitchResult struct {
	Mode         models.Mode `json:"mode"`
	Concept      string      `json:"concept,omitempty"`
	VoiceID      string      `json:"voice_id"`
	VoiceApplied bool        `json:"voice_applied"`
}

// ModeRouter holds the session's current tutoring mode and focus concept.
// Every valid switch overwrites both fields; there is no history or undo.
// The voice change is best-effort: a speech-layer failure never rolls back
// the logical mode, the two outcomes are reported separately.
type ModeRouter struct {
	mu      sync.Mutex
	mode    models.Mode
	concept string
	voices  VoiceApplier
}

func NewModeRouter(voices VoiceApplier) *ModeRouter {
	return &ModeRouter{voices: voices}
}

func (r *ModeRouter) Switch(target, concept string) (*SwitchResult, error) {
	mode, err := models.ParseMode(target)
	if err != nil {
		log.Printf("[ERROR] Rejected mode switch: %v", err)
		return nil, err
	}

	r.mu.Lock()
	r.mode = mode
	r.concept = concept
	r.mu.Unlock()

	voiceID := models.VoiceForMode(mode)
	applied := false
	if r.voices != nil {
		if err := r.voices.ApplyVoice(voiceID); err != nil {
			log.Printf("[WARN] Could not update TTS voice to %s: %v", voiceID, err)
		} else {
			applied = true
		}
	}

	log.Printf("[INFO] Switched to %s mode (concept=%q, voice=%s, applied=%t)", mode, concept, voiceID, applied)
	return &SwitchResult{
		Mode:         mode,
		Concept:      concept,
		VoiceID:      voiceID,
		VoiceApplied: applied,
	}, nil
}

func (r *ModeRouter) Current() (models.Mode, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode, r.concept
}
