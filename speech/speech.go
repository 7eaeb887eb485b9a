// Package speech wraps the external text-to-speech and speech-to-text
// collaborators. Both are explicit injected values; there is no shared
// global engine.
package speech

import "context"

// SentinelUnintelligible is shown to the user when transcription fails.
const SentinelUnintelligible = "Sorry, I could not understand that."

// Transcriber converts an audio file into best-effort text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Synthesizer renders text as speech, either spoken aloud (CLI path) or
// written to an audio file whose path is returned (web path).
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
	SynthesizeToFile(ctx context.Context, text string) (string, error)
}
