package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CommandSynthesizer shells out to an espeak-style command: the text is the
// final argument, and "-w <file>" writes a WAV instead of playing audio.
type CommandSynthesizer struct {
	Command  string
	AudioDir string
}

func NewCommandSynthesizer(command, audioDir string) *CommandSynthesizer {
	if audioDir == "" {
		audioDir = os.TempDir()
	}
	return &CommandSynthesizer{Command: command, AudioDir: audioDir}
}

func (s *CommandSynthesizer) Speak(ctx context.Context, text string) error {
	if s.Command == "" {
		return fmt.Errorf("speech: no tts command configured")
	}
	cmd := exec.CommandContext(ctx, s.Command, text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("speech: %s failed: %w: %s", s.Command, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (s *CommandSynthesizer) SynthesizeToFile(ctx context.Context, text string) (string, error) {
	if s.Command == "" {
		return "", fmt.Errorf("speech: no tts command configured")
	}
	outPath := filepath.Join(s.AudioDir, fmt.Sprintf("reply-%d.wav", time.Now().UnixNano()))
	cmd := exec.CommandContext(ctx, s.Command, "-w", outPath, text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("speech: %s failed: %w: %s", s.Command, err, strings.TrimSpace(string(out)))
	}
	return outPath, nil
}

// CommandTranscriber shells out to a transcription command that takes an
// audio file path and prints the transcript on stdout. Format conversion
// is the command's problem, not ours.
type CommandTranscriber struct {
	Command string
}

func NewCommandTranscriber(command string) *CommandTranscriber {
	return &CommandTranscriber{Command: command}
}

func (t *CommandTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if t.Command == "" {
		return "", fmt.Errorf("speech: no stt command configured")
	}
	out, err := exec.CommandContext(ctx, t.Command, audioPath).Output()
	if err != nil {
		return "", fmt.Errorf("speech: %s failed: %w", t.Command, err)
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", fmt.Errorf("speech: empty transcript for %s", audioPath)
	}
	return text, nil
}
