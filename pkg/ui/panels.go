package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// MicrophoneRequired is shown when audio acquisition fails
const MicrophoneRequired = "Microphone access required! Please allow microphone and try again."

// NewMicrophoneNotice tells the player the game cannot start without a microphone
func NewMicrophoneNotice(width, height int, detail string, onDismiss func()) *Notice {
	msg := strings.Replace(MicrophoneRequired, "! ", "!\n", 1)
	if detail != "" {
		msg += "\n\n" + detail
	}
	n := NewNotice(width, height, "NO MICROPHONE", msg,
		Choice{Label: "OK", Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEscape}, OnSelect: onDismiss})
	n.TitleColor = color.RGBA{255, 90, 90, 255}
	return n
}

// NewWaitingNotice is shown while the microphone is being acquired
func NewWaitingNotice(width, height int, onCancel func()) *Notice {
	return NewNotice(width, height, "GET READY", "Waiting for the microphone...\nShout to accelerate, drag to steer.",
		Choice{Label: "Cancel", Keys: []ebiten.Key{ebiten.KeyEscape}, OnSelect: onCancel})
}

// NewDeviceLostNotice offers to resume with a fresh microphone or give up
func NewDeviceLostNotice(width, height int, onResume, onQuit func()) *Notice {
	n := NewNotice(width, height, "PAUSED", "The microphone stopped sending audio.\nReconnect it and resume, or end the run.",
		Choice{Label: "Resume", Keys: []ebiten.Key{ebiten.KeySpace}, OnSelect: onResume},
		Choice{Label: "End Run", Keys: []ebiten.Key{ebiten.KeyEscape}, OnSelect: onQuit})
	n.TitleColor = color.RGBA{255, 170, 60, 255}
	return n
}

// NewGameOver shows the final score with a restart control
func NewGameOver(width, height int, score, best int, reason string, onRestart func()) *Notice {
	msg := fmt.Sprintf("Final Score: %d\nBest this run: %d", score, best)
	if reason != "" {
		msg += "\nEnded by " + reason
	}
	n := NewNotice(width, height, "GAME OVER", msg,
		Choice{Label: "Restart", Keys: []ebiten.Key{ebiten.KeyR, ebiten.KeySpace}, OnSelect: onRestart})
	n.TitleColor = color.RGBA{255, 68, 68, 255}
	return n
}
