package responder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNotificationMessage(t *testing.T) {
	tests := []struct {
		name    string
		f       int
		minutes int
		want    string
	}{
		{"gentle very soon", 0, 20, `Just 20 minutes left for "Essay"! You can do it! 🌸`},
		{"clamped below", -3, 20, `Just 20 minutes left for "Essay"! You can do it! 🌸`},
		{"balanced upcoming", 3, 90, `Reminder: "Essay" is due in 90 minutes.`},
		{"firm overdue", 5, -90, `OVERDUE: "Essay" was due 2 hours ago. Do it now!`},
		{"fierce overdue", 9, -30, `🚨 "Essay" IS 30 minutes OVERDUE. NO EXCUSES. NOW!`},
		{"fierce advance", 9, 300, `"Essay" DUE IN 5 hours. PREPARE NOW.`},
		{"gentle advance", 1, 60 * 24, `Friendly heads-up: "Essay" is due in 24 hours. 💖`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateNotificationMessage(tt.f, "Essay", tt.minutes))
		})
	}
}

func TestGenerateNotificationMessage_WindowBoundaries(t *testing.T) {
	assert.Equal(t, 0, notificationWindow(0))
	assert.Equal(t, 1, notificationWindow(1))
	assert.Equal(t, 1, notificationWindow(30))
	assert.Equal(t, 2, notificationWindow(31))
	assert.Equal(t, 2, notificationWindow(120))
	assert.Equal(t, 3, notificationWindow(121))

	assert.Equal(t, 0, notificationPersona(2))
	assert.Equal(t, 1, notificationPersona(3))
	assert.Equal(t, 1, notificationPersona(4))
	assert.Equal(t, 2, notificationPersona(6))
	assert.Equal(t, 3, notificationPersona(7))
}

func TestGenerateNotificationMessage_AllTemplatesDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, minutes := range []int{-10, 15, 60, 240} {
		for _, f := range []int{0, 4, 6, 9} {
			msg := GenerateNotificationMessage(f, "Quiz", minutes)
			assert.Contains(t, msg, "Quiz")
			assert.False(t, seen[msg], "duplicate message %q", msg)
			seen[msg] = true
		}
	}
	assert.Len(t, seen, 16)
}

func TestGenerateNotificationMessage_EmptyName(t *testing.T) {
	assert.Contains(t, GenerateNotificationMessage(4, "  ", 15), `"your task"`)
}
