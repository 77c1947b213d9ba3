package responder

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
)

// notificationTemplates is indexed by [window][persona]. Windows: overdue,
// within 30 minutes, within 2 hours, later. Personas: f<=2, f<=4, f<=6, f>6.
var notificationTemplates = [4][4]string{
	{
		`Oops! "{task}" was due {ago} ago. No worries, you can still do it! 💕`,
		`"{task}" is overdue by {ago}. Let's get it done.`,
		`OVERDUE: "{task}" was due {ago} ago. Do it now!`,
		`🚨 "{task}" IS {ago} OVERDUE. NO EXCUSES. NOW!`,
	},
	{
		`Just {minutes} minutes left for "{task}"! You can do it! 🌸`,
		`"{task}" is due in {minutes} minutes. Time to wrap up.`,
		`{minutes} MINUTES until "{task}" is due. Hurry!`,
		`⚡ "{task}" DUE IN {minutes} MINUTES. MOVE!`,
	},
	{
		`"{task}" is coming up in {minutes} minutes. Take your time getting ready! 😊`,
		`Reminder: "{task}" is due in {minutes} minutes.`,
		`"{task}" due in {minutes} minutes. Start now.`,
		`{minutes} MINUTES. "{task}". START IMMEDIATELY.`,
	},
	{
		`Friendly heads-up: "{task}" is due in {hours}. 💖`,
		`"{task}" is due in {hours}. Plan ahead.`,
		`"{task}" due in {hours}. Don't leave it to the last minute.`,
		`"{task}" DUE IN {hours}. PREPARE NOW.`,
	},
}

// GenerateNotificationMessage renders the push notification text for a task.
// It does not pass through the style transform.
func GenerateNotificationMessage(fierceness int, taskName string, minutesUntilDue int) string {
	if strings.TrimSpace(taskName) == "" {
		taskName = defaultTaskName
	}
	tpl := notificationTemplates[notificationWindow(minutesUntilDue)][notificationPersona(fierceness)]
	return strings.NewReplacer(
		"{task}", taskName,
		"{minutes}", strconv.Itoa(minutesUntilDue),
		"{ago}", agoText(minutesUntilDue),
		"{hours}", plural(int(math.Round(float64(minutesUntilDue)/60)), "hour"),
	).Replace(tpl)
}

func notificationWindow(minutes int) int {
	switch {
	case minutes <= 0:
		return 0
	case minutes <= 30:
		return 1
	case minutes <= 120:
		return 2
	default:
		return 3
	}
}

func notificationPersona(fierceness int) int {
	switch f := domain.ClampLevel(fierceness); {
	case f <= 2:
		return 0
	case f <= 4:
		return 1
	case f <= 6:
		return 2
	default:
		return 3
	}
}

func agoText(minutes int) string {
	if minutes >= 0 {
		return "0 minutes"
	}
	return humanDuration(float64(-minutes))
}
