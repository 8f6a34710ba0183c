package settings

// Profile is the user-facing record shown on the profile screen. It is
// overwritten wholesale on each change; there is no history.
type Profile struct {
	Username          string `json:"username"`
	AnimationsEnabled bool   `json:"animationsEnabled"`
}

type NotificationPrefs struct {
	Notifications bool `json:"notifications"`
	GoalReminders bool `json:"goalReminders"`
}

func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{
		Notifications: true,
		GoalReminders: true,
	}
}
