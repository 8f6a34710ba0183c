package settings_test

import (
	"testing"

	"github.com/pebbleway/pebbleway-api/internal/settings"
	"github.com/pebbleway/pebbleway-api/internal/store"
)

func TestDefaults(t *testing.T) {
	repo := settings.NewRepository(store.NewMemoryStore())

	if got := repo.Theme(); got != settings.ThemePastel {
		t.Errorf("Expected default theme pastel, got %s", got)
	}
	n := repo.Notifications()
	if !n.Notifications || !n.GoalReminders {
		t.Errorf("Notification preferences must default to enabled, got %+v", n)
	}
	if p := repo.Profile(); p.Username != "" {
		t.Errorf("Expected empty default profile, got %+v", p)
	}
}

func TestRecordsSurviveReload(t *testing.T) {
	st := store.NewMemoryStore()
	repo := settings.NewRepository(st)

	if err := repo.SaveProfile(settings.Profile{Username: "maya", AnimationsEnabled: true}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := repo.SaveNotifications(settings.NotificationPrefs{Notifications: false, GoalReminders: true}); err != nil {
		t.Fatalf("SaveNotifications failed: %v", err)
	}
	if err := repo.SaveTheme(settings.ThemeMint); err != nil {
		t.Fatalf("SaveTheme failed: %v", err)
	}

	reloaded := settings.NewRepository(st)
	if p := reloaded.Profile(); p.Username != "maya" || !p.AnimationsEnabled {
		t.Errorf("Profile did not survive reload: %+v", p)
	}
	if n := reloaded.Notifications(); n.Notifications || !n.GoalReminders {
		t.Errorf("Notification preferences did not survive reload: %+v", n)
	}
	if got := reloaded.Theme(); got != settings.ThemeMint {
		t.Errorf("Theme did not survive reload: %s", got)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	repo := settings.NewRepository(store.NewMemoryStore())

	repo.SaveProfile(settings.Profile{Username: "maya", AnimationsEnabled: true})
	repo.SaveProfile(settings.Profile{Username: "noa"})

	p := repo.Profile()
	if p.Username != "noa" || p.AnimationsEnabled {
		t.Errorf("Save must replace the whole record, got %+v", p)
	}
}

func TestCorruptRecordsFallBackToDefaults(t *testing.T) {
	st := store.NewMemoryStore()
	st.Save(store.UserDataKey, []byte("]["))
	st.Save(store.NotificationsKey, []byte("42"))
	st.Save(store.ThemeKey, []byte(`"neon"`))

	repo := settings.NewRepository(st)
	if p := repo.Profile(); p.Username != "" {
		t.Errorf("Corrupt profile must read as default, got %+v", p)
	}
	if got := repo.Theme(); got != settings.ThemePastel {
		t.Errorf("Unknown stored theme must fall back to pastel, got %s", got)
	}
}
