package settings

import (
	"encoding/json"
	"sync"

	"github.com/pebbleway/pebbleway-api/internal/config"
	"github.com/pebbleway/pebbleway-api/internal/store"
)

// Repository manages the three cosmetic/preference records, each living
// under its own store key and overwritten wholesale on save.
type Repository interface {
	Profile() Profile
	SaveProfile(p Profile) error
	Notifications() NotificationPrefs
	SaveNotifications(n NotificationPrefs) error
	Theme() Theme
	SaveTheme(t Theme) error
}

type repository struct {
	st store.Store

	mu            sync.RWMutex
	profile       Profile
	notifications NotificationPrefs
	theme         Theme
}

func NewRepository(st store.Store) Repository {
	r := &repository{
		st:            st,
		notifications: DefaultNotificationPrefs(),
		theme:         ThemePastel,
	}
	r.hydrate()
	return r
}

func (r *repository) hydrate() {
	if data := r.load(store.UserDataKey); data != nil {
		var p Profile
		if err := json.Unmarshal(data, &p); err == nil {
			r.profile = p
		}
	}
	if data := r.load(store.NotificationsKey); data != nil {
		var n NotificationPrefs
		if err := json.Unmarshal(data, &n); err == nil {
			r.notifications = n
		}
	}
	if data := r.load(store.ThemeKey); data != nil {
		var raw string
		if err := json.Unmarshal(data, &raw); err == nil && Theme(raw).IsValid() {
			r.theme = Theme(raw)
		}
	}
}

// load treats storage failures the same as missing data.
func (r *repository) load(key string) []byte {
	data, err := r.st.Load(key)
	if err != nil {
		config.Logger().WithError(err).WithField("key", key).Warn("Failed to load settings record")
		return nil
	}
	return data
}

func (r *repository) save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.st.Save(key, data)
}

func (r *repository) Profile() Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile
}

func (r *repository) SaveProfile(p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.save(store.UserDataKey, p); err != nil {
		return err
	}
	r.profile = p
	return nil
}

func (r *repository) Notifications() NotificationPrefs {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.notifications
}

func (r *repository) SaveNotifications(n NotificationPrefs) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.save(store.NotificationsKey, n); err != nil {
		return err
	}
	r.notifications = n
	return nil
}

func (r *repository) Theme() Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme
}

func (r *repository) SaveTheme(t Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.save(store.ThemeKey, string(t)); err != nil {
		return err
	}
	r.theme = t
	return nil
}
