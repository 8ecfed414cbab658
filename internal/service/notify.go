package service

import (
	"database/sql"
	"fmt"
	"regexp"

	"github.com/Thrinath17/FitTrack/internal/model"
	"github.com/Thrinath17/FitTrack/internal/store"
)

var gymTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// PermissionRequester is the platform notification-permission
// collaborator. Fire-and-forget: no return contract.
type PermissionRequester interface {
	RequestPermission()
}

// SetNotificationsEnabled toggles reminders. Enabling asks the platform
// for permission when a requester is wired; the outcome is not awaited.
func SetNotificationsEnabled(db *sql.DB, enabled bool, perms PermissionRequester) (model.NotificationConfig, error) {
	cfg := store.GetNotificationConfig(db)
	cfg.Enabled = enabled
	if err := store.SaveNotificationConfig(db, cfg); err != nil {
		return model.NotificationConfig{}, err
	}
	if enabled && perms != nil {
		perms.RequestPermission()
	}
	return cfg, nil
}

func SetGymTime(db *sql.DB, gymTime string) (model.NotificationConfig, error) {
	if !gymTimePattern.MatchString(gymTime) {
		return model.NotificationConfig{}, fmt.Errorf("invalid gym time %q (expected HH:mm)", gymTime)
	}
	cfg := store.GetNotificationConfig(db)
	cfg.UsualGymTime = gymTime
	if err := store.SaveNotificationConfig(db, cfg); err != nil {
		return model.NotificationConfig{}, err
	}
	return cfg, nil
}

func AddReminder(db *sql.DB, minutesBefore int, message string) (model.Reminder, error) {
	if minutesBefore <= 0 {
		return model.Reminder{}, fmt.Errorf("minutes before must be > 0")
	}
	cfg := store.GetNotificationConfig(db)
	reminder := model.Reminder{
		ID:            newID(),
		MinutesBefore: minutesBefore,
		Message:       message,
	}
	cfg.Reminders = append(cfg.Reminders, reminder)
	if err := store.SaveNotificationConfig(db, cfg); err != nil {
		return model.Reminder{}, err
	}
	return reminder, nil
}

func RemoveReminder(db *sql.DB, id string) error {
	cfg := store.GetNotificationConfig(db)
	kept := make([]model.Reminder, 0, len(cfg.Reminders))
	found := false
	for _, r := range cfg.Reminders {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("reminder %q not found", id)
	}
	cfg.Reminders = kept
	return store.SaveNotificationConfig(db, cfg)
}
