package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Thrinath17/FitTrack/internal/model"
)

const (
	keyUser          = "fittrack_user"
	keyAttendance    = "fittrack_attendance"
	keyNotifications = "fittrack_notifications"
	keyWorkouts      = "fittrack_workouts"
	keySession       = "fittrack_session"
)

// StorageError marks the underlying key-value store as unavailable or a
// write as rejected. Malformed stored payloads are never a StorageError;
// they read as absent.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func getRecord(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Op: "read " + key, Err: err}
	}
	return value, true, nil
}

func setRecord(db *sql.DB, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return &StorageError{Op: "encode " + key, Err: err}
	}
	if _, err := db.Exec(`
INSERT INTO records(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(payload)); err != nil {
		return &StorageError{Op: "write " + key, Err: err}
	}
	return nil
}

func clearRecord(db *sql.DB, key string) error {
	if _, err := db.Exec(`DELETE FROM records WHERE key = ?`, key); err != nil {
		return &StorageError{Op: "clear " + key, Err: err}
	}
	return nil
}

func GetUser(db *sql.DB) (*model.User, error) {
	raw, ok, err := getRecord(db, keyUser)
	if err != nil || !ok {
		return nil, err
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

func SaveUser(db *sql.DB, u model.User) error {
	return setRecord(db, keyUser, u)
}

func ClearUser(db *sql.DB) error {
	return clearRecord(db, keyUser)
}

func GetAttendance(db *sql.DB) ([]model.AttendanceRecord, error) {
	raw, ok, err := getRecord(db, keyAttendance)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.AttendanceRecord{}, nil
	}
	var records []model.AttendanceRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return []model.AttendanceRecord{}, nil
	}
	return records, nil
}

// SaveAttendance upserts by date: the date is the natural key, so a
// record for an existing date replaces it wholesale and any other date
// is appended. The full list is then written back in one shot.
func SaveAttendance(db *sql.DB, record model.AttendanceRecord) error {
	records, err := GetAttendance(db)
	if err != nil {
		return err
	}
	replaced := false
	for i := range records {
		if records[i].Date == record.Date {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}
	return setRecord(db, keyAttendance, records)
}

func SaveAttendanceList(db *sql.DB, records []model.AttendanceRecord) error {
	return setRecord(db, keyAttendance, records)
}

func DefaultNotificationConfig() model.NotificationConfig {
	return model.NotificationConfig{
		Enabled:      false,
		UsualGymTime: "18:00",
		Reminders: []model.Reminder{
			{ID: "1", MinutesBefore: 60, Message: "Time to get ready for the gym!"},
		},
	}
}

// GetNotificationConfig never fails: store faults and malformed payloads
// both fall back to the built-in default.
func GetNotificationConfig(db *sql.DB) model.NotificationConfig {
	raw, ok, err := getRecord(db, keyNotifications)
	if err != nil || !ok {
		return DefaultNotificationConfig()
	}
	var cfg model.NotificationConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return DefaultNotificationConfig()
	}
	return cfg
}

func SaveNotificationConfig(db *sql.DB, cfg model.NotificationConfig) error {
	return setRecord(db, keyNotifications, cfg)
}

func GetWorkouts(db *sql.DB) ([]model.Workout, error) {
	raw, ok, err := getRecord(db, keyWorkouts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Workout{}, nil
	}
	var workouts []model.Workout
	if err := json.Unmarshal([]byte(raw), &workouts); err != nil {
		return []model.Workout{}, nil
	}
	return workouts, nil
}

func SaveWorkouts(db *sql.DB, workouts []model.Workout) error {
	return setRecord(db, keyWorkouts, workouts)
}

func GetSession(db *sql.DB) (model.ExecutionSession, error) {
	raw, ok, err := getRecord(db, keySession)
	if err != nil || !ok {
		return model.ExecutionSession{}, err
	}
	var s model.ExecutionSession
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return model.ExecutionSession{}, nil
	}
	return s, nil
}

func SaveSession(db *sql.DB, s model.ExecutionSession) error {
	return setRecord(db, keySession, s)
}

func ClearSession(db *sql.DB) error {
	return clearRecord(db, keySession)
}
