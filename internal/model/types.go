package model

type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGoogle AuthProvider = "google"
	ProviderApple  AuthProvider = "apple"
)

type User struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	PhotoURL string       `json:"photoUrl,omitempty"`
	Provider AuthProvider `json:"provider"`
}

type ExerciseSet struct {
	ID     string  `json:"id"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight,omitempty"`
}

type Exercise struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Note string        `json:"note,omitempty"`
	Sets []ExerciseSet `json:"sets"`
}

// Workout is both a reusable routine template and an instance snapshot
// embedded in an attendance record. Instances are deep copies with a
// fresh id and carry no reference back to their template.
type Workout struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Note         string     `json:"note,omitempty"`
	Exercises    []Exercise `json:"exercises"`
	CreatedAt    int64      `json:"createdAt"`
	Color        string     `json:"color,omitempty"`
	Abbreviation string     `json:"abbreviation,omitempty"`
}

// AttendanceRecord keys on Date (YYYY-MM-DD); at most one record exists
// per calendar date. Timestamp is epoch milliseconds of the last mutation.
type AttendanceRecord struct {
	ID                string    `json:"id"`
	Date              string    `json:"date"`
	Attended          bool      `json:"attended"`
	Notes             string    `json:"notes,omitempty"`
	Timestamp         int64     `json:"timestamp"`
	PerformedWorkouts []Workout `json:"performedWorkouts,omitempty"`
	PlannedWorkouts   []Workout `json:"plannedWorkouts,omitempty"`
}

type Reminder struct {
	ID            string `json:"id"`
	MinutesBefore int    `json:"minutesBefore"`
	Message       string `json:"message"`
}

type NotificationConfig struct {
	Enabled      bool       `json:"enabled"`
	UsualGymTime string     `json:"usualGymTime"`
	Reminders    []Reminder `json:"reminders"`
}
