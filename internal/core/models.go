package core

import "time"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Exercise is a single entry of a user's log. Date is always a calendar date at UTC midnight.
type Exercise struct {
	Description string
	Duration    int
	Date        time.Time
}

type ExerciseMessage struct {
	Description string
	Duration    int
	// Date is nil when the caller did not supply a usable date.
	Date *time.Time
}

type ExerciseRecord struct {
	UserID      string `json:"id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type UserLog struct {
	UserID   string     `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}
