package db

import "time"

type User struct {
	ID           int64     `db:"sh_id"`
	Username     string    `db:"sh_username"`
	Password     string    `db:"sh_password"`
	Email        string    `db:"sh_email"`
	Token        string    `db:"sh_token"`
	TokenExpiry  time.Time `db:"sh_token_exptime"`
	RegisteredAt time.Time `db:"sh_regtime"`
	Active       bool      `db:"sh_status"`
	APIKey       string    `db:"sh_apikey"`
	About        string    `db:"sh_about"`
}

// UserToken is keyed by the owning user's id, not its own.
type UserToken struct {
	UserID   int64  `db:"sh_user_id"`
	Token    string `db:"sh_token"`
	Deadline int64  `db:"sh_deadline"`
}

type Device struct {
	ID         int64     `db:"sh_id"`
	Name       string    `db:"sh_name"`
	Tags       string    `db:"sh_tags"`
	Location   string    `db:"sh_locate"`
	UserID     int64     `db:"sh_user_id"`
	CreatedAt  time.Time `db:"sh_create_time"`
	LastActive time.Time `db:"sh_last_active"`
	Active     bool      `db:"sh_status"`
	About      string    `db:"sh_about"`
}

type Sensor struct {
	ID         int64     `db:"sh_id"`
	Name       string    `db:"sh_name"`
	Tags       string    `db:"sh_tags"`
	TypeID     int64     `db:"sh_type"`
	DeviceID   int64     `db:"sh_device_id"`
	LastUpdate time.Time `db:"sh_last_update"`
	LastData   string    `db:"sh_last_data"`
	Active     bool      `db:"sh_status"`
	About      string    `db:"sh_about"`
}

type SensorType struct {
	ID          int64  `db:"sh_id"`
	Name        string `db:"sh_name"`
	Description string `db:"sh_description"`
	Active      bool   `db:"sh_status"`
}

type Datapoint struct {
	ID        int64  `db:"sh_id"`
	SensorID  int64  `db:"sh_sensor_id"`
	Timestamp int64  `db:"sh_timestamp"`
	Value     string `db:"sh_value"`
}

// Result is the outcome of a keyed lookup. A zero Result means no row matched.
type Result[T any] struct {
	Record T
	Found  bool
}

func Found[T any](record T) Result[T] {
	return Result[T]{Record: record, Found: true}
}

func NotFound[T any]() Result[T] {
	return Result[T]{}
}
