package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
)

var (
	ErrSelectFailed    = errors.New("select operation failed")
	ErrMultipleMatches = errors.New("lookup key matched more than one row")
)

// Key columns are indexed but not unique, so every lookup reads up to two rows
// and treats a second row as an error instead of picking one.
func getOne[T any](ctx context.Context, q pgxscan.Querier, fn, query, key string) (Result[T], error) {
	var rows []T
	if err := pgxscan.Select(ctx, q, &rows, query, key); err != nil {
		return Result[T]{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	switch len(rows) {
	case 0:
		return NotFound[T](), nil
	case 1:
		return Found(rows[0]), nil
	default:
		return Result[T]{}, fmt.Errorf("%s:%w: key %q", fn, ErrMultipleMatches, key)
	}
}

func (db *DB) GetUser(ctx context.Context, key string) (Result[User], error) {
	const fn = "DB:GetUser"
	return getOne[User](ctx, db.pool, fn, `
		SELECT
			sh_id,
			sh_username,
			sh_password,
			sh_email,
			sh_token,
			sh_token_exptime,
			sh_regtime,
			sh_status,
			sh_apikey,
			sh_about
		FROM tb_user
		WHERE sh_id = $1
		LIMIT 2
	`, key)
}

func (db *DB) GetUserToken(ctx context.Context, key string) (Result[UserToken], error) {
	const fn = "DB:GetUserToken"
	return getOne[UserToken](ctx, db.pool, fn, `
		SELECT
			sh_user_id,
			sh_token,
			sh_deadline
		FROM tb_user_token
		WHERE sh_user_id = $1
		LIMIT 2
	`, key)
}

func (db *DB) GetDevice(ctx context.Context, key string) (Result[Device], error) {
	const fn = "DB:GetDevice"
	return getOne[Device](ctx, db.pool, fn, `
		SELECT
			sh_id,
			sh_name,
			sh_tags,
			sh_locate,
			sh_user_id,
			sh_create_time,
			sh_last_active,
			sh_status,
			sh_about
		FROM tb_device
		WHERE sh_id = $1
		LIMIT 2
	`, key)
}

func (db *DB) GetSensor(ctx context.Context, key string) (Result[Sensor], error) {
	const fn = "DB:GetSensor"
	return getOne[Sensor](ctx, db.pool, fn, `
		SELECT
			sh_id,
			sh_name,
			sh_tags,
			sh_type,
			sh_device_id,
			sh_last_update,
			sh_last_data,
			sh_status,
			sh_about
		FROM tb_sensor
		WHERE sh_id = $1
		LIMIT 2
	`, key)
}

func (db *DB) GetSensorType(ctx context.Context, key string) (Result[SensorType], error) {
	const fn = "DB:GetSensorType"
	return getOne[SensorType](ctx, db.pool, fn, `
		SELECT
			sh_id,
			sh_name,
			sh_description,
			sh_status
		FROM tb_sensor_type
		WHERE sh_id = $1
		LIMIT 2
	`, key)
}

func (db *DB) GetDatapoint(ctx context.Context, key string) (Result[Datapoint], error) {
	const fn = "DB:GetDatapoint"
	return getOne[Datapoint](ctx, db.pool, fn, `
		SELECT
			sh_id,
			sh_sensor_id,
			sh_timestamp,
			sh_value
		FROM tb_datapoint_list
		WHERE sh_id = $1
		LIMIT 2
	`, key)
}
