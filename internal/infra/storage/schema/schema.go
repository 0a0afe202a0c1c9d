package schema

import (
	"context"
	"database/sql"
	"fmt"
)

// ddl схема базы. База in-memory и создается заново при каждом старте
// процесса, поэтому версионирование миграций не требуется.
const ddl = `
CREATE TABLE IF NOT EXISTS guest_houses (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL,
    address    TEXT NOT NULL DEFAULT '',
    caretaker  TEXT NOT NULL DEFAULT '',
    mobile     TEXT NOT NULL DEFAULT '',
    facilities TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS guest_house_rooms (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    guest_house_id INTEGER NOT NULL REFERENCES guest_houses(id) ON DELETE CASCADE,
    position       INTEGER NOT NULL,
    room_number    TEXT NOT NULL DEFAULT '',
    occupancy      TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_guest_house_rooms_house
    ON guest_house_rooms (guest_house_id, position);

CREATE TABLE IF NOT EXISTS bookings (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    guest_name       TEXT NOT NULL,
    guest_contact    TEXT NOT NULL DEFAULT '',
    employee_id      TEXT NOT NULL DEFAULT '',
    department       TEXT NOT NULL DEFAULT '',
    designation      TEXT NOT NULL DEFAULT '',
    cost_center      TEXT NOT NULL DEFAULT '',
    employee_level   TEXT NOT NULL DEFAULT '',
    purpose          TEXT NOT NULL DEFAULT '',
    mode_of_travel   TEXT NOT NULL DEFAULT '',
    coming_from      TEXT NOT NULL DEFAULT '',
    going_back       TEXT NOT NULL DEFAULT '',
    check_in         TEXT NOT NULL,
    check_out        TEXT NOT NULL,
    guest_house_name TEXT NOT NULL,
    room_number      TEXT NOT NULL DEFAULT '',
    created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bookings_guest_house_name
    ON bookings (guest_house_name);
`

// Apply создает таблицы сервиса
func Apply(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("schema: apply ddl: %w", err)
	}
	return nil
}
