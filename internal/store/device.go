package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Display modes a device can be in.
const (
	ModeDashboard = "dashboard"
	ModeImage     = "image"
)

// Device is one registered e-ink client. RefreshVersion is bumped whenever
// the content a device should show changes; the client compares it against
// its own copy while polling and refreshes on mismatch. PollSeconds is the
// server-driven polling interval.
type Device struct {
	Uuid           uuid.UUID
	Name           string
	Mode           string
	ImageIndex     int
	RefreshVersion int
	PollSeconds    int
	RegisteredAt   time.Time
	LastSeenAt     time.Time
}

type DeviceRepository struct {
	Db *sql.DB
}

func (r *DeviceRepository) Transact(fn func(tx *sql.Tx) error) error {
	return transact(r.Db, fn)
}

// Register inserts a device or refreshes its last-seen time if the uuid is
// already known.
func (r *DeviceRepository) Register(tx *sql.Tx, d *Device) error {
	if d.Uuid == uuid.Nil {
		d.Uuid = uuid.New()
	}
	if d.Mode == "" {
		d.Mode = ModeDashboard
	}
	if d.PollSeconds <= 0 {
		d.PollSeconds = 30
	}

	_, err := tx.Exec(`
    INSERT INTO device (uuid, name, mode, poll_seconds)
    VALUES (?, ?, ?, ?)
    ON CONFLICT (uuid) DO UPDATE SET last_seen_at = CURRENT_TIMESTAMP`,
		d.Uuid.String(), d.Name, d.Mode, d.PollSeconds)
	if err != nil {
		return fmt.Errorf("Couldn't register device:\n%w", err)
	}
	return nil
}

// Get returns the device with the given uuid, or (nil, nil) when absent.
func (r *DeviceRepository) Get(u uuid.UUID) (*Device, error) {
	row := r.Db.QueryRow(`
    SELECT uuid, name, mode, image_index, refresh_version, poll_seconds,
           registered_at, last_seen_at
    FROM device
    WHERE uuid = ?`, u.String())

	var d Device
	var uuidString string
	if err := row.Scan(&uuidString, &d.Name, &d.Mode, &d.ImageIndex,
		&d.RefreshVersion, &d.PollSeconds, &d.RegisteredAt, &d.LastSeenAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Failed to read device:\n%w", err)
	}
	d.Uuid = uuid.MustParse(uuidString)
	return &d, nil
}

// Touch records that a device polled, and advances its image rotation index
// when asked.
func (r *DeviceRepository) Touch(tx *sql.Tx, u uuid.UUID) error {
	_, err := tx.Exec(`
    UPDATE device SET last_seen_at = CURRENT_TIMESTAMP WHERE uuid = ?`, u.String())
	if err != nil {
		return fmt.Errorf("Couldn't touch device:\n%w", err)
	}
	return nil
}

// SetMode switches a device between dashboard and image display and bumps
// the refresh version so the client redraws on its next poll.
func (r *DeviceRepository) SetMode(tx *sql.Tx, u uuid.UUID, mode string) error {
	if mode != ModeDashboard && mode != ModeImage {
		mode = ModeDashboard
	}
	_, err := tx.Exec(`
    UPDATE device
    SET mode = ?, refresh_version = refresh_version + 1
    WHERE uuid = ?`, mode, u.String())
	if err != nil {
		return fmt.Errorf("Couldn't set device mode:\n%w", err)
	}
	return nil
}

// AdvanceImage moves a device to the next image in rotation.
func (r *DeviceRepository) AdvanceImage(tx *sql.Tx, u uuid.UUID) error {
	_, err := tx.Exec(`
    UPDATE device
    SET image_index = image_index + 1, refresh_version = refresh_version + 1
    WHERE uuid = ?`, u.String())
	if err != nil {
		return fmt.Errorf("Couldn't advance device image:\n%w", err)
	}
	return nil
}

// BumpAll invalidates every device's displayed content, used after uploads
// and deletions change the rotation.
func (r *DeviceRepository) BumpAll(tx *sql.Tx) error {
	if _, err := tx.Exec(`UPDATE device SET refresh_version = refresh_version + 1`); err != nil {
		return fmt.Errorf("Couldn't bump refresh versions:\n%w", err)
	}
	return nil
}
