package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BuKarData/inkframe/internal/render"
)

// Image is one uploaded original plus the transform options it should be
// rendered with. The original bytes are kept verbatim; rendering happens on
// demand per request.
type Image struct {
	Uuid      uuid.UUID
	Name      string
	Data      []byte
	Options   render.Options
	Position  int
	CreatedAt time.Time
}

type ImageRepository struct {
	Db *sql.DB
}

func (r *ImageRepository) Transact(fn func(tx *sql.Tx) error) error {
	return transact(r.Db, fn)
}

func (r *ImageRepository) Create(tx *sql.Tx, img *Image) error {
	if img.Uuid == uuid.Nil {
		img.Uuid = uuid.New()
	}
	options, err := json.Marshal(img.Options)
	if err != nil {
		return fmt.Errorf("Couldn't serialise options:\n%w", err)
	}

	_, err = tx.Exec(`
    INSERT INTO image (uuid, name, data, options, position)
    VALUES (?, ?, ?, ?, ?)`,
		img.Uuid.String(), img.Name, img.Data, string(options), img.Position)
	if err != nil {
		return fmt.Errorf("Couldn't insert image:\n%w", err)
	}
	return nil
}

// Get returns the image with the given uuid, or (nil, nil) when absent.
func (r *ImageRepository) Get(u uuid.UUID) (*Image, error) {
	row := r.Db.QueryRow(`
    SELECT uuid, name, data, options, position, created_at
    FROM image
    WHERE uuid = ?`, u.String())

	img, err := scanImage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Failed to read image:\n%w", err)
	}
	return img, nil
}

// GetByIndex returns the n-th image in display order, wrapping the index so
// the device's rotation never runs off the end. Returns (nil, nil) when no
// images exist.
func (r *ImageRepository) GetByIndex(index int) (*Image, error) {
	count, err := r.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	index %= count
	if index < 0 {
		index += count
	}

	row := r.Db.QueryRow(`
    SELECT uuid, name, data, options, position, created_at
    FROM image
    ORDER BY position, created_at
    LIMIT 1 OFFSET ?`, index)

	img, err := scanImage(row)
	if err != nil {
		return nil, fmt.Errorf("Failed to read image at index %v:\n%w", index, err)
	}
	return img, nil
}

// List returns every image in display order, without the BLOB payloads.
func (r *ImageRepository) List() ([]Image, error) {
	rows, err := r.Db.Query(`
    SELECT uuid, name, options, position, created_at
    FROM image
    ORDER BY position, created_at`)
	if err != nil {
		return nil, fmt.Errorf("Query execution failed:\n%w", err)
	}
	defer rows.Close()

	images := []Image{}
	for rows.Next() {
		var img Image
		var uuidString, options string
		if err := rows.Scan(&uuidString, &img.Name, &options, &img.Position, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("Row scanning failed:\n%w", err)
		}
		img.Uuid = uuid.MustParse(uuidString)
		if err := json.Unmarshal([]byte(options), &img.Options); err != nil {
			return nil, fmt.Errorf("Couldn't parse stored options:\n%w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Error iterating rows:\n%w", err)
	}
	return images, nil
}

func (r *ImageRepository) Count() (int, error) {
	var count int
	if err := r.Db.QueryRow(`SELECT COUNT(*) FROM image`).Scan(&count); err != nil {
		return 0, fmt.Errorf("Couldn't count images:\n%w", err)
	}
	return count, nil
}

func (r *ImageRepository) Delete(tx *sql.Tx, u uuid.UUID) error {
	if _, err := tx.Exec(`DELETE FROM image WHERE uuid = ?`, u.String()); err != nil {
		return fmt.Errorf("Couldn't delete image:\n%w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanImage(row rowScanner) (*Image, error) {
	var img Image
	var uuidString, options string
	if err := row.Scan(&uuidString, &img.Name, &img.Data, &options, &img.Position, &img.CreatedAt); err != nil {
		return nil, err
	}
	img.Uuid = uuid.MustParse(uuidString)
	if err := json.Unmarshal([]byte(options), &img.Options); err != nil {
		return nil, fmt.Errorf("Couldn't parse stored options:\n%w", err)
	}
	return &img, nil
}
