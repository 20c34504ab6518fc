package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/BuKarData/inkframe/internal/render"
)

func openTestDb(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("couldn't open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestImageRoundTrip(t *testing.T) {
	r := &ImageRepository{Db: openTestDb(t)}

	opts := render.DefaultOptions()
	opts.Rotation = 90
	img := &Image{Name: "holiday.jpg", Data: []byte{1, 2, 3}, Options: opts}

	if err := r.Transact(func(tx *sql.Tx) error { return r.Create(tx, img) }); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := r.Get(img.Uuid)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("image not found after create")
	}
	if got.Name != "holiday.jpg" || len(got.Data) != 3 {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Options.Rotation != 90 {
		t.Errorf("stored options rotation is %v, want 90", got.Options.Rotation)
	}
}

func TestImageGetMissingIsNilNil(t *testing.T) {
	r := &ImageRepository{Db: openTestDb(t)}

	got, err := r.Get(uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("missing image returned a value")
	}
}

func TestImageIndexWraps(t *testing.T) {
	r := &ImageRepository{Db: openTestDb(t)}

	for i, name := range []string{"a", "b", "c"} {
		img := &Image{Name: name, Data: []byte{0}, Position: i}
		if err := r.Transact(func(tx *sql.Tx) error { return r.Create(tx, img) }); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	got, err := r.GetByIndex(4)
	if err != nil {
		t.Fatalf("get by index failed: %v", err)
	}
	if got.Name != "b" {
		t.Errorf("index 4 of 3 images resolved to %q, want wrap to b", got.Name)
	}
}

func TestImageIndexEmpty(t *testing.T) {
	r := &ImageRepository{Db: openTestDb(t)}
	got, err := r.GetByIndex(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("empty repository returned an image")
	}
}

func TestDeviceRegisterAndMode(t *testing.T) {
	r := &DeviceRepository{Db: openTestDb(t)}

	d := &Device{Name: "kitchen frame"}
	if err := r.Transact(func(tx *sql.Tx) error { return r.Register(tx, d) }); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := r.Get(d.Uuid)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Mode != ModeDashboard || got.RefreshVersion != 0 {
		t.Errorf("fresh device state: %+v", got)
	}

	err = r.Transact(func(tx *sql.Tx) error { return r.SetMode(tx, d.Uuid, ModeImage) })
	if err != nil {
		t.Fatalf("set mode failed: %v", err)
	}

	got, _ = r.Get(d.Uuid)
	if got.Mode != ModeImage {
		t.Errorf("mode is %q after switch", got.Mode)
	}
	if got.RefreshVersion != 1 {
		t.Errorf("refresh version is %v after mode switch, want 1", got.RefreshVersion)
	}
}

func TestDeviceRegisterTwiceKeepsRow(t *testing.T) {
	r := &DeviceRepository{Db: openTestDb(t)}

	d := &Device{Name: "frame"}
	for range 2 {
		if err := r.Transact(func(tx *sql.Tx) error { return r.Register(tx, d) }); err != nil {
			t.Fatalf("register failed: %v", err)
		}
	}

	got, err := r.Get(d.Uuid)
	if err != nil || got == nil {
		t.Fatalf("device lost after re-register: %v", err)
	}
}
