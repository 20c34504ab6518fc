package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestCacheHitWithinTTL(t *testing.T) {
	clock := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	c := NewCacheWithClock(15*time.Minute, func() time.Time { return clock })

	key := Key{Place: "52.230,21.010", Units: "metric"}
	c.Put(key, 21, "Clear")

	clock = clock.Add(14 * time.Minute)
	if r, ok := c.Get(key); !ok || r.Temp != 21 {
		t.Errorf("expected hit within TTL, got %v %v", r, ok)
	}
}

func TestCacheExpiry(t *testing.T) {
	clock := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	c := NewCacheWithClock(15*time.Minute, func() time.Time { return clock })

	key := Key{Place: "52.230,21.010", Units: "metric"}
	c.Put(key, 21, "Clear")

	clock = clock.Add(16 * time.Minute)
	if _, ok := c.Get(key); ok {
		t.Error("stale entry served past TTL")
	}
}

func TestCacheKeyIncludesUnits(t *testing.T) {
	c := NewCache(time.Hour)
	c.Put(Key{Place: "x", Units: "metric"}, 20, "Clear")
	if _, ok := c.Get(Key{Place: "x", Units: "imperial"}); ok {
		t.Error("metric entry served for imperial key")
	}
}

func TestExpireSweep(t *testing.T) {
	clock := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	c := NewCacheWithClock(10*time.Minute, func() time.Time { return clock })

	c.Put(Key{Place: "a", Units: "metric"}, 1, "Clear")
	clock = clock.Add(5 * time.Minute)
	c.Put(Key{Place: "b", Units: "metric"}, 2, "Clear")
	clock = clock.Add(7 * time.Minute)

	if removed := c.Expire(); removed != 1 {
		t.Errorf("expire removed %v entries, want 1", removed)
	}
	if _, ok := c.Get(Key{Place: "b", Units: "metric"}); !ok {
		t.Error("fresh entry swept")
	}
}

func TestClientFetchesAndCaches(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("current_weather") != "true" {
			t.Errorf("missing current_weather parameter")
		}
		w.Write([]byte(`{"current_weather":{"temperature":22.6,"weathercode":2}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, NewCache(time.Hour))

	got, err := client.Current(context.Background(), 52.23, 21.01, "metric")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if got.Temp != 23 {
		t.Errorf("temp is %v, want rounded 23", got.Temp)
	}
	if got.Condition != "Partly cloudy" {
		t.Errorf("condition is %q", got.Condition)
	}

	// Second call must come from the cache.
	if _, err := client.Current(context.Background(), 52.23, 21.01, "metric"); err != nil {
		t.Fatalf("cached fetch failed: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("endpoint called %v times, want 1", calls.Load())
	}
}

func TestClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, NewCache(time.Hour))
	if _, err := client.Current(context.Background(), 0, 0, "metric"); err == nil {
		t.Error("expected error on bad status")
	}
}

func TestConditionForCode(t *testing.T) {
	for _, tc := range []struct {
		code int
		want string
	}{
		{0, "Clear"},
		{2, "Partly cloudy"},
		{3, "Overcast"},
		{61, "Rain"},
		{95, "Thunderstorm"},
		{-1, "Cloudy"},
	} {
		if got := conditionForCode(tc.code); got != tc.want {
			t.Errorf("code %v mapped to %q, want %q", tc.code, got, tc.want)
		}
	}
}
