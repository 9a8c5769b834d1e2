package engine

import (
	"testing"
	"time"
)

func TestTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	got := mock.Advance(1 * time.Hour)
	expected := newTime.Add(1 * time.Hour)
	if !got.Equal(expected) || !mock.Now().Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, mock.Now())
	}
}

func TestMockTimeProviderStep(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	sched := NewScheduler(start)

	ticks := 0
	sched.Every(100*time.Millisecond, func(time.Time) { ticks++ })

	mock.Step(sched, time.Second, 16*time.Millisecond)

	if ticks != 10 {
		t.Errorf("Expected 10 ticks over 1s, got %d", ticks)
	}
	if !sched.Now().Equal(start.Add(time.Second)) {
		t.Errorf("Expected scheduler at %v, got %v", start.Add(time.Second), sched.Now())
	}
}
