package clock

import (
	"testing"
	"time"
)

func TestNewSchedulerInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / DefaultTickRate},
		{-5, time.Second / DefaultTickRate},
	}

	for _, tc := range tests {
		s := NewScheduler(tc.rate)
		if s.Interval() != tc.expected {
			t.Errorf("NewScheduler(%d).Interval() = %v, expected %v", tc.rate, s.Interval(), tc.expected)
		}
	}
}

func TestHaltedSchedulerHasNilChannel(t *testing.T) {
	s := NewScheduler(60)
	if s.Running() {
		t.Error("new scheduler should be halted")
	}
	if s.C() != nil {
		t.Error("halted scheduler should expose a nil channel")
	}

	// Halt on a halted scheduler is a no-op
	s.Halt()
	if s.C() != nil {
		t.Error("channel should stay nil")
	}
}

func TestResumeDeliversTicks(t *testing.T) {
	s := NewScheduler(200)
	s.Resume()
	defer s.Halt()

	if !s.Running() {
		t.Fatal("scheduler should be running after Resume")
	}

	for i := 0; i < 3; i++ {
		select {
		case <-s.C():
		case <-time.After(time.Second):
			t.Fatalf("tick %d not delivered", i)
		}
	}
}

func TestHaltStopsTicks(t *testing.T) {
	s := NewScheduler(200)
	s.Resume()
	s.Halt()

	if s.Running() {
		t.Error("scheduler should be halted")
	}

	select {
	case <-s.C():
		t.Error("halted scheduler delivered a tick")
	case <-time.After(30 * time.Millisecond):
	}

	s.Resume()
	defer s.Halt()
	select {
	case <-s.C():
	case <-time.After(time.Second):
		t.Error("resumed scheduler did not tick")
	}
}
