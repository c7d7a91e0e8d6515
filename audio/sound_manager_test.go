package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayEliminate()
	sm.PlayFinish()
	sm.Cleanup()

	if sm.Played(SoundEliminate) != 0 || sm.Played(SoundFinish) != 0 {
		t.Error("Expected nothing queued before initialization")
	}
	if err := sm.Play(SoundEliminate); err != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the device
func TestSoundManagerDisabled(t *testing.T) {
	sm := NewSoundManager(NewAudioConfig(false, 1))
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled initialization should succeed, got %v", err)
	}
	sm.PlayEliminate()
	if sm.Played(SoundEliminate) != 0 {
		t.Error("Expected disabled manager to stay silent")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayEliminate()
	sm.PlayFinish()
	if sm.Played(SoundEliminate) != 1 || sm.Played(SoundFinish) != 1 {
		t.Errorf("Expected one of each cue queued, got %d and %d", sm.Played(SoundEliminate), sm.Played(SoundFinish))
	}
}

func TestNewAudioConfigClampsVolume(t *testing.T) {
	if v := NewAudioConfig(true, 3).MasterVolume; v != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", v)
	}
	if v := NewAudioConfig(true, -1).MasterVolume; v != 0 {
		t.Errorf("Expected volume clamped to 0, got %f", v)
	}
}
