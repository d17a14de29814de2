package capture

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// AudioRecorder shells out to a capture command (arecord, sox, ffmpeg)
// writing into a temp file. The output path is appended as the command's
// final argument. Start acquires the device, Stop returns the recorded
// bytes, and both Stop and Cancel release the process and the temp file no
// matter how the recording ended.
type AudioRecorder struct {
	command []string

	mu        sync.Mutex
	cmd       *exec.Cmd
	path      string
	recording bool
}

func NewAudioRecorder(command []string) *AudioRecorder {
	return &AudioRecorder{command: command}
}

func (r *AudioRecorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

func (r *AudioRecorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		return nil
	}
	if len(r.command) == 0 {
		return ErrUnavailable
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("remind-capture-%d.wav", os.Getpid()))
	cmd := exec.CommandContext(ctx, r.command[0], append(append([]string{}, r.command[1:]...), path)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	r.cmd = cmd
	r.path = path
	r.recording = true
	return nil
}

// Stop ends the recording and returns the captured bytes. The temp file is
// removed before returning.
func (r *AudioRecorder) Stop() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return nil, ErrNotRecording
	}

	r.release()
	data, err := os.ReadFile(r.path)
	_ = os.Remove(r.path)
	r.reset()
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty recording", ErrUnavailable)
	}
	return data, nil
}

// Cancel discards the recording without producing a payload.
func (r *AudioRecorder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}
	r.release()
	_ = os.Remove(r.path)
	r.reset()
}

func (r *AudioRecorder) release() {
	if r.cmd == nil || r.cmd.Process == nil {
		return
	}
	_ = r.cmd.Process.Signal(os.Interrupt)
	_ = r.cmd.Wait()
}

func (r *AudioRecorder) reset() {
	r.cmd = nil
	r.path = ""
	r.recording = false
}
