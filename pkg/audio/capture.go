package audio

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Capture is a running capture process
type Capture struct {
	Name   string
	PCM    io.ReadCloser // Raw mono s16le
	Stderr func() string
	Stop   func()
}

// Launcher starts a capture process
type Launcher interface {
	Launch(ctx context.Context) (*Capture, error)
}

// ExecLauncher runs a detected CLI capture tool
type ExecLauncher struct {
	Config Config
}

// Launch detects the backend and starts it with stdout on a pipe
func (l ExecLauncher) Launch(ctx context.Context) (*Capture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	backend, err := DetectBackend(l.Config.Backend, l.Config.Device, l.Config.SampleRate)
	if err != nil {
		return nil, err
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, errors.Wrap(err, "create capture pipe")
	}

	stderr := &lockedBuffer{}
	cmd := exec.Command(backend.Path, backend.Args...)
	cmd.Stdout = pw
	cmd.Stderr = stderr
	if backend.Name == BackendSoX && l.Config.Device != "" {
		cmd.Env = append(os.Environ(), "AUDIODEV="+l.Config.Device)
	}

	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		if errors.Is(err, fs.ErrPermission) {
			return nil, errors.Wrapf(ErrPermissionDenied, "start %s", backend.Name)
		}
		return nil, errors.Wrapf(err, "start %s", backend.Name)
	}
	// The child holds its own copy of the write end
	pw.Close()

	exited := make(chan struct{})
	go func() {
		cmd.Wait()
		close(exited)
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			if cmd.Process != nil {
				cmd.Process.Kill()
			}
			<-exited
			pr.Close()
		})
	}

	return &Capture{
		Name:   backend.Name,
		PCM:    pr,
		Stderr: stderr.String,
		Stop:   stop,
	}, nil
}

// classify maps a capture tool's stderr onto the acquisition failure kinds
func classify(stderr string) error {
	s := strings.ToLower(stderr)
	for _, marker := range []string{"permission denied", "access denied", "not permitted", "not authorized"} {
		if strings.Contains(s, marker) {
			return ErrPermissionDenied
		}
	}
	return ErrDeviceUnavailable
}

// lockedBuffer collects stderr written by the child process
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.TrimSpace(b.buf.String())
}
