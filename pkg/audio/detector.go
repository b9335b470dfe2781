package audio

import (
	"fmt"
	"os/exec"
	"strconv"
)

// Capture backend names
const (
	BackendAuto     = "auto"
	BackendPulse    = "parec"
	BackendPipeWire = "pw-record"
	BackendALSA     = "arecord"
	BackendSoX      = "rec"
)

// BackendConfig describes a CLI capture tool writing raw mono s16le to stdout
type BackendConfig struct {
	Name string
	Path string
	Args []string
}

// detectOrder is the auto-detection priority
var detectOrder = []string{BackendPulse, BackendPipeWire, BackendALSA, BackendSoX}

// DetectBackend resolves the configured backend, searching PATH in priority
// order when name is auto or empty
func DetectBackend(name, device string, rate int) (*BackendConfig, error) {
	if name != "" && name != BackendAuto {
		path, err := exec.LookPath(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s not on PATH", ErrNoCaptureBackend, name)
		}
		args, err := backendArgs(name, device, rate)
		if err != nil {
			return nil, err
		}
		return &BackendConfig{Name: name, Path: path, Args: args}, nil
	}

	for _, candidate := range detectOrder {
		path, err := exec.LookPath(candidate)
		if err != nil {
			continue
		}
		args, _ := backendArgs(candidate, device, rate)
		return &BackendConfig{Name: candidate, Path: path, Args: args}, nil
	}
	return nil, ErrNoCaptureBackend
}

// backendArgs builds the command line for raw signed 16-bit mono capture
func backendArgs(name, device string, rate int) ([]string, error) {
	r := strconv.Itoa(rate)
	switch name {
	case BackendPulse:
		args := []string{
			"--raw",
			"--format=s16le",
			"--rate=" + r,
			"--channels=1",
			"--latency-msec=20",
		}
		if device != "" {
			args = append(args, "--device="+device)
		}
		return args, nil
	case BackendPipeWire:
		args := []string{
			"--format=s16",
			"--rate=" + r,
			"--channels=1",
		}
		if device != "" {
			args = append(args, "--target="+device)
		}
		return append(args, "-"), nil
	case BackendALSA:
		args := []string{
			"-t", "raw",
			"-f", "S16_LE",
			"-r", r,
			"-c", "1",
			"-q",
		}
		if device != "" {
			args = append(args, "-D", device)
		}
		return args, nil
	case BackendSoX:
		// SoX picks its device from AUDIODEV
		return []string{
			"-q",
			"-t", "raw",
			"-e", "signed",
			"-b", "16",
			"-c", "1",
			"-r", r,
			"-",
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", ErrNoCaptureBackend, name)
}
