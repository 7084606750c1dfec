package bridge

import "io"

// Port is the raw byte link to the radar board. Implementations:
// native serial (tarm), and scripted fakes for tests.
type Port interface {
	io.ReadWriteCloser

	// Flush discards buffered data that has not been transmitted or
	// read. Callers typically flush once before the first command to
	// drop stale board output.
	Flush() error
}

// Config holds serial link parameters.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate. USB CDC ignores it, but set something sane.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the parameters the radar board enumerates with.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500,
	}
}
