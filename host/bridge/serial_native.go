package bridge

import (
	"time"

	"github.com/tarm/serial"
)

// nativePort wraps a tarm serial port behind the Port interface.
type nativePort struct {
	p *serial.Port
}

var _ Port = (*nativePort)(nil)

// OpenNative opens the configured serial device.
func OpenNative(cfg *Config) (Port, error) {
	sc := &serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	}
	p, err := serial.OpenPort(sc)
	if err != nil {
		return nil, err
	}
	return &nativePort{p: p}, nil
}

func (n *nativePort) Read(b []byte) (int, error)  { return n.p.Read(b) }
func (n *nativePort) Write(b []byte) (int, error) { return n.p.Write(b) }
func (n *nativePort) Close() error                { return n.p.Close() }
func (n *nativePort) Flush() error                { return n.p.Flush() }
