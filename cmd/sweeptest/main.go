// cmd/sweeptest programs one FMCW chirp on the radar board and fires a
// few test triggers. Bring-up order matters: reset, unlock readback,
// program the reference path and divider, stage the ramp, then latch
// with FCAL_EN. See the lmx2492 package for the lifecycle rules.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"radarcode-go/drivers/lmx2492"
	"radarcode-go/host/bridge"
	"radarcode-go/x/mathx"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "serial device for the radar board")
	baud   = flag.Int("baud", 115200, "baud rate (ignored by USB CDC)")

	refHz = flag.Float64("ref", 40e6, "OSCin reference frequency in Hz")
	mult  = flag.Int("mult", 1, "reference multiplier (1..31)")
	divR  = flag.Int("r", 4, "PLL_R divider (1..255)")

	pllN = flag.Int("n", 240, "integer feedback divider")
	num  = flag.Int("num", 0, "fractional numerator")
	den  = flag.Int("den", 1, "fractional denominator")

	spanHz   = flag.Float64("span", 100e6, "sweep bandwidth in Hz")
	duration = flag.Float64("duration", 2e-3, "sweep time in seconds")
	threshHz = flag.Float64("threshold", 150e6, "VCO recalibration threshold in Hz")
	descend  = flag.Bool("descend", false, "sweep downward from the carrier")
	freeRun  = flag.Bool("free-run", false, "chain sweeps on their own timeout")

	power    = flag.Int("power", 31, "output power code, channel A (0..63)")
	triggers = flag.Int("triggers", 3, "number of one-shot ramp triggers to fire")
)

func main() {
	flag.Parse()

	port, err := bridge.OpenNative(&bridge.Config{
		Device:      *device,
		Baud:        *baud,
		ReadTimeout: 500,
	})
	if err != nil {
		fail("open %s: %v", *device, err)
	}
	br := bridge.New(port)
	defer br.Close()

	// Drop whatever the board printed while enumerating.
	if err := br.Flush(); err != nil {
		fail("flush: %v", err)
	}

	dev := lmx2492.New(br, lmx2492.Config{RefFrequencyHz: *refHz})

	must("reset", dev.Reset())
	must("unlock", dev.UnlockReadback())

	must("reference path", dev.SetReferencePath(lmx2492.ReferencePath{
		Mult: uint8(mathx.Clamp(*mult, 1, 31)),
		R:    uint8(mathx.Clamp(*divR, 1, 255)),
		RPre: 1,
	}))
	must("integer divider", dev.SetIntegerDivider(uint32(*pllN)))
	must("numerator", dev.SetNumerator(uint32(*num)))
	must("denominator", dev.SetDenominator(uint32(*den)))
	must("cal clock", dev.SetCalClockDivider(2))
	must("output power", dev.SetOutputPowerA(uint8(mathx.Clamp(*power, 0, 63))))

	fpd, err := dev.PFDFrequency()
	must("f_pd", err)
	fvco, err := dev.VCOFrequency()
	must("f_vco", err)
	fmt.Printf("f_pd = %.3f MHz, f_vco = %.3f MHz\n", fpd/1e6, fvco/1e6)

	must("configure ramp", dev.ConfigureRamp(lmx2492.RampProgram{
		SpanHz:        *spanHz,
		Duration:      *duration,
		RecalThreshHz: *threshHz,
		Descending:    *descend,
		FreeRun:       *freeRun,
	}))
	must("ramp enable", dev.SetRampEnabled(true))

	// Latch the staged configuration and start VCO calibration.
	must("arm", dev.EnableCalibration())

	for i := 0; i < *triggers; i++ {
		must("trigger", br.Trigger())
		time.Sleep(50 * time.Millisecond)
	}

	st, err := dev.ReadStatus()
	must("status", err)
	fmt.Printf("locked=%v lock=0x%04X vco=0x%04X cal=0x%04X state=%s\n",
		st.Locked, st.LockRaw, st.VCORaw, st.CalRaw, dev.State())
}

func must(what string, err error) {
	if err != nil {
		fail("%s: %v", what, err)
	}
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
