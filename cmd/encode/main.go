// Command encode turns a raw payload file into an OFDM baseband WAV
// file: synchronization preambles, a BCH-protected metadata header,
// and a BCH+LDPC-coded, interleaved, PSK-mapped, PAPR-reduced data
// section, bracketed by a second of silence on each side. Argument
// handling and validation follow original_source/encode.cc's main().
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"ofdmwave/internel/utils"
	"ofdmwave/pkg/callsign"
	"ofdmwave/pkg/ofdm"
	"ofdmwave/pkg/pcm"
	"ofdmwave/pkg/scrambler"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-config PATH] [-report PATH] OUTPUT RATE BITS CHANNELS INPUT [OFFSET_HZ] [CALLSIGN] [MODE]\n", os.Args[0])
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(argv []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional YAML calibration preset (frequency_offset_hz, call_sign, mode)")
	reportPath := fs.String("report", "", "optional path to write the PAPR report as text")
	fs.Usage = usage
	if err := fs.Parse(argv); err != nil {
		return err
	}
	args := fs.Args()

	if len(args) < 5 || len(args) > 8 {
		usage()
		return fmt.Errorf("encode: expected 5 to 8 positional arguments, got %d", len(args))
	}

	var preset *Preset
	if *configPath != "" {
		p, err := LoadPreset(*configPath)
		if err != nil {
			return err
		}
		preset = p
	}

	outputName := args[0]
	outputRate := atoiOrZero(args[1])
	outputBits := atoiOrZero(args[2])
	outputChan := atoiOrZero(args[3])
	inputName := args[4]

	freqOffHz := 0
	if outputChan == 1 {
		freqOffHz = 2000
	}
	if preset != nil && preset.FrequencyOffsetHz != 0 {
		freqOffHz = preset.FrequencyOffsetHz
	}
	if len(args) >= 6 {
		freqOffHz = atoiOrZero(args[5])
	}

	callSign, err := callsign.Encode("ANONYMOUS")
	if err != nil {
		return err
	}
	if preset != nil && preset.CallSign != "" {
		callSign, err = callsign.Encode(preset.CallSign)
		if err != nil {
			return fmt.Errorf("encode: preset call sign: %w", err)
		}
	}
	if len(args) >= 7 {
		callSign, err = callsign.Encode(args[6])
		if err != nil {
			return fmt.Errorf("encode: call sign: %w", err)
		}
	}
	if !callsign.Valid(callSign) {
		return fmt.Errorf("encode: unsupported call sign")
	}

	operMode := 2
	if preset != nil && preset.Mode != 0 {
		operMode = preset.Mode
	}
	if len(args) >= 8 {
		operMode = atoiOrZero(args[7])
	}
	mode, err := ofdm.ModeByNumber(operMode)
	if err != nil {
		return fmt.Errorf("encode: unsupported operation mode")
	}

	if err := validateSampleRate(outputRate); err != nil {
		return err
	}

	if err := validateFrequencyOffset(freqOffHz, outputChan, outputRate, mode.BandwidthHz); err != nil {
		return err
	}

	payload, err := readPayload(inputName)
	if err != nil {
		return err
	}
	scrambler.New().Apply(payload)

	sink, err := pcm.NewWAVSink(outputName, outputRate, outputChan, outputBits)
	if err != nil {
		return err
	}
	defer sink.Close()

	if err := sink.Silence(1); err != nil {
		return err
	}

	enc := ofdm.New(outputRate, mode, freqOffHz, sink)
	report, err := enc.Encode(payload, callSign)
	if err != nil {
		return err
	}

	if err := sink.Silence(1); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "real PAPR: %.2f .. %.2f dB\n", report.RealMinDB, report.RealMaxDB)
	if report.Stereo {
		fmt.Fprintf(os.Stderr, "imag PAPR: %.2f .. %.2f dB\n", report.ImagMinDB, report.ImagMaxDB)
	}

	if *reportPath != "" {
		if err := writeReport(*reportPath, report); err != nil {
			return err
		}
	}
	return nil
}

// writeReport dumps the PAPR report as one "key value" line per field,
// via internel/utils.WriteTxt in the same generic-slice style the
// teacher uses for its own calibration file dumps.
func writeReport(path string, report ofdm.Report) error {
	lines := []string{
		fmt.Sprintf("real_min_db %.4f", report.RealMinDB),
		fmt.Sprintf("real_max_db %.4f", report.RealMaxDB),
	}
	if report.Stereo {
		lines = append(lines,
			fmt.Sprintf("imag_min_db %.4f", report.ImagMinDB),
			fmt.Sprintf("imag_max_db %.4f", report.ImagMaxDB),
		)
	}
	return utils.WriteTxt(path, lines, func(s string) string { return s })
}

// validateSampleRate matches original_source/encode.cc's
// switch(output_rate){...default: "Unsupported sample rate."}.
func validateSampleRate(outputRate int) error {
	switch outputRate {
	case 8000, 16000, 44100, 48000:
		return nil
	default:
		return fmt.Errorf("encode: unsupported sample rate")
	}
}

func validateFrequencyOffset(freqOffHz, outputChan, outputRate, bandwidthHz int) error {
	if outputChan == 1 && freqOffHz < bandwidthHz/2 {
		return fmt.Errorf("encode: unsupported frequency offset")
	}
	if freqOffHz < bandwidthHz/2-outputRate/2 || freqOffHz > outputRate/2-bandwidthHz/2 {
		return fmt.Errorf("encode: unsupported frequency offset")
	}
	if freqOffHz%50 != 0 {
		return fmt.Errorf("encode: frequency offset must be divisible by 50")
	}
	return nil
}

// readPayload reads exactly ofdm.DataBytes from name, zero-padding a
// short file, matching original_source/encode.cc's byte-at-a-time
// ifstream::get() loop (which returns EOF, coerced to a zero byte,
// once the file runs out).
func readPayload(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("encode: open %s: %w", name, err)
	}
	defer f.Close()

	buf := make([]byte, ofdm.DataBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("encode: read %s: %w", name, err)
	}
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	return buf, nil
}

// atoiOrZero parses s as a whole decimal integer, returning 0 when s
// is not one; unlike C's atoi, a numeric prefix followed by other
// characters also yields 0.
func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
