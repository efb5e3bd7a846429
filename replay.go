package clearing

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// replayBuffer is the capacity of the hand-off channel between the
// decoding producer and the applying consumer. Any positive value keeps
// the ordering contract; the buffer only lets decoding run ahead of the
// engine.
const replayBuffer = 256

// Replay decodes transaction records from r and applies them, in input
// order, to a fresh engine.
//
// Decoding runs in its own goroutine so that I/O and parsing overlap
// with the engine's work; records are handed over on an ordered channel
// with a single producer and a single consumer, and the engine applies
// them strictly one at a time. Malformed rows are dropped before they
// reach the engine and are not reported. The returned error is non-nil
// only when the stream itself failed mid-read; the engine still holds
// everything applied up to that point.
func Replay(r io.Reader) (*Engine, error) {
	records := make(chan Transaction, replayBuffer)

	var streamErr error
	go func() {
		defer close(records)
		d := NewDecoder(r)
		for {
			t, err := d.Next()
			switch {
			case err == nil:
				records <- t
			case errors.Is(err, io.EOF):
				return
			case errors.Is(err, ErrMalformedRow):
				// Dropped: one bad row never stops the rest of the stream.
			default:
				streamErr = err
				return
			}
		}
	}()

	engine := NewEngine()
	for t := range records {
		engine.Apply(t)
	}
	// The channel is closed, so the producer is done and streamErr is
	// safe to read.
	return engine, streamErr
}

// ReplayFile replays the transaction file at path.
func ReplayFile(path string) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open transaction file %q: %w", path, err)
	}
	defer f.Close()

	engine, err := Replay(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read transaction file %q: %w", path, err)
	}
	return engine, nil
}
