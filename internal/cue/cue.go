// Package cue plays a short tone when clicking starts or stops.
package cue

import (
	"math"
	"time"
)

// SampleRate is the rate the tones are rendered at.
const SampleRate = 44100

const (
	startFreq     = 880.0
	stopFreq      = 440.0
	toneLength    = 70 * time.Millisecond
	fadeLength    = 8 * time.Millisecond
	toneAmplitude = 0.25
)

// Player plays the start and stop tones. It satisfies app.StatusUpdater.
type Player interface {
	SetClicking()
	SetIdle()
	Close() error
}

type nopPlayer struct{}

// Nop returns a silent player.
func Nop() Player { return nopPlayer{} }

func (nopPlayer) SetClicking() {}
func (nopPlayer) SetIdle() {}
func (nopPlayer) Close() error { return nil }

// StartTone returns the tone played when clicking starts.
func StartTone() []float32 { return tone(startFreq, toneLength, SampleRate) }

// StopTone returns the lower tone played when clicking stops.
func StopTone() []float32 { return tone(stopFreq, toneLength, SampleRate) }

// Frames splits samples into buffer-sized chunks, zero-padding the last one.
func Frames(samples []float32, size int) [][]float32 {
	var out [][]float32
	for start := 0; start < len(samples); start += size {
		chunk := make([]float32, size)
		copy(chunk, samples[start:])
		out = append(out, chunk)
	}
	return out
}

// tone renders a mono sine wave with a linear fade in and out so the start
// and end do not click.
func tone(freq float64, length time.Duration, rate int) []float32 {
	n := int(length.Seconds() * float64(rate))
	fade := int(fadeLength.Seconds() * float64(rate))
	if fade*2 > n {
		fade = n / 2
	}

	out := make([]float32, n)
	for i := range out {
		env := 1.0
		switch {
		case i < fade:
			env = float64(i) / float64(fade)
		case i >= n-fade:
			env = float64(n-1-i) / float64(fade)
		}
		out[i] = float32(toneAmplitude * env * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return out
}
