// Package pa plays cues on the default PortAudio output device.
package pa

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/petems/autoclicker/internal/cue"
	"github.com/rs/zerolog"
)

const framesPerBuffer = 512

type portAudioPlayer struct {
	stream *portaudio.Stream
	buffer []float32
	log    zerolog.Logger

	queue chan []float32
	done  chan struct{}
}

// New opens the default output device. Tones are played by a worker
// goroutine; a cue requested while another is playing is dropped.
func New(log zerolog.Logger) (cue.Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}

	device, err := portaudio.DefaultOutputDevice()
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to get default output device: %w", err)
	}

	buffer := make([]float32, framesPerBuffer)
	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Output: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: 1,
			Latency:  device.DefaultLowOutputLatency,
		},
		SampleRate:      cue.SampleRate,
		FramesPerBuffer: len(buffer),
	}, buffer)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open audio stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start audio stream: %w", err)
	}

	p := &portAudioPlayer{
		stream: stream,
		buffer: buffer,
		log:    log,
		queue:  make(chan []float32, 1),
		done:   make(chan struct{}),
	}
	go p.run()

	return p, nil
}

func (p *portAudioPlayer) SetClicking() {
	p.enqueue(cue.StartTone())
}

func (p *portAudioPlayer) SetIdle() {
	p.enqueue(cue.StopTone())
}

func (p *portAudioPlayer) enqueue(samples []float32) {
	select {
	case p.queue <- samples:
	default:
		// Drop if a cue is already pending
	}
}

func (p *portAudioPlayer) run() {
	defer close(p.done)
	for samples := range p.queue {
		for _, chunk := range cue.Frames(samples, len(p.buffer)) {
			copy(p.buffer, chunk)
			if err := p.stream.Write(); err != nil {
				p.log.Warn().Err(err).Msg("Cue playback failed")
				break
			}
		}
	}
}

func (p *portAudioPlayer) Close() error {
	close(p.queue)
	<-p.done

	if err := p.stream.Stop(); err != nil {
		p.stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to stop audio stream: %w", err)
	}
	p.stream.Close()
	return portaudio.Terminate()
}
