package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/config"
	"github.com/lixenwraith/voxel-fighter/event"
	"github.com/lixenwraith/voxel-fighter/parameter"
	"github.com/lixenwraith/voxel-fighter/status"
)

// Sink receives finished streamers
type Sink interface {
	Play(s beep.Streamer)
}

// speakerSink mixes into the system speaker; speaker.Init may only run once per process
type speakerSink struct {
	mixer *beep.Mixer
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

func newSpeakerSink() (*speakerSink, error) {
	sink := &speakerSink{mixer: &beep.Mixer{}}
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(parameter.AudioBufferDuration))
	})
	if speakerErr != nil {
		return nil, speakerErr
	}
	speaker.Play(sink.mixer)
	return sink, nil
}

func (s *speakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Service plays effects for collision and explosion events
// With no sink it only counts, so the simulation never depends on an audio device
type Service struct {
	sink   Sink
	volume float64
	log    *zap.Logger
	seed   int64

	statPlayed *atomic.Int64
	statMuted  *atomic.Int64
	statDevice *status.Label
}

// NewService opens the speaker when cfg enables audio
// A device failure is logged and degrades to a silent service rather than failing startup
func NewService(cfg config.AudioConfig, reg *status.Registry, log *zap.Logger) *Service {
	s := newService(nil, cfg.Volume, reg, log)
	if !cfg.Enabled {
		s.statDevice.Set("off")
		return s
	}
	sink, err := newSpeakerSink()
	if err != nil {
		s.log.Warn("audio device unavailable, running silent", zap.Error(err))
		s.statDevice.Set("silent")
		return s
	}
	s.sink = sink
	s.statDevice.Set("speaker")
	return s
}

// NewServiceWithSink plays into sink; used for tests and offline rendering
func NewServiceWithSink(sink Sink, volume float64, reg *status.Registry, log *zap.Logger) *Service {
	s := newService(sink, volume, reg, log)
	s.statDevice.Set("sink")
	return s
}

func newService(sink Sink, volume float64, reg *status.Registry, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		sink:       sink,
		volume:     volume,
		log:        log.Named("audio"),
		statPlayed: reg.Counters.Get("audio.played"),
		statMuted:  reg.Counters.Get("audio.muted"),
		statDevice: reg.Labels.Get("audio.device"),
	}
}

// Enabled reports whether effects reach a sink
func (s *Service) Enabled() bool {
	return s.sink != nil
}

func (s *Service) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCollision,
		event.EventExplosion,
	}
}

func (s *Service) HandleEvent(ev event.GameEvent) {
	var st beep.Streamer
	switch ev.Type {
	case event.EventCollision:
		p, ok := ev.Payload.(*event.CollisionPayload)
		if !ok {
			return
		}
		strength := float64(p.Response.Len())
		if strength < parameter.ImpactThreshold {
			return
		}
		st = CreateImpactSound(strength, s.volume, s.nextSeed())
	case event.EventExplosion:
		p, ok := ev.Payload.(*event.ExplosionPayload)
		if !ok {
			return
		}
		st = CreateExplosionSound(p.Radius, s.volume, s.nextSeed())
	default:
		return
	}

	if s.sink == nil {
		s.statMuted.Add(1)
		return
	}
	s.sink.Play(st)
	s.statPlayed.Add(1)
}

func (s *Service) nextSeed() int64 {
	s.seed++
	return s.seed
}
