package viewer

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundStartup SoundKind = iota
	SoundCross
	SoundWarp
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.58

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect. Synthesis and
// playback both run off the caller's goroutine.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	go func() {
		samples := generateSound(kind)
		if len(samples) == 0 {
			return
		}
		player := globalAudio.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo
// channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	bits := math.Float32bits(float32(sample))
	binary.LittleEndian.PutUint32(buf[i*8:], bits)
	binary.LittleEndian.PutUint32(buf[i*8+4:], bits)
}

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundStartup:
		return genStartup()
	case SoundCross:
		return genCross()
	case SoundWarp:
		return genWarp()
	}
	return nil
}

// genStartup: two-note FM chime played on launch.
func genStartup() []byte {
	notes := []struct{ freq, onset float64 }{
		{523.25, 0.00}, // C5
		{783.99, 0.12}, // G5
	}
	dur := 0.38
	n := int(dur * SampleRate)
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.45, 0.1, 0.35)
			s := fm(t, note.freq, 2.0, 2.8*env) * env * 0.30
			s += math.Sin(2*math.Pi*note.freq*2*t) * env * 0.06
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCross: tiny tick when the observer crosses a chunk boundary.
// Quiet and very short so sprinting across many chunks doesn't get noisy.
func genCross() []byte {
	n := SampleRate * 55 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 920 - 260*p
		s := fm(t, freq, 1.0, 0.5) * env * 0.16
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWarp: descending sweep with a noise shimmer for the teleport jump.
func genWarp() []byte {
	n := int(0.42 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(97531)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.3, 0.35, 0.4)
		freq := 1100 * math.Pow(0.22, p)
		s := fm(t, freq, 1.5, 3.0*env) * env * 0.34
		lp = lp*0.82 + lcg(&seed)*0.18
		s += lp * env * 0.10
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
