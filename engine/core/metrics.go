package core

const AVG_COUNT uint8 = 30

// FrameCounters are reset at the start of every frame.
type FrameCounters struct {
	Draws          int
	Dispatches     int
	StateCommits   int
	SamplerBinds   int
	BufferBinds    int
	VAOCacheHits   int
	VAOCacheMisses int
	PipelineHits   int
	PipelineMisses int
}

func (c *FrameCounters) Add(o FrameCounters) {
	c.Draws += o.Draws
	c.Dispatches += o.Dispatches
	c.StateCommits += o.StateCommits
	c.SamplerBinds += o.SamplerBinds
	c.BufferBinds += o.BufferBinds
	c.VAOCacheHits += o.VAOCacheHits
	c.VAOCacheMisses += o.VAOCacheMisses
	c.PipelineHits += o.PipelineHits
	c.PipelineMisses += o.PipelineMisses
}

type Metrics struct {
	FrameAVGCounter    uint8
	MStimes            [AVG_COUNT]float64
	MSavg              float64
	Frames             int32
	AccumulatedFrameMS float64
	FPS                float64

	Frame FrameCounters
	Total FrameCounters
}

func NewMetrics() *Metrics {
	return &Metrics{
		MStimes: [AVG_COUNT]float64{0},
	}
}

// BeginFrame folds the previous frame counters into the totals.
func (m *Metrics) BeginFrame() {
	m.Total.Add(m.Frame)
	m.Frame = FrameCounters{}
}

// Update records the elapsed frame time in seconds. It reports true once a
// second, when FPS has been recomputed.
func (m *Metrics) Update(frameElapsedTime float64) bool {
	// Calculate frame ms average
	frameMS := frameElapsedTime * 1000.0
	m.MStimes[m.FrameAVGCounter] = frameMS
	if m.FrameAVGCounter == AVG_COUNT-1 {
		m.MSavg = 0
		for i := uint8(0); i < AVG_COUNT; i++ {
			m.MSavg += m.MStimes[i]
		}

		m.MSavg /= float64(AVG_COUNT)
	}
	m.FrameAVGCounter++
	m.FrameAVGCounter %= AVG_COUNT

	// Count all Frames.
	m.Frames++

	// Calculate Frames per second.
	m.AccumulatedFrameMS += frameMS
	if m.AccumulatedFrameMS > 1000 {
		m.FPS = float64(m.Frames)
		m.AccumulatedFrameMS -= 1000
		m.Frames = 0
		return true
	}
	return false
}

func (m *Metrics) FrameTime() float64 {
	return m.MSavg
}
