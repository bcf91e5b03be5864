package dsp

// stageKind distinguishes a chain's two composition modes.
type stageKind int

const (
	stageSeries stageKind = iota
	stageMix
)

type stage struct {
	kind    stageKind
	node    FrameProcessor
	amount  float32
	mix     *DspChain
	scratch []float32
}

// DspChain composes FrameProcessors two ways: series stages run one
// after another over the same buffer (a classic effects chain), and
// mix stages render an independent sub-chain into scratch space and
// add amount*scratch into the running buffer (for parallel signal
// paths, like a pitch envelope added into an oscillator's frequency).
// A chain is itself a FrameProcessor, so chains nest.
type DspChain struct {
	sampleRate float64
	stages     []stage
}

// NewDspChain returns an empty chain at the given sample rate. Add the
// first node with And; an empty chain's Process is a no-op.
func NewDspChain(sampleRate float64) *DspChain {
	return &DspChain{sampleRate: sampleRate}
}

// And appends node as a series stage and returns the chain, so calls
// can be chained: chain.And(osc).And(filter).And(gain).
func (c *DspChain) And(node FrameProcessor) *DspChain {
	node.SetSampleRate(c.sampleRate)
	c.stages = append(c.stages, stage{kind: stageSeries, node: node})
	return c
}

// AndMix appends a parallel stage: other is rendered into its own
// buffer and amount*other is summed into the chain's running signal.
func (c *DspChain) AndMix(amount float32, other *DspChain) *DspChain {
	other.SetSampleRate(c.sampleRate)
	c.stages = append(c.stages, stage{kind: stageMix, amount: amount, mix: other})
	return c
}

// Process runs every stage in declaration order over buf.
func (c *DspChain) Process(buf []float32, sampleIndex uint64) {
	for i := range c.stages {
		st := &c.stages[i]
		switch st.kind {
		case stageSeries:
			st.node.Process(buf, sampleIndex)
		case stageMix:
			if cap(st.scratch) < len(buf) {
				st.scratch = make([]float32, len(buf))
			}
			st.scratch = st.scratch[:len(buf)]
			for j := range st.scratch {
				st.scratch[j] = 0
			}
			st.mix.Process(st.scratch, sampleIndex)
			for j, v := range st.scratch {
				buf[j] += st.amount * v
			}
		}
	}
}

// SetSampleRate propagates rate to every node and sub-chain.
func (c *DspChain) SetSampleRate(rate float64) {
	c.sampleRate = rate
	for i := range c.stages {
		st := &c.stages[i]
		if st.kind == stageSeries {
			st.node.SetSampleRate(rate)
		} else {
			st.mix.SetSampleRate(rate)
		}
	}
}

// Latency sums the latency of every series stage; mix stages run in
// parallel with the running signal and do not add to it here, matching
// the original core's treatment of envelope sub-chains as modulation,
// not signal path.
func (c *DspChain) Latency() int {
	total := 0
	for i := range c.stages {
		if c.stages[i].kind == stageSeries {
			total += c.stages[i].node.Latency()
		}
	}
	return total
}
