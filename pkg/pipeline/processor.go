package pipeline

import (
	stderrors "errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/svgtools/svgmin/pkg/errors"
	"github.com/svgtools/svgmin/pkg/observability"
	"github.com/svgtools/svgmin/pkg/plugin"
	"github.com/svgtools/svgmin/pkg/xmlstream"
)

// Processor coordinates a single-shot, fully synchronous transformation
// run. It exclusively owns its plugins for the run's lifetime; plugins
// are offered elements sequentially, so each one observes the mutations
// of the plugins registered before it.
//
// A Processor is reusable: each run re-initializes every plugin and
// replaces the run record.
type Processor struct {
	bufferSize int
	logger     *log.Logger
	plugins    []plugin.Plugin
	state      state
	run        *Run
}

// New creates a processor with the given stream buffer size in bytes.
// A nil logger falls back to log.Default().
func New(bufferSize int, logger *log.Logger) *Processor {
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{
		bufferSize: bufferSize,
		logger:     logger,
		state:      stateIdle,
	}
}

// Add appends a plugin to the end of the registration order.
func (p *Processor) Add(pl plugin.Plugin) {
	p.plugins = append(p.plugins, pl)
}

// Plugins returns the registered plugins in order.
func (p *Processor) Plugins() []plugin.Plugin {
	return p.plugins
}

// ProcessFile runs the pipeline once from inputPath to outputPath.
// The output file is written incrementally; on failure it may be left
// truncated and not well-formed.
func (p *Processor) ProcessFile(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "open %s", inputPath)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", outputPath)
	}

	runErr := p.execute(inputPath, in, out)
	if err := out.Close(); err != nil && runErr == nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", outputPath)
	}
	return runErr
}

// Process runs the pipeline once over the given streams.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	return p.execute("stream", r, w)
}

// execute drives the run lifecycle: initialize every plugin, stream
// events through the plugin chain, finalize, flush. The first error
// aborts the run.
func (p *Processor) execute(source string, r io.Reader, w io.Writer) error {
	run := &Run{ID: uuid.New(), Started: time.Now()}
	p.run = run
	observability.Process().OnRunStart(run.ID.String(), source)

	err := p.transform(run, r, w)
	if err != nil {
		p.setState(stateFailed)
		p.logger.Debug("run failed; output may be truncated",
			"run", run.ID, "source", source, "err", err)
	} else {
		p.setState(stateDone)
	}
	observability.Process().OnRunComplete(run.ID.String(), run.Events, run.ProcessingTime, err)
	if err == nil {
		p.emitPluginStats(run)
	}
	return err
}

func (p *Processor) transform(run *Run, r io.Reader, w io.Writer) error {
	p.setState(stateInitializing)
	for _, pl := range p.plugins {
		if err := pl.Init(); err != nil {
			return errors.Wrap(errors.ErrCodePlugin, err, "initialize plugin %s", pl.Name())
		}
	}

	p.setState(stateStreaming)
	reader := xmlstream.NewReader(r, p.bufferSize)
	writer := xmlstream.NewWriter(w, p.bufferSize)
	streamStart := time.Now()

	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return classifyReadError(err)
		}

		if ev.IsElement() {
			for _, pl := range p.plugins {
				if err := pl.ProcessElement(ev); err != nil {
					return errors.Wrap(errors.ErrCodePlugin, err, "plugin %s", pl.Name())
				}
			}
		}

		if err := writer.Write(ev); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write output")
		}
		run.Events++
	}

	p.setState(stateFinalizing)
	for _, pl := range p.plugins {
		if err := pl.Finalize(); err != nil {
			// The sink is still flushed so already-processed
			// events reach the output stream.
			_ = writer.Flush()
			return errors.Wrap(errors.ErrCodePlugin, err, "finalize plugin %s", pl.Name())
		}
	}

	if err := writer.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "flush output")
	}

	run.ProcessingTime = time.Since(streamStart)
	if run.Events == 0 {
		return errors.New(errors.ErrCodeEmptyDocument, "no SVG content was processed")
	}
	return nil
}

// Stats returns the reporting view of the most recent run. The zero
// value is returned if the processor has not run yet.
func (p *Processor) Stats() Stats {
	if p.run == nil {
		return Stats{}
	}
	s := Stats{
		RunID:          p.run.ID.String(),
		Events:         p.run.Events,
		ProcessingTime: p.run.ProcessingTime,
		TotalTime:      time.Since(p.run.Started),
	}
	for _, pl := range p.plugins {
		s.Plugins = append(s.Plugins, UnitStats{Name: pl.Name(), Stats: pl.Stats()})
	}
	return s
}

func (p *Processor) setState(s state) {
	p.state = s
	p.logger.Debug("pipeline state", "state", s)
}

func (p *Processor) emitPluginStats(run *Run) {
	for _, pl := range p.plugins {
		for _, st := range pl.Stats() {
			observability.Process().OnPluginStat(run.ID.String(), pl.Name(), st.Label, st.Value)
		}
	}
}

// classifyReadError maps a source failure onto the error taxonomy:
// malformed markup is a parse error, anything else is stream I/O.
func classifyReadError(err error) error {
	var se *xmlstream.SyntaxError
	if stderrors.As(err, &se) {
		return errors.Wrap(errors.ErrCodeParse, err, "malformed SVG at byte %d", se.Offset)
	}
	return errors.Wrap(errors.ErrCodeIO, err, "read input")
}
