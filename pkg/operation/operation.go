package operation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/randselect/pkg/plan"
	"github.com/walteh/randselect/pkg/status"
)

// DryRunHint is printed after the preview when nothing was written.
const DryRunHint = "Re-run randselect with --go to write these changes to the filesystem."

var (
	// ErrIO is wrapped by every filesystem failure during execution.
	ErrIO = errors.New("i/o error")
	// ErrPartialFailure means at least one action failed.
	ErrPartialFailure = errors.New("some actions failed")
)

// 💥 IOError is a filesystem failure attributed to one stage and path
type IOError struct {
	Stage status.Stage
	Path  string
	Err   error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying error to errors.Is.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// 🖨️ Renderer presents a plan. It receives structured lines and decides how
// they look.
type Renderer interface {
	Preview(ctx context.Context, lines []plan.Line)
	Hint(ctx context.Context, msg string)
}

// 🔧 Options contains the collaborators of an Executor
type Options struct {
	// FS performs the filesystem mutations, OSFileSystem when nil
	FS FileSystem
	// Renderer receives the preview
	Renderer Renderer
}

// 🎮 Executor renders a plan and, when committed, carries it out
type Executor struct {
	fs       FileSystem
	renderer Renderer
}

// 🏭 NewExecutor creates a new executor with the given options
func NewExecutor(opts Options) (*Executor, error) {
	if opts.Renderer == nil {
		return nil, errors.Errorf("renderer is required")
	}
	fs := opts.FS
	if fs == nil {
		fs = OSFileSystem{}
	}
	return &Executor{
		fs:       fs,
		renderer: opts.Renderer,
	}, nil
}

// 🏃 Execute always renders the preview. Without commit it stops there.
// With commit it creates the destination and applies every action in plan
// order, recording one outcome per action. A failed action does not stop the
// ones after it; the returned error wraps ErrPartialFailure if any failed.
func (e *Executor) Execute(ctx context.Context, p plan.Plan, commit bool) (*status.Report, error) {
	logger := zerolog.Ctx(ctx)
	report := status.NewReport(p, commit)

	e.renderer.Preview(ctx, p.Preview())

	if !commit {
		e.renderer.Hint(ctx, DryRunHint)
		logger.Debug().Int("actions", p.Len()).Msg("dry run, nothing written")
		return report, nil
	}

	logger.Debug().Int("actions", p.Len()).Str("destination", p.Destination).Msg("executing plan")

	if err := e.fs.MkdirAll(p.Destination); err != nil {
		ioErr := &IOError{Stage: status.StageCreateDir, Path: p.Destination, Err: err}
		for i := range report.Outcomes {
			report.Outcomes[i].State = status.StateFailed
			report.Outcomes[i].Stage = status.StageCreateDir
			report.Outcomes[i].Err = ioErr
		}
		logger.Error().Err(err).Str("destination", p.Destination).Msg("creating destination")
		return report, errors.Errorf("creating destination: %w", ioErr)
	}

	for i := range report.Outcomes {
		e.apply(ctx, p.Move, &report.Outcomes[i])
	}

	if failed := len(report.Failed()); failed > 0 {
		return report, errors.Errorf("%w: %d of %d", ErrPartialFailure, failed, len(report.Outcomes))
	}
	return report, nil
}

// 📄 apply runs one action: Planned -> Copied -> (Deleted | Kept), or Failed
func (e *Executor) apply(ctx context.Context, move bool, o *status.Outcome) {
	logger := zerolog.Ctx(ctx).With().
		Str("source", o.Action.Source.Path).
		Str("destination", o.Action.Destination).
		Logger()

	if err := e.fs.CopyFile(o.Action.Source.Path, o.Action.Destination); err != nil {
		o.State = status.StateFailed
		o.Stage = status.StageCopy
		o.Err = &IOError{Stage: status.StageCopy, Path: o.Action.Source.Path, Err: err}
		logger.Error().Err(err).Msg("copy failed")
		return
	}
	o.State = status.StateCopied
	logger.Debug().Msg("copied")

	if !move {
		return
	}

	if err := e.fs.Remove(o.Action.Source.Path); err != nil {
		o.State = status.StateKept
		o.Stage = status.StageDelete
		o.Err = &IOError{Stage: status.StageDelete, Path: o.Action.Source.Path, Err: err}
		logger.Error().Err(err).Msg("removing source failed, copy kept")
		return
	}
	o.State = status.StateDeleted
	logger.Debug().Msg("source removed")
}
