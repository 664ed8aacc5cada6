// Package runner drives matrix-element generation: it iterates chiral
// orders cumulatively, isospin transfer ranks, sectors and states, invokes
// the pure operator evaluators, and writes per-order and cumulative
// operator files.
//
// Each matrix element is computed exactly once per order and the value is
// reused for both the per-order block and the cumulative block. The
// evaluators are pure, so sectors fan out across workers with no
// coordination beyond position-addressed writes into disjoint blocks.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/chiraleft/chime/internal/basis"
	"github.com/chiraleft/chime/internal/chiral"
	"github.com/chiraleft/chime/internal/config"
	"github.com/chiraleft/chime/internal/ho"
	"github.com/chiraleft/chime/internal/output"
)

// TokenGenerator produces run tokens for output filenames. Tests substitute
// a fixed generator to get byte-stable files.
type TokenGenerator func() string

// UUIDv7Token generates a time-ordered run token (first UUIDv7 group).
func UUIDv7Token() string {
	return uuid.Must(uuid.NewV7()).String()[:8]
}

// Result summarizes a completed generation run.
type Result struct {
	RunToken string
	Files    []string
	Elements int // independent matrix elements per order, summed over T0
}

// Runner executes one configured generation run.
type Runner struct {
	cfg    config.RunConfig
	op     chiral.Operator
	log    *slog.Logger
	tokens TokenGenerator
}

// New constructs a runner. A nil tokens falls back to UUIDv7Token; a nil
// log discards.
func New(cfg config.RunConfig, op chiral.Operator, log *slog.Logger, tokens TokenGenerator) *Runner {
	if tokens == nil {
		tokens = UUIDv7Token
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{cfg: cfg, op: op, log: log, tokens: tokens}
}

// component is one isospin transfer rank with its sectors and cumulative
// blocks.
type component struct {
	t0         int
	sectors    basis.RelativeSectorsLSJT
	cumulative []output.SectorBlock
}

// Run generates all operator files. It honors ctx between orders and
// between sector batches.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	stopOrder, err := chiral.ParseOrder(r.cfg.Order)
	if err != nil {
		return nil, err
	}

	b := ho.NewLength(r.cfg.Hw)
	space := basis.NewRelativeSpaceLSJT(r.cfg.Nmax, r.cfg.Jmax)

	t0max := r.cfg.Tmax
	if m := r.op.T0Max(); m < t0max {
		t0max = m
	}

	var components []*component
	elements := 0
	for t0 := r.cfg.Tmin; t0 <= t0max; t0++ {
		sectors := basis.NewRelativeSectorsLSJT(space, r.op.J0(), r.op.G0(), t0)
		comp := &component{t0: t0, sectors: sectors}
		for si := 0; si < sectors.Size(); si++ {
			sec := sectors.Sector(si)
			comp.cumulative = append(comp.cumulative,
				output.NewSectorBlock(sec.BraSubspace().Size(), sec.KetSubspace().Size()))
		}
		elements += basis.UpperTriangularEntries(sectors)
		components = append(components, comp)
	}

	token := r.tokens()
	r.log.Info("generating matrix elements",
		"operator", r.op.Name(), "order", r.cfg.Order,
		"subspaces", space.Size(), "elements", elements, "run", token)

	header := output.Header{
		Operator: r.op.Name(),
		J0:       r.op.J0(),
		G0:       r.op.G0(),
		Nmax:     r.cfg.Nmax,
		Jmax:     r.cfg.Jmax,
		Hw:       r.cfg.Hw,
		RunToken: token,
	}

	result := &Result{RunToken: token, Elements: elements}
	for _, on := range chiral.Orders() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		orderComps := make([]output.T0Component, 0, len(components))
		for _, comp := range components {
			blocks, err := r.evaluateOrder(ctx, on.Order, comp, b)
			if err != nil {
				return nil, err
			}
			orderComps = append(orderComps, output.T0Component{
				T0: comp.t0, Sectors: comp.sectors, Blocks: blocks,
			})
		}

		h := header
		h.Order = on.Name
		path, err := output.WriteRelativeOperatorFile(r.cfg.OutputDir, h, false, orderComps)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, path)
		r.log.Debug("order written", "order", on.Name, "file", path)

		if on.Order == stopOrder {
			break
		}
	}

	cumulativeComps := make([]output.T0Component, 0, len(components))
	for _, comp := range components {
		cumulativeComps = append(cumulativeComps, output.T0Component{
			T0: comp.t0, Sectors: comp.sectors, Blocks: comp.cumulative,
		})
	}
	h := header
	h.Order = r.cfg.Order
	path, err := output.WriteRelativeOperatorFile(r.cfg.OutputDir, h, true, cumulativeComps)
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, path)

	r.log.Info("run complete", "files", len(result.Files), "run", token)
	return result, nil
}

// evaluateOrder fills one order's blocks for one T0 component, adding each
// value into the cumulative blocks as it is computed.
func (r *Runner) evaluateOrder(ctx context.Context, order chiral.Order, comp *component, b ho.Length) ([]output.SectorBlock, error) {
	blocks := make([]output.SectorBlock, comp.sectors.Size())
	for si := 0; si < comp.sectors.Size(); si++ {
		sec := comp.sectors.Sector(si)
		blocks[si] = output.NewSectorBlock(sec.BraSubspace().Size(), sec.KetSubspace().Size())
	}

	fill := func(si int) {
		sec := comp.sectors.Sector(si)
		braSub := sec.BraSubspace()
		ketSub := sec.KetSubspace()
		params := chiral.EvalParams{
			Regularize: r.cfg.Regularize,
			Regulator:  r.cfg.Regulator,
			T0:         comp.t0,
			Abody:      2,
		}
		for bi := 0; bi < braSub.Size(); bi++ {
			braState := braSub.State(bi)
			for ki := 0; ki < ketSub.Size(); ki++ {
				ketState := ketSub.State(ki)
				value := chiral.ReducedMatrixElement(r.op, order, braState, ketState, b, params)
				blocks[si][bi][ki] = value
				comp.cumulative[si][bi][ki] += value
			}
		}
	}

	if r.cfg.Workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.cfg.Workers)
		for si := 0; si < comp.sectors.Size(); si++ {
			si := si
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fill(si)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("evaluating sectors: %w", err)
		}
		return blocks, nil
	}

	for si := 0; si < comp.sectors.Size(); si++ {
		fill(si)
	}
	return blocks, nil
}
