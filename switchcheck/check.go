// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switchcheck

import (
	"cmp"
	"context"
	"log/slog"
	"runtime"
	"slices"

	"github.com/patternlint/patternlint/internal/classify"
	"github.com/patternlint/patternlint/internal/dominance"
	"github.com/patternlint/patternlint/internal/exhaustive"
	"github.com/patternlint/patternlint/internal/feature"
	"github.com/patternlint/patternlint/pattern"
	"golang.org/x/sync/errgroup"
)

// A Checker checks switches. The zero value is ready to use.
type Checker struct {
	// Logger receives debug records for each pass. If nil, nothing
	// is logged.
	Logger *slog.Logger

	// Release is the Java language level used for switches whose
	// own Release is empty. If both are empty every feature is
	// available.
	Release string
}

// A Result holds the diagnostics of one switch.
type Result struct {
	Switch      *pattern.Switch
	Diagnostics []Diagnostic // ordered by label, then component path
	Exhaustive  bool
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Check analyses a single switch. It returns an error only if the
// switch is malformed (see [pattern.Switch.Validate]); every problem
// in the Java sense is reported as a Diagnostic.
func (c *Checker) Check(sw *pattern.Switch) (*Result, error) {
	if err := sw.Validate(); err != nil {
		return nil, err
	}
	release := sw.Release
	if release == "" {
		release = c.Release
	}
	log := c.logger().With("switch", sw.Name)

	classified := classify.ClassifyAll(sw)
	var diags []Diagnostic
	for i, res := range classified {
		for _, p := range res.Problems {
			diags = append(diags, problemDiagnostic(i, p))
		}
	}
	log.Debug("classified", "labels", len(sw.Labels), "diagnostics", len(diags))

	if f, ok := feature.Missing(release, feature.SwitchUses(sw.Selector)); ok {
		diags = append(diags, featureDiagnostic(SwitchLevel, f, release))
	}
	for i, l := range sw.Labels {
		if f, ok := feature.Missing(release, feature.LabelUses(sw.Selector, l)); ok {
			diags = append(diags, featureDiagnostic(i, f, release))
		}
	}

	n := len(diags)
	for _, f := range dominance.Compute(sw.Selector, classified) {
		d := Diagnostic{Label: f.Label, By: f.By}
		switch f.Kind {
		case dominance.Dominated:
			d.Kind = Dominated
			d.Message = sprintf(msgDominated, sw.Labels[f.By].String())
		case dominance.DuplicateUnconditional:
			d.Kind = DuplicateUnconditional
			d.Message = sprintf(msgDuplicateUnconditional)
		}
		diags = append(diags, d)
	}
	log.Debug("dominance", "diagnostics", len(diags)-n)

	n = len(diags)
	ex := exhaustive.Check(sw.Selector, classified)
	for _, f := range ex.Findings {
		d := Diagnostic{Label: f.Label, By: f.Other}
		switch f.Kind {
		case exhaustive.BooleanAndDefaultConflict:
			d.Kind = BooleanAndDefaultConflict
			d.Message = sprintf(msgBooleanAndDefault)
		case exhaustive.UnconditionalAndDefault:
			d.Kind = UnconditionalAndDefault
			d.Message = sprintf(msgUnconditionalAndDflt)
		}
		diags = append(diags, d)
	}
	if !ex.Exhaustive {
		key := msgNotExhaustiveStatement
		if sw.Expression {
			key = msgNotExhaustiveExpr
		}
		diags = append(diags, Diagnostic{
			Kind:    NonExhaustive,
			Label:   SwitchLevel,
			By:      -1,
			Message: sprintf(key),
		})
	}
	log.Debug("exhaustiveness", "exhaustive", ex.Exhaustive, "diagnostics", len(diags)-n)

	slices.SortStableFunc(diags, func(x, y Diagnostic) int {
		if d := cmp.Compare(x.Label, y.Label); d != 0 {
			return d
		}
		return slices.Compare(x.Path, y.Path)
	})
	return &Result{Switch: sw, Diagnostics: diags, Exhaustive: ex.Exhaustive}, nil
}

func problemDiagnostic(label int, p classify.Problem) Diagnostic {
	d := Diagnostic{Label: label, Path: p.Path, By: -1, Found: p.Found, Required: p.Required}
	switch p.Kind {
	case classify.IncompatibleType:
		d.Kind = IncompatibleType
		if p.Cast {
			d.Message = sprintf(msgInconvertible, p.Required, p.Found)
		} else {
			d.Message = sprintf(msgIncompatible, p.Found, p.Required)
		}
	case classify.ConstantRequired:
		d.Kind = ConstantRequired
		d.Message = sprintf(msgConstantRequired)
	case classify.InvalidNullConversion:
		d.Kind = InvalidNullConversion
		d.Message = sprintf(msgNullConversion, p.Required)
	case classify.ComponentCount:
		d.Kind = RecordComponentCount
		d.Message = sprintf(msgComponentCount, p.Required, p.Expected, p.Actual)
	}
	return d
}

func featureDiagnostic(label int, f feature.Feature, release string) Diagnostic {
	return Diagnostic{
		Kind:    UnsupportedFeature,
		Label:   label,
		By:      -1,
		Message: sprintf(msgUnsupportedFeature, f.String(), release),
	}
}

// CheckAll analyses the switches in parallel. The results are in the
// order of switches. It stops at the first malformed switch or when
// ctx is cancelled.
func (c *Checker) CheckAll(ctx context.Context, switches []*pattern.Switch) ([]*Result, error) {
	results := make([]*Result, len(switches))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, sw := range switches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := c.Check(sw)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
