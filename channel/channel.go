// Package channel implements the animation channel engine: a
// strictly-ordered, time-keyed sequence of values of one ValueKind,
// with interpolated sampling and the temporal editing primitives
// (insert, clear, shift, scale, decimate, optimize) described by the
// engine's specification.
package channel

import (
	"fmt"

	"github.com/g3n/panima/chanpath"
	"github.com/g3n/panima/store"
	"github.com/g3n/panima/valuekind"
)

// Channel is a time-indexed sequence of values of a single ValueKind,
// targeting one animated property (spec §3).
type Channel struct {
	target        chanpath.Path
	interpolation Interpolation
	timeFrame     TimeFrame
	effective     TimeFrame
	factory       store.Factory
	keys          *keyStore
	expression    *boundExpression
}

// New creates an empty Channel holding values of the given kind, backed
// by the default in-memory Store (store.SliceFactory).
func New(kind valuekind.Kind) *Channel {

	return NewWithStore(kind, store.SliceFactory{})
}

// NewWithStore creates an empty Channel whose arrays are allocated from a
// caller-supplied Store factory (spec §6), for hosts with their own
// buffer management.
func NewWithStore(kind valuekind.Kind, factory store.Factory) *Channel {

	c := &Channel{
		interpolation: Linear,
		timeFrame:     defaultTimeFrame(),
		factory:       factory,
		keys:          newKeyStore(factory, kind),
	}
	c.updateEffective()
	return c
}

// Copy deep-copies this channel: its arrays and, if set, its expression
// (recompiled from its source for the new owner, so the two channels
// never share a compiled program).
func (c *Channel) Copy() *Channel {

	out := &Channel{
		target:        c.target,
		interpolation: c.interpolation,
		timeFrame:     c.timeFrame,
		effective:     c.effective,
		factory:       c.factory,
		keys:          c.keys.clone(c.factory),
	}
	if c.expression != nil {
		if prog, err := compileExpressionFor(out, c.expression.source); err == nil {
			out.expression = prog
		} else {
			log.Warn("failed to re-initialize expression on copy: %s", err.Error())
		}
	}
	return out
}

// TargetPath returns the channel's target property path.
func (c *Channel) TargetPath() chanpath.Path { return c.target }

// SetTargetPath sets the channel's target property path.
func (c *Channel) SetTargetPath(p chanpath.Path) { c.target = p }

// Interpolation returns the channel's interpolation mode.
func (c *Channel) Interpolation() Interpolation { return c.interpolation }

// SetInterpolation sets the channel's interpolation mode.
func (c *Channel) SetInterpolation(i Interpolation) { c.interpolation = i }

// ValueKind returns the kind of value this channel holds.
func (c *Channel) ValueKind() valuekind.Kind { return c.keys.Kind() }

// TimeFrame returns the channel's raw time-frame.
func (c *Channel) TimeFrame() TimeFrame { return c.timeFrame }

// SetTimeFrame sets the channel's time-frame and recomputes the
// effective one (spec §3 invariant 4).
func (c *Channel) SetTimeFrame(tf TimeFrame) {

	c.timeFrame = tf
	c.updateEffective()
}

// EffectiveTimeFrame returns the time-frame actually used for lookups:
// identical to TimeFrame() except Duration, which defaults to the last
// keyframe's time when the raw TimeFrame leaves it unbounded (< 0).
func (c *Channel) EffectiveTimeFrame() TimeFrame { return c.effective }

// updateEffective recomputes effective.Duration, matching the source's
// Channel::Update(). Called after every mutation that can move the last
// timestamp (Resize, inserts, removes, shifts, scales).
func (c *Channel) updateEffective() {

	c.effective = c.timeFrame
	if c.effective.Duration < 0 {
		c.effective.Duration = c.MaxTime()
	}
}

// Len returns the number of keyframes.
func (c *Channel) Len() int { return c.keys.Len() }

// IsEmpty reports whether the channel has no keyframes.
func (c *Channel) IsEmpty() bool { return c.keys.IsEmpty() }

// GetTime returns the timestamp at index i, or false if out of range.
func (c *Channel) GetTime(i int) (float32, bool) {

	if i < 0 || i >= c.keys.Len() {
		return 0, false
	}
	return c.keys.GetTime(i), true
}

// GetValue returns the value at index i, or false if out of range.
func (c *Channel) GetValue(i int) (any, bool) {

	if i < 0 || i >= c.keys.Len() {
		return nil, false
	}
	return c.keys.GetValue(i), true
}

// MinTime returns the first keyframe's timestamp, or 0 if empty.
func (c *Channel) MinTime() float32 {

	if c.keys.IsEmpty() {
		return 0
	}
	return c.keys.GetTime(0)
}

// MaxTime returns the last keyframe's timestamp, or 0 if empty.
func (c *Channel) MaxTime() float32 {

	if c.keys.IsEmpty() {
		return 0
	}
	return c.keys.GetTime(c.keys.Len() - 1)
}

// String implements fmt.Stringer, matching the source's operator<< for
// panima::Channel.
func (c *Channel) String() string {

	timeRange := ""
	if !c.keys.IsEmpty() {
		timeRange = fmt.Sprintf("[TimeRange:%g,%g]", c.MinTime(), c.MaxTime())
	}
	return fmt.Sprintf("Channel[Path:%s][Interp:%s][Values:%d]%s", c.target.ToURI(true), c.interpolation, c.keys.Len(), timeRange)
}
