package recording

import (
	"fmt"
	"image"

	"github.com/gogpu/fx"
)

func init() {
	fx.Register("recording", func(width, height int) fx.Backend {
		return NewRecorder(width, height)
	})
}

// Recorder captures fx.Backend calls as commands. Paths and images are
// stored in a ResourcePool and referenced by the commands.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	// Open SaveState and BeginTransparencyLayer calls.
	saveDepth  int
	layerDepth int
}

var _ fx.Backend = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// FinishRecording returns an immutable copy of the recorded commands.
// The Recorder can continue to be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  cmds,
		resources: r.resources.Clone(),
	}
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Types returns the type of every recorded command in call order.
func (r *Recorder) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, cmd := range r.commands {
		types[i] = cmd.Type()
	}
	return types
}

// Resources returns the resource pool the commands refer to.
func (r *Recorder) Resources() *ResourcePool {
	return r.resources
}

// Balanced reports whether every SaveState has been restored and every
// transparency layer ended.
func (r *Recorder) Balanced() bool {
	return r.saveDepth == 0 && r.layerDepth == 0
}

// Reset drops all recorded commands and resources.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
	r.saveDepth, r.layerDepth = 0, 0
}

func (r *Recorder) record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// --------------------------------------------------------------------------
// fx.Backend
// --------------------------------------------------------------------------

// Bounds implements fx.Backend.
func (r *Recorder) Bounds() fx.Rect {
	return fx.RectXYWH(0, 0, float64(r.width), float64(r.height))
}

// SaveState implements fx.Backend.
func (r *Recorder) SaveState() {
	r.saveDepth++
	r.record(SaveStateCommand{})
}

// RestoreState implements fx.Backend.
func (r *Recorder) RestoreState() {
	if r.saveDepth == 0 {
		fx.Logger().Warn("recording: RestoreState without SaveState")
	} else {
		r.saveDepth--
	}
	r.record(RestoreStateCommand{})
}

// SetAlpha implements fx.Backend.
func (r *Recorder) SetAlpha(alpha float64) {
	r.record(SetAlphaCommand{Alpha: alpha})
}

// SetBlendMode implements fx.Backend.
func (r *Recorder) SetBlendMode(mode fx.BlendMode) {
	r.record(SetBlendModeCommand{Mode: mode})
}

// SetShadow implements fx.Backend.
func (r *Recorder) SetShadow(shadow fx.ShadowParams) {
	r.record(SetShadowCommand{Shadow: shadow})
}

// BeginTransparencyLayer implements fx.Backend.
func (r *Recorder) BeginTransparencyLayer() {
	r.layerDepth++
	r.record(BeginLayerCommand{})
}

// EndTransparencyLayer implements fx.Backend.
func (r *Recorder) EndTransparencyLayer() {
	if r.layerDepth == 0 {
		fx.Logger().Warn("recording: EndTransparencyLayer without BeginTransparencyLayer")
	} else {
		r.layerDepth--
	}
	r.record(EndLayerCommand{})
}

// BeginPath implements fx.Backend.
func (r *Recorder) BeginPath() {
	r.record(BeginPathCommand{})
}

// AddRect implements fx.Backend.
func (r *Recorder) AddRect(rect fx.Rect) {
	r.record(AddRectCommand{Rect: rect})
}

// AddPath implements fx.Backend.
func (r *Recorder) AddPath(p *fx.Path) {
	r.record(AddPathCommand{Path: r.resources.AddPath(p)})
}

// Clip implements fx.Backend.
func (r *Recorder) Clip() {
	r.record(ClipCommand{})
}

// EOClip implements fx.Backend.
func (r *Recorder) EOClip() {
	r.record(EOClipCommand{})
}

// FillPath implements fx.Backend.
func (r *Recorder) FillPath(p *fx.Path, c fx.Color, rule fx.FillRule) {
	r.record(FillPathCommand{Path: r.resources.AddPath(p), Color: c, Rule: rule})
}

// StrokePath implements fx.Backend.
func (r *Recorder) StrokePath(p *fx.Path, c fx.Color, width float64) {
	r.record(StrokePathCommand{Path: r.resources.AddPath(p), Color: c, Width: width})
}

// DrawImage implements fx.Backend.
func (r *Recorder) DrawImage(img image.Image, m fx.Matrix) {
	r.record(DrawImageCommand{Image: r.resources.AddImage(img), Transform: m})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable sequence of commands with their resources.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording onto backend.
func (r *Recording) Playback(backend fx.Backend) error {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveStateCommand:
			backend.SaveState()
		case RestoreStateCommand:
			backend.RestoreState()
		case SetAlphaCommand:
			backend.SetAlpha(c.Alpha)
		case SetBlendModeCommand:
			backend.SetBlendMode(c.Mode)
		case SetShadowCommand:
			backend.SetShadow(c.Shadow)
		case BeginLayerCommand:
			backend.BeginTransparencyLayer()
		case EndLayerCommand:
			backend.EndTransparencyLayer()
		case BeginPathCommand:
			backend.BeginPath()
		case AddRectCommand:
			backend.AddRect(c.Rect)
		case AddPathCommand:
			backend.AddPath(r.resources.GetPath(c.Path))
		case ClipCommand:
			backend.Clip()
		case EOClipCommand:
			backend.EOClip()
		case FillPathCommand:
			backend.FillPath(r.resources.GetPath(c.Path), c.Color, c.Rule)
		case StrokePathCommand:
			backend.StrokePath(r.resources.GetPath(c.Path), c.Color, c.Width)
		case DrawImageCommand:
			backend.DrawImage(r.resources.GetImage(c.Image), c.Transform)
		default:
			return fmt.Errorf("recording: unknown command %v", cmd.Type())
		}
	}
	return nil
}
