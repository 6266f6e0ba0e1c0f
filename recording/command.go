package recording

import "github.com/gogpu/fx"

// CommandType identifies the type of a command.
// Each command type corresponds to one fx.Backend method.
type CommandType uint8

const (
	// State commands
	CmdSaveState    CommandType = iota // Save graphics state
	CmdRestoreState                    // Restore graphics state

	// Compositing commands
	CmdSetAlpha     // Set opacity
	CmdSetBlendMode // Set blend mode
	CmdSetShadow    // Set drop shadow
	CmdBeginLayer   // Begin transparency layer
	CmdEndLayer     // End transparency layer

	// Clip commands
	CmdBeginPath // Reset the clip path
	CmdAddRect   // Add a rectangle to the clip path
	CmdAddPath   // Add a path to the clip path
	CmdClip      // Clip with the nonzero rule
	CmdEOClip    // Clip with the even-odd rule

	// Drawing commands
	CmdFillPath   // Fill a path
	CmdStrokePath // Stroke a path
	CmdDrawImage  // Draw an image
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSaveState:    "SaveState",
	CmdRestoreState: "RestoreState",
	CmdSetAlpha:     "SetAlpha",
	CmdSetBlendMode: "SetBlendMode",
	CmdSetShadow:    "SetShadow",
	CmdBeginLayer:   "BeginTransparencyLayer",
	CmdEndLayer:     "EndTransparencyLayer",
	CmdBeginPath:    "BeginPath",
	CmdAddRect:      "AddRect",
	CmdAddPath:      "AddPath",
	CmdClip:         "Clip",
	CmdEOClip:       "EOClip",
	CmdFillPath:     "FillPath",
	CmdStrokePath:   "StrokePath",
	CmdDrawImage:    "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Reference Types
// --------------------------------------------------------------------------

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveStateCommand saves the graphics state.
type SaveStateCommand struct{}

// Type implements Command.
func (SaveStateCommand) Type() CommandType { return CmdSaveState }

// RestoreStateCommand restores the graphics state.
type RestoreStateCommand struct{}

// Type implements Command.
func (RestoreStateCommand) Type() CommandType { return CmdRestoreState }

// --------------------------------------------------------------------------
// Compositing Commands
// --------------------------------------------------------------------------

// SetAlphaCommand sets the opacity.
type SetAlphaCommand struct {
	Alpha float64
}

// Type implements Command.
func (SetAlphaCommand) Type() CommandType { return CmdSetAlpha }

// SetBlendModeCommand sets the blend mode.
type SetBlendModeCommand struct {
	Mode fx.BlendMode
}

// Type implements Command.
func (SetBlendModeCommand) Type() CommandType { return CmdSetBlendMode }

// SetShadowCommand sets the drop shadow. The offset is in backend space.
type SetShadowCommand struct {
	Shadow fx.ShadowParams
}

// Type implements Command.
func (SetShadowCommand) Type() CommandType { return CmdSetShadow }

// BeginLayerCommand opens a transparency layer.
type BeginLayerCommand struct{}

// Type implements Command.
func (BeginLayerCommand) Type() CommandType { return CmdBeginLayer }

// EndLayerCommand closes a transparency layer.
type EndLayerCommand struct{}

// Type implements Command.
func (EndLayerCommand) Type() CommandType { return CmdEndLayer }

// --------------------------------------------------------------------------
// Clip Commands
// --------------------------------------------------------------------------

// BeginPathCommand resets the clip path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// AddRectCommand adds a rectangle to the clip path.
type AddRectCommand struct {
	Rect fx.Rect
}

// Type implements Command.
func (AddRectCommand) Type() CommandType { return CmdAddRect }

// AddPathCommand adds a path to the clip path.
type AddPathCommand struct {
	Path PathRef
}

// Type implements Command.
func (AddPathCommand) Type() CommandType { return CmdAddPath }

// ClipCommand intersects the clip with the clip path, nonzero rule.
type ClipCommand struct{}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }

// EOClipCommand intersects the clip with the clip path, even-odd rule.
type EOClipCommand struct{}

// Type implements Command.
func (EOClipCommand) Type() CommandType { return CmdEOClip }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillPathCommand fills a path.
type FillPathCommand struct {
	Path  PathRef
	Color fx.Color
	Rule  fx.FillRule
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path  PathRef
	Color fx.Color
	Width float64
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// DrawImageCommand draws an image through a transform.
type DrawImageCommand struct {
	Image     ImageRef
	Transform fx.Matrix
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
