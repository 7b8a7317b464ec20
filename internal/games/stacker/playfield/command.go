package playfield

// Command is one discrete player request. The set is closed; values outside
// it are ignored by Apply.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotateCW
	CmdRotateCCW
	CmdHardDrop
	CmdFlipGravity
	CmdRestart
	CmdPause
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMoveLeft:
		return "moveLeft"
	case CmdMoveRight:
		return "moveRight"
	case CmdSoftDrop:
		return "softDrop"
	case CmdRotateCW:
		return "rotateCW"
	case CmdRotateCCW:
		return "rotateCCW"
	case CmdHardDrop:
		return "hardDrop"
	case CmdFlipGravity:
		return "flipGravity"
	case CmdRestart:
		return "restart"
	case CmdPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Apply dispatches a command to the matching engine operation.
func (e *Engine) Apply(cmd Command) {
	switch cmd {
	case CmdMoveLeft:
		e.Move(-1)
	case CmdMoveRight:
		e.Move(1)
	case CmdSoftDrop:
		e.SoftDrop()
	case CmdRotateCW:
		e.Rotate(Clockwise)
	case CmdRotateCCW:
		e.Rotate(CounterClockwise)
	case CmdHardDrop:
		e.HardDrop()
	case CmdFlipGravity:
		e.FlipGravity()
	case CmdRestart:
		e.Restart()
	case CmdPause:
		e.TogglePause()
	}
}
