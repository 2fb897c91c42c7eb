package input

// InputMode selects the key table in use
type InputMode uint8

const (
	ModePlay InputMode = iota
	ModeText
)

func (m InputMode) String() string {
	if m == ModeText {
		return "text"
	}
	return "play"
}
