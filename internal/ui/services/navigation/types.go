package navigation

// State holds the grid cursor and the visible window, measured in rows
type State struct {
	Cursor         int
	Count          int
	Columns        int
	ViewportOffset int
	ViewportRows   int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// Locker reports whether movement is currently forbidden
type Locker interface {
	Locked() bool
}
