package model

type PlayerColor string

const (
	PlayerColorRed    PlayerColor = "red"
	PlayerColorBlue   PlayerColor = "blue"
	PlayerColorYellow PlayerColor = "yellow"
	PlayerColorGreen  PlayerColor = "green"
)

// turnOrder is the fixed cyclic order of play; red always opens.
var turnOrder = [4]PlayerColor{PlayerColorRed, PlayerColorBlue, PlayerColorYellow, PlayerColorGreen}

// orientation fixes a player's notion of "forward" on the cross board. Pawn
// advance, diagonal captures and the promotion edge all derive from it.
type orientation struct {
	forward   Direction
	diagLeft  Direction
	diagRight Direction
}

var orientations = map[PlayerColor]orientation{
	PlayerColorRed:    {forward: Direction{0, -1}, diagLeft: Direction{-1, -1}, diagRight: Direction{1, -1}},
	PlayerColorBlue:   {forward: Direction{1, 0}, diagLeft: Direction{1, -1}, diagRight: Direction{1, 1}},
	PlayerColorYellow: {forward: Direction{0, 1}, diagLeft: Direction{1, 1}, diagRight: Direction{-1, 1}},
	PlayerColorGreen:  {forward: Direction{-1, 0}, diagLeft: Direction{-1, 1}, diagRight: Direction{-1, -1}},
}

// PlayerState is the per-seat game state: whether the seat is still in the
// game, whether its king is currently attacked, and the captured-material
// score.
type PlayerState struct {
	Color      PlayerColor `json:"color"`
	Eliminated bool        `json:"eliminated"`
	InCheck    bool        `json:"inCheck"`
	Score      int         `json:"score"`
}

// ClientPlayer describes a seat occupant as sent to clients.
type ClientPlayer struct {
	ID    string      `json:"name"`
	Color PlayerColor `json:"color"`
}
