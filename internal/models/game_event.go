package models

// GameEvent is an immutable, totally-ordered snapshot of one play.
type GameEvent struct {
	EventNumber      int
	StateBefore      GameState
	PlayResult       PlayResult
	StateAfter       GameState
	NarrativeSnapshot string
}

// DriveResult enumerates how a Drive ended.
type DriveResult string

const (
	DriveTouchdown       DriveResult = "touchdown"
	DriveFieldGoal       DriveResult = "field_goal"
	DriveSafety          DriveResult = "safety"
	DrivePunt            DriveResult = "punt"
	DriveTurnover        DriveResult = "turnover"
	DriveTurnoverOnDowns DriveResult = "turnover_on_downs"
	DriveEndOfHalf       DriveResult = "end_of_half"
	DriveEndOfGame       DriveResult = "end_of_game"
)

// Drive is a contiguous sequence of plays by one possessing team.
type Drive struct {
	PossessionTeam Side
	StartPosition  int
	EndPosition    int
	Plays          []GameEvent
	Result         DriveResult
}
