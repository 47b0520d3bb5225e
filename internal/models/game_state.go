package models

// Side identifies which team a piece of state belongs to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// Quarter is 1-4 during regulation, or QuarterOT once overtime begins.
type Quarter string

const (
	Quarter1  Quarter = "1"
	Quarter2  Quarter = "2"
	Quarter3  Quarter = "3"
	Quarter4  Quarter = "4"
	QuarterOT Quarter = "OT"
)

// RegulationSeconds is the length, in seconds, of one regulation quarter.
const RegulationSeconds = 900

// TwoMinuteWarningSeconds is the clock value at which the two-minute
// warning fires once per half, when the clock passes it from above.
const TwoMinuteWarningSeconds = 120

// Weather describes on-field conditions at kickoff. Dome venues force a
// fixed clear/indoor reading.
type Weather struct {
	Type          string `json:"type"` // clear, rain, snow, wind, fog
	TemperatureF  int    `json:"temperature_f"`
	WindMPH       int    `json:"wind_mph"`
	PrecipitationPct int `json:"precipitation_pct"`
	Description   string `json:"description"`
}

// DomeWeather is the fixed reading emitted whenever the home team's venue
// is a dome, before any play is resolved.
func DomeWeather() Weather {
	return Weather{
		Type:             "clear",
		TemperatureF:     72,
		WindMPH:          0,
		PrecipitationPct: 0,
		Description:      "Indoor",
	}
}

// Clock bundles the timing half of GameState.
type Clock struct {
	Quarter                Quarter
	ClockSeconds           int // [0, 900]
	IsClockRunning         bool
	TwoMinuteWarningFired  map[Quarter]bool // keyed by Quarter2 / Quarter4
	IsHalftime             bool
}

// Possession bundles the ball-spot half of GameState.
type Possession struct {
	Team              Side
	BallPosition      int // [0,100], 0 = own goal line, 100 = opponent goal line
	Down              int // [1,4]
	YardsToGo         int
	DriveStartPosition int
}

// GoalToGo reports whether the offense is inside the opponent's 10 with a
// first-down marker beyond the goal line.
func (p Possession) GoalToGo() bool {
	return p.BallPosition+p.YardsToGo >= 100
}

// Timeouts tracks remaining timeouts per side. Regular season caps at 3;
// overtime caps depend on GameType (see otTimeoutCap in internal/engine).
type Timeouts struct {
	Home int
	Away int
}

// Remaining returns the timeout count for a side.
func (t Timeouts) Remaining(side Side) int {
	if side == SideHome {
		return t.Home
	}
	return t.Away
}

// OvertimeResult categorizes how the first OT possession ended.
type OvertimeResult string

const (
	OTResultTouchdown OvertimeResult = "touchdown"
	OTResultFieldGoal OvertimeResult = "field_goal"
	OTResultSafety    OvertimeResult = "safety"
	OTResultTurnover  OvertimeResult = "turnover"
	OTResultNone      OvertimeResult = "none"
)

// CoinTossChoice is what the overtime coin-toss winner elected to do.
type CoinTossChoice string

const (
	CoinTossReceive CoinTossChoice = "receive"
	CoinTossDefer   CoinTossChoice = "defer"
)

// OvertimeState tracks the extra rules layered on top of GameState during
// overtime.
type OvertimeState struct {
	CoinTossWinner        Side
	CoinTossChoice        CoinTossChoice
	HomePossessed         bool
	AwayPossessed         bool
	FirstPossessionResult OvertimeResult
	IsSuddenDeath         bool
	IsComplete            bool
	PeriodNumber          int // increments on playoff tie -> fresh period
}

// BothTeamsPossessed reports whether both sides have had at least one
// overtime possession, the gate for sudden death.
func (o *OvertimeState) BothTeamsPossessed() bool {
	return o.HomePossessed && o.AwayPossessed
}

// GameState is the central mutable entity. It is created by the
// simulation driver with canonical kickoff defaults, mutated by the
// driver exclusively, and frozen inside emitted events.
type GameState struct {
	HomeScore int
	AwayScore int

	Clock      Clock
	Possession Possession
	Timeouts   Timeouts

	Kickoff       bool
	PATAttempt    bool
	Overtime      *OvertimeState
	Weather       Weather

	GameType GameType
}

// Score returns the score for a side.
func (g *GameState) Score(side Side) int {
	if side == SideHome {
		return g.HomeScore
	}
	return g.AwayScore
}

// AddScore adds points to a side's score. Scores are non-decreasing within
// a game; callers never subtract.
func (g *GameState) AddScore(side Side, points int) {
	if side == SideHome {
		g.HomeScore += points
	} else {
		g.AwayScore += points
	}
}

// TotalElapsedSeconds computes total game time elapsed: 4*900 plus any
// completed or in-progress OT period length.
func TotalElapsedSeconds(quartersPlayed int, otPeriods int, otPeriodLength int) int {
	return quartersPlayed*RegulationSeconds + otPeriods*otPeriodLength
}
