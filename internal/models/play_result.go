package models

import "github.com/google/uuid"

// PlayType is the tagged-variant discriminator over PlayResult.
type PlayType string

const (
	PlayRun             PlayType = "run"
	PlayPassComplete    PlayType = "pass_complete"
	PlayPassIncomplete  PlayType = "pass_incomplete"
	PlaySack            PlayType = "sack"
	PlayScramble        PlayType = "scramble"
	PlayKickoff         PlayType = "kickoff"
	PlayPunt            PlayType = "punt"
	PlayFieldGoal       PlayType = "field_goal"
	PlayExtraPoint      PlayType = "extra_point"
	PlayTwoPoint        PlayType = "two_point"
	PlayTouchback       PlayType = "touchback"
	PlayKneel           PlayType = "kneel"
	PlaySpike           PlayType = "spike"
	PlayPregame         PlayType = "pregame"
	PlayCoinToss        PlayType = "coin_toss"
)

// OffensiveCallType is the coordinator decision feeding the resolver.
type OffensiveCallType string

const (
	OffRun      OffensiveCallType = "run"
	OffPass     OffensiveCallType = "pass"
	OffPlayAction OffensiveCallType = "play_action"
	OffScreen   OffensiveCallType = "screen"
	OffKneel    OffensiveCallType = "kneel"
	OffSpike    OffensiveCallType = "spike"
	OffFieldGoal OffensiveCallType = "field_goal"
	OffPunt     OffensiveCallType = "punt"
	OffTwoPoint OffensiveCallType = "two_point"
	OffExtraPoint OffensiveCallType = "extra_point"
)

// DefensiveCallType is the coordinator decision feeding the resolver.
type DefensiveCallType string

const (
	DefRunBlitz     DefensiveCallType = "run_blitz"
	DefManCoverage  DefensiveCallType = "man_coverage"
	DefZoneCoverage DefensiveCallType = "zone_coverage"
	DefPreventD     DefensiveCallType = "prevent"
	DefBaseD        DefensiveCallType = "base"
	DefGoalLineD    DefensiveCallType = "goal_line"
)

// OffensiveCall and DefensiveCall are the coordinator decisions passed
// into the resolver for one play.
type OffensiveCall struct {
	Type OffensiveCallType
}

type DefensiveCall struct {
	Type DefensiveCallType
}

// ScoringType enumerates how a PlayResult's scoring field was earned.
type ScoringType string

const (
	ScoreTouchdown           ScoringType = "touchdown"
	ScoreDefensiveTouchdown  ScoringType = "defensive_touchdown"
	ScorePickSix             ScoringType = "pick_six"
	ScoreFumbleRecoveryTD    ScoringType = "fumble_recovery_td"
	ScoreFieldGoal           ScoringType = "field_goal"
	ScoreSafety              ScoringType = "safety"
	ScoreExtraPoint          ScoringType = "extra_point"
	ScoreTwoPointConversion  ScoringType = "two_point_conversion"
	ScorePATSafety           ScoringType = "pat_safety"
)

// Scoring records points awarded by a play.
type Scoring struct {
	Team   Side
	Type   ScoringType
	Points int
}

// TurnoverType enumerates how possession changed outside of a normal
// down-to-down transition.
type TurnoverType string

const (
	TurnoverInterception    TurnoverType = "interception"
	TurnoverFumble          TurnoverType = "fumble"
	TurnoverFumbleRecovery  TurnoverType = "fumble_recovery"
	TurnoverOnDowns         TurnoverType = "turnover_on_downs"
)

// Turnover records a change of possession outside normal down progress.
type Turnover struct {
	Type        TurnoverType
	ReturnYards int
}

// Penalty records a pre-snap or post-play infraction.
type Penalty struct {
	Description string
	Yards       int
	Declined    bool
	Offsetting  bool
}

// InjurySeverity enumerates how a recorded injury affects availability.
type InjurySeverity string

const (
	InjuryQuestionable InjurySeverity = "questionable"
	InjuryOut          InjurySeverity = "out"
	InjurySeasonEnding InjurySeverity = "season_ending"
)

// Injury records a player injured on a play.
type Injury struct {
	PlayerID    uuid.UUID
	Severity    InjurySeverity
	Description string
}

// TouchbackType tiers where a kick/punt settled.
type TouchbackType string

const (
	TouchbackEndzone TouchbackType = "endzone"
	TouchbackBounce  TouchbackType = "bounce"
	TouchbackShort   TouchbackType = "short"
)

// KickSpecial carries kickoff/punt-specific metadata. Present only when
// PlayResult.Type is PlayKickoff or PlayPunt.
type KickSpecial struct {
	TouchbackType TouchbackType
	CatchSpot     int // field position where the return man fielded the kick
	IsTouchback   bool
	ReturnYards   int
}

// PlayResult is the tagged variant produced by the resolver for one play.
// Only fields relevant to Type are populated; the rest are zero values.
type PlayResult struct {
	Type PlayType

	YardsGained int
	Touchdown   bool
	Safety      bool

	Scoring  *Scoring
	Turnover *Turnover
	Penalty  *Penalty
	Injury   *Injury
	Dropped  bool

	// Annotations: informational only, never alter outcomes.
	OffensiveCall     OffensiveCallType
	DefensiveCall     DefensiveCallType
	ProtectionScheme  string
	MotionType        string
	RunScheme         string
	FormationVariant  string
	RouteConcept      string

	PasserID   uuid.UUID
	RusherID   uuid.UUID
	ReceiverID uuid.UUID
	DefenderID uuid.UUID

	Kick *KickSpecial

	// ElapsedSeconds is how much game clock the play consumed; the state
	// machine computes it from a play-type-specific distribution.
	ElapsedSeconds int
	ClockStopped   bool
}
