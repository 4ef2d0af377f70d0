package advisor

import (
	"slices"

	"apple-orchard-advisor/internal/model"
	"apple-orchard-advisor/internal/sensor"
)

// Label names one of the six advisors a question can be routed to.
type Label string

const (
	LabelDataAnalyzer        Label = "data_analyzer"
	LabelIrrigationAdvisor   Label = "irrigation_advisor"
	LabelRiskAdvisor         Label = "risk_advisor"
	LabelFertilizerPesticide Label = "fertilizer_pesticide"
	LabelGeneralAdvisor      Label = "general_advisor"
	LabelOffTopic            Label = "off_topic"
)

// DefaultLabel is used whenever a classification cannot be mapped to a known label.
const DefaultLabel = LabelGeneralAdvisor

// AllLabels returns every label in routing prompt order.
func AllLabels() []Label {
	return []Label{
		LabelDataAnalyzer,
		LabelIrrigationAdvisor,
		LabelRiskAdvisor,
		LabelFertilizerPesticide,
		LabelGeneralAdvisor,
		LabelOffTopic,
	}
}

// Valid reports whether l is one of AllLabels.
func (l Label) Valid() bool {
	return slices.Contains(AllLabels(), l)
}

func (l Label) String() string {
	return string(l)
}

// FetchLimit is the number of sensor readings the advisor for l analyses; 0 means it does not fetch.
func (l Label) FetchLimit() int {
	switch l {
	case LabelDataAnalyzer, LabelFertilizerPesticide:
		return 5
	case LabelIrrigationAdvisor, LabelRiskAdvisor:
		return 10
	default:
		return 0
	}
}

// --- Workflow state ---

type actionKind int

const (
	actionNone actionKind = iota
	actionRoute
	actionEnd
)

// Action is the next step of a turn: route to an advisor, or end.
type Action struct {
	kind  actionKind
	label Label
}

// ActionRoute routes the turn to the advisor for l.
func ActionRoute(l Label) Action {
	return Action{kind: actionRoute, label: l}
}

// ActionEnd finishes the turn.
var ActionEnd = Action{kind: actionEnd}

// Route returns the target advisor when the action is a route.
func (a Action) Route() (Label, bool) {
	return a.label, a.kind == actionRoute
}

// IsEnd reports whether the turn is finished.
func (a Action) IsEnd() bool {
	return a.kind == actionEnd
}

func (a Action) String() string {
	switch a.kind {
	case actionRoute:
		return string(a.label)
	case actionEnd:
		return "end"
	default:
		return ""
	}
}

// State is the snapshot of a single advisory turn. Every With method returns
// a new snapshot and leaves the receiver untouched.
type State struct {
	Messages       []model.Message
	DeviceID       string
	SensorData     sensor.FetchResult
	CurrentAdvisor Label
	NextAction     Action
}

// NewState starts a turn with the farmer's question.
func NewState(deviceID, message string) State {
	return State{
		Messages: []model.Message{model.NewHumanMessage(message)},
		DeviceID: deviceID,
	}
}

// WithMessage appends m to a copy of the history.
func (s State) WithMessage(m model.Message) State {
	msgs := make([]model.Message, 0, len(s.Messages)+1)
	msgs = append(msgs, s.Messages...)
	s.Messages = append(msgs, m)
	return s
}

// WithAdvisor records the routing decision and schedules that advisor. It may be called once per turn.
func (s State) WithAdvisor(l Label) (State, error) {
	if s.CurrentAdvisor != "" {
		return s, ErrAdvisorAlreadySet
	}
	if !l.Valid() {
		return s, ErrInvalidLabel
	}
	s.CurrentAdvisor = l
	s.NextAction = ActionRoute(l)
	return s, nil
}

// WithSensorData records the outcome of the advisor's sensor fetch.
func (s State) WithSensorData(r sensor.FetchResult) State {
	s.SensorData = r
	return s
}

// Finish appends the advisor's answer and ends the turn.
func (s State) Finish(answer string) State {
	s = s.WithMessage(model.NewAssistantMessage(answer))
	s.NextAction = ActionEnd
	return s
}

// Question returns the latest farmer turn.
func (s State) Question() string {
	return model.LastHuman(s.Messages)
}

// Answer returns the final assistant turn, or "" while the turn is running.
func (s State) Answer() string {
	if n := len(s.Messages); n > 0 && s.Messages[n-1].Role == model.RoleAssistant {
		return s.Messages[n-1].Content
	}
	return ""
}

// --- UseCase Inputs/Outputs ---

type ChatInput struct {
	DeviceID string
	Message  string
}

type ChatOutput struct {
	Response       string
	Advisor        Label
	SensorDataUsed bool
	Fallback       bool
	Messages       []model.Message
}
