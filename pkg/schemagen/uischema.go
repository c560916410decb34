package schemagen

import "encoding/json"

// UI node types.
const (
	TypeControl        = "Control"
	TypeVerticalLayout = "VerticalLayout"
	TypeGroup          = "Group"
)

// EffectShow is the only rule effect the toolkit emits: the node is shown
// while the rule's condition holds.
const EffectShow = "SHOW"

// UIElement is the closed union of UI schema nodes: *Control and *Layout.
type UIElement interface {
	isUIElement()
}

// Control binds a rendered input to its schema pointer. A field without a
// label yields a control without one; the field name is never substituted.
type Control struct {
	Scope string
	Label string
	Rule  *Rule
}

// Layout is a container node: the root VerticalLayout or a labelled Group.
type Layout struct {
	Type     string
	Label    string
	Elements []UIElement
	Rule     *Rule
}

func (*Control) isUIElement() {}
func (*Layout) isUIElement()  {}

// Rule is a visibility directive attached to a UI node. Each node carries at
// most one rule, so stacked conditionals fold their triggers into a single
// combinator condition instead of emitting a second rule.
type Rule struct {
	Effect    string    `json:"effect"`
	Condition Condition `json:"condition"`
}

// Condition is either a single scope/const test or an AND combinator over
// several of them.
type Condition interface {
	isCondition()
}

// SchemaCondition tests the field addressed by Scope against one constant.
type SchemaCondition struct {
	Scope  string     `json:"scope"`
	Schema ConstValue `json:"schema"`
}

// ConstValue is the equality constraint of a SchemaCondition. Const is
// deliberately not omitempty: false, 0, and "" are honored trigger values.
type ConstValue struct {
	Const any `json:"const"`
}

// AndCondition requires every listed condition to hold.
type AndCondition struct {
	Conditions []Condition
}

func (SchemaCondition) isCondition() {}
func (AndCondition) isCondition()    {}

// MarshalJSON emits the combinator with its type tag.
func (c AndCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string      `json:"type"`
		Conditions []Condition `json:"conditions"`
	}{Type: "AND", Conditions: c.Conditions})
}

// MarshalJSON emits the control with its type tag.
func (c *Control) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Scope string `json:"scope"`
		Label string `json:"label,omitempty"`
		Rule  *Rule  `json:"rule,omitempty"`
	}{Type: TypeControl, Scope: c.Scope, Label: c.Label, Rule: c.Rule})
}

// MarshalJSON emits the layout node. Elements is never omitted so empty
// groups stay structurally visible.
func (l *Layout) MarshalJSON() ([]byte, error) {
	elements := l.Elements
	if elements == nil {
		elements = []UIElement{}
	}
	return json.Marshal(struct {
		Type     string      `json:"type"`
		Label    string      `json:"label,omitempty"`
		Elements []UIElement `json:"elements"`
		Rule     *Rule       `json:"rule,omitempty"`
	}{Type: l.Type, Label: l.Label, Elements: elements, Rule: l.Rule})
}
