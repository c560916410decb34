package constraint

import (
	"fmt"

	"github.com/goliatone/go-formspec/pkg/formspec"
)

// Severity grades a single capability in a Config.
type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warn"
	SeverityOff   Severity = "off"
)

// Layout construct keys.
const (
	LayoutGroup       = "group"
	LayoutConditional = "conditional"
)

// Field option keys.
const (
	OptionLabel       = "label"
	OptionPlaceholder = "placeholder"
	OptionRequired    = "required"
	OptionMin         = "min"
	OptionMax         = "max"
	OptionMinItems    = "minItems"
	OptionMaxItems    = "maxItems"
)

// Config grades the capabilities of a target environment. A missing entry in
// any category map counts as off. MaxNestingDepth limits how many
// array/object boundaries a field may sit below; zero means unlimited.
type Config struct {
	Fields          map[formspec.FieldType]Severity `json:"fields" yaml:"fields" mapstructure:"fields"`
	Layouts         map[string]Severity             `json:"layouts" yaml:"layouts" mapstructure:"layouts"`
	Options         map[string]Severity             `json:"options" yaml:"options" mapstructure:"options"`
	MaxNestingDepth int                             `json:"maxNestingDepth" yaml:"maxNestingDepth" mapstructure:"maxNestingDepth"`
}

// DefaultConfig returns the permissive total configuration: every known
// capability off, no depth limit. Callers merge overrides onto it and thread
// the result into each Validate call; there is no package-level mutable
// default.
func DefaultConfig() Config {
	return Config{
		Fields: map[formspec.FieldType]Severity{
			formspec.FieldTypeText:          SeverityOff,
			formspec.FieldTypeNumber:        SeverityOff,
			formspec.FieldTypeBoolean:       SeverityOff,
			formspec.FieldTypeEnum:          SeverityOff,
			formspec.FieldTypeDynamicEnum:   SeverityOff,
			formspec.FieldTypeDynamicSchema: SeverityOff,
			formspec.FieldTypeArray:         SeverityOff,
			formspec.FieldTypeObject:        SeverityOff,
		},
		Layouts: map[string]Severity{
			LayoutGroup:       SeverityOff,
			LayoutConditional: SeverityOff,
		},
		Options: map[string]Severity{
			OptionLabel:       SeverityOff,
			OptionPlaceholder: SeverityOff,
			OptionRequired:    SeverityOff,
			OptionMin:         SeverityOff,
			OptionMax:         SeverityOff,
			OptionMinItems:    SeverityOff,
			OptionMaxItems:    SeverityOff,
		},
	}
}

// Merge overlays a partial override onto base, category by category. Each
// category map merges key-wise, so a partial override never replaces a whole
// category; an override depth wins only when set.
func Merge(base, override Config) Config {
	out := Config{
		Fields:          mergeSeverities(base.Fields, override.Fields),
		Layouts:         mergeSeverities(base.Layouts, override.Layouts),
		Options:         mergeSeverities(base.Options, override.Options),
		MaxNestingDepth: base.MaxNestingDepth,
	}
	if override.MaxNestingDepth > 0 {
		out.MaxNestingDepth = override.MaxNestingDepth
	}
	return out
}

func mergeSeverities[K comparable](base, override map[K]Severity) map[K]Severity {
	out := make(map[K]Severity, len(base)+len(override))
	for key, severity := range base {
		out[key] = severity
	}
	for key, severity := range override {
		out[key] = severity
	}
	return out
}

func severityFor[K comparable](m map[K]Severity, key K) Severity {
	if severity, ok := m[key]; ok {
		return severity
	}
	return SeverityOff
}

func validateConfig(cfg Config) error {
	knownKinds := DefaultConfig().Fields
	for kind, severity := range cfg.Fields {
		if _, ok := knownKinds[kind]; !ok {
			return fmt.Errorf("unknown field type %q", kind)
		}
		if err := checkSeverity(string(kind), severity); err != nil {
			return err
		}
	}
	for construct, severity := range cfg.Layouts {
		if construct != LayoutGroup && construct != LayoutConditional {
			return fmt.Errorf("unknown layout construct %q", construct)
		}
		if err := checkSeverity(construct, severity); err != nil {
			return err
		}
	}
	for option, severity := range cfg.Options {
		switch option {
		case OptionLabel, OptionPlaceholder, OptionRequired, OptionMin, OptionMax, OptionMinItems, OptionMaxItems:
		default:
			return fmt.Errorf("unknown field option %q", option)
		}
		if err := checkSeverity(option, severity); err != nil {
			return err
		}
	}
	if cfg.MaxNestingDepth < 0 {
		return fmt.Errorf("maxNestingDepth must not be negative, got %d", cfg.MaxNestingDepth)
	}
	return nil
}

func checkSeverity(key string, severity Severity) error {
	switch severity {
	case SeverityError, SeverityWarn, SeverityOff:
		return nil
	default:
		return fmt.Errorf("constraint %q has unknown severity %q", key, severity)
	}
}
