// Package language holds the selectable translation targets.
package language

import (
	"github.com/samber/lo"

	apperrors "s3-audio-translate/internal/app/errors"
)

// NoTranslation is the label of the "keep the original" entry.
const NoTranslation = "Original (No Translation)"

// Option is one entry of the language selector. Target is empty for NoTranslation.
type Option struct {
	Label  string `yaml:"label" json:"label"`
	Target string `yaml:"target" json:"target"`
}

// Defaults is the selector shown when the config file does not override it.
var Defaults = []Option{
	{Label: NoTranslation},
	{Label: "Hindi", Target: "Hindi"},
	{Label: "Marathi", Target: "Marathi"},
	{Label: "Japanese", Target: "Japanese"},
	{Label: "Spanish", Target: "Spanish"},
	{Label: "French", Target: "French"},
	{Label: "German", Target: "German"},
}

// Table resolves selector labels to translation targets, keeping order.
type Table struct {
	options []Option
}

// NewTable builds a table. The NoTranslation entry is always present and first.
func NewTable(options []Option) *Table {
	if len(options) == 0 {
		options = Defaults
	}
	rest := lo.Filter(options, func(o Option, _ int) bool {
		return o.Label != NoTranslation && o.Label != ""
	})
	rest = lo.UniqBy(rest, func(o Option) string { return o.Label })
	rest = lo.Map(rest, func(o Option, _ int) Option {
		if o.Target == "" {
			o.Target = o.Label
		}
		return o
	})
	return &Table{options: append([]Option{{Label: NoTranslation}}, rest...)}
}

// Options returns the selector entries in display order.
func (t *Table) Options() []Option {
	return append([]Option(nil), t.options...)
}

// Labels returns the selector labels in display order.
func (t *Table) Labels() []string {
	return lo.Map(t.options, func(o Option, _ int) string { return o.Label })
}

// Resolve maps a label to its target. The empty label and NoTranslation both
// resolve to "" (no translation). Unknown labels are rejected.
func (t *Table) Resolve(label string) (string, error) {
	if label == "" {
		return "", nil
	}
	opt, ok := lo.Find(t.options, func(o Option) bool { return o.Label == label })
	if !ok {
		return "", apperrors.Wrapf(apperrors.ErrUnsupportedLanguage, "unknown language %q", label)
	}
	return opt.Target, nil
}
