package compiler

import (
	"math"

	"github.com/goliatone/go-widgetdsl/pkg/grammar"
	"github.com/goliatone/go-widgetdsl/pkg/model"
)

// Computed value keys.
const (
	ComputedColor           = "color"
	ComputedFillPercent     = "fillPercent"
	ComputedBorderWidth     = "borderWidth"
	ComputedDurationSeconds = "durationSeconds"
	ComputedActiveIndex     = "activeIndex"
	ComputedActivePage      = "activePage"
	ComputedCellCount       = "cellCount"
	ComputedClassName       = "className"
)

// NeutralAlertColor is used for alert types outside AlertColors.
const NeutralAlertColor = "#e2e3e5"

// AlertColors maps alert types onto their background colour.
var AlertColors = map[string]string{
	"success": "#d4edda",
	"danger":  "#f8d7da",
	"warning": "#fff3cd",
	"info":    "#d1ecf1",
}

// AlertColor returns the background colour for an alert type.
func AlertColor(alertType string) string {
	if color, ok := AlertColors[alertType]; ok {
		return color
	}
	return NeutralAlertColor
}

// FillPercent returns value/limit as a percentage in [0, 100]. A non-positive
// limit yields 0.
func FillPercent(value, limit int) float64 {
	if limit <= 0 {
		return 0
	}
	pct := float64(value) / float64(limit) * 100
	switch {
	case math.IsNaN(pct) || pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

type deriveFunc func(model.Attributes) map[string]any

var derivations = map[string]deriveFunc{
	grammar.KindAlert: func(a model.Attributes) map[string]any {
		return map[string]any{ComputedColor: AlertColor(a.String("type"))}
	},
	grammar.KindProgressBar: func(a model.Attributes) map[string]any {
		value := ParseLeadingInt(a.String("value"))
		limit := ParseLeadingInt(a.String("max"))
		return map[string]any{ComputedFillPercent: FillPercent(value, limit)}
	},
	grammar.KindSpinner: func(a model.Attributes) map[string]any {
		return map[string]any{ComputedBorderWidth: float64(ParseLeadingInt(a.String("size"))) / 8}
	},
	grammar.KindToast: func(a model.Attributes) map[string]any {
		return map[string]any{ComputedDurationSeconds: float64(a.Int("duration")) / 1000}
	},
	grammar.KindTab: func(a model.Attributes) map[string]any {
		idx := a.Int("active") - 1
		if idx < 0 || idx >= len(a.Strings("labels")) {
			idx = -1
		}
		return map[string]any{ComputedActiveIndex: idx}
	},
	grammar.KindPagination: func(a model.Attributes) map[string]any {
		active := a.Int("active")
		if active < 1 || active > a.Int("pages") {
			active = 0
		}
		return map[string]any{ComputedActivePage: active}
	},
	grammar.KindGrid: func(a model.Attributes) map[string]any {
		return map[string]any{ComputedCellCount: cellCount(ParseLeadingInt(a.String("columns")), ParseLeadingInt(a.String("rows")))}
	},
	grammar.KindIcon: func(a model.Attributes) map[string]any {
		return map[string]any{ComputedClassName: "icon-" + a.String("name")}
	},
}

func computed(kind string, attrs model.Attributes) map[string]any {
	derive, ok := derivations[kind]
	if !ok {
		return nil
	}
	return derive(attrs)
}

func cellCount(columns, rows int) int {
	if columns <= 0 || rows <= 0 {
		return 0
	}
	if columns > math.MaxInt/rows {
		return 0
	}
	return columns * rows
}
