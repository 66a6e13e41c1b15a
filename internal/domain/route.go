package domain

import "strings"

// RouteProfile biases/annotates a computed path.
type RouteProfile string

const (
	ProfileWheelchair RouteProfile = "wheelchair"
	ProfileVision     RouteProfile = "vision"
	ProfileHearing    RouteProfile = "hearing"
	ProfileNone       RouteProfile = "none"
)

func (p RouteProfile) Valid() bool {
	switch p {
	case ProfileWheelchair, ProfileVision, ProfileHearing, ProfileNone:
		return true
	}
	return false
}

// LineColor is the hex color the client draws the route line with.
func (p RouteProfile) LineColor() string {
	switch p {
	case ProfileWheelchair:
		return "#22c55e"
	case ProfileVision:
		return "#3b82f6"
	case ProfileHearing:
		return "#a855f7"
	default:
		return "#e53935"
	}
}

// Label is the rider description fed into the assistant prompt.
func (p RouteProfile) Label() string {
	switch p {
	case ProfileWheelchair:
		return "человек на инвалидной коляске"
	case ProfileVision:
		return "человек с нарушением зрения"
	case ProfileHearing:
		return "человек с нарушением слуха"
	default:
		return "человек с особыми потребностями"
	}
}

// RoutePlan is the assistant's answer plus client drawing/speech hints.
type RoutePlan struct {
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	Color       string   `json:"color"`
	Speech      string   `json:"speech,omitempty"` // vision profile only
}

// SpeechSummary builds the spoken route summary from at most the first five
// step instructions.
func SpeechSummary(steps []string) string {
	text := "Маршрут построен. Следуйте по выделенному пути."
	var picked []string
	for _, s := range steps {
		if strings.TrimSpace(s) == "" {
			continue
		}
		picked = append(picked, s)
		if len(picked) == 5 {
			break
		}
	}
	if len(picked) > 0 {
		text += " " + strings.Join(picked, ". ")
	}
	return text
}
