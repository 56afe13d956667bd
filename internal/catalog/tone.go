package catalog

// Tone is the visual bucket a status or priority is drawn in. The TUI
// theme decides the actual colors.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneInfo
	ToneWarning
	ToneSecondary
	TonePrimary
	ToneDanger
	ToneSuccess
)

func (t Tone) String() string {
	switch t {
	case ToneInfo:
		return "info"
	case ToneWarning:
		return "warning"
	case ToneSecondary:
		return "secondary"
	case TonePrimary:
		return "primary"
	case ToneDanger:
		return "danger"
	case ToneSuccess:
		return "success"
	default:
		return "neutral"
	}
}

// StatusTone maps a status to its tone. On Hold and Cancelled share
// ToneDanger; anything unknown is neutral.
func StatusTone(status Status) Tone {
	switch status {
	case StatusNew:
		return ToneInfo
	case StatusInProgress:
		return ToneWarning
	case StatusWaitingForInput:
		return ToneSecondary
	case StatusInReview:
		return TonePrimary
	case StatusOnHold, StatusCancelled:
		return ToneDanger
	case StatusCompleted:
		return ToneSuccess
	default:
		return ToneNeutral
	}
}

// PriorityTone maps a priority to its tone. High and Urgent share
// ToneDanger; anything unknown is neutral.
func PriorityTone(priority Priority) Tone {
	switch priority {
	case PriorityLow:
		return ToneSuccess
	case PriorityMedium:
		return ToneWarning
	case PriorityHigh, PriorityUrgent:
		return ToneDanger
	default:
		return ToneNeutral
	}
}
