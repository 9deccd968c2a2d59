package board

import "orderdeck/internal/models"

// FallbackCustomerName is shown in place of an empty customer name so the
// cell is never blank.
const FallbackCustomerName = "Nehal"

// Tone is the visual treatment of an order's status badge. Exactly three
// exist; any status string that is not recognized falls into ToneRed.
type Tone int

const (
	ToneRed Tone = iota
	ToneAmber
	ToneGreen
)

func (t Tone) String() string {
	switch t {
	case ToneAmber:
		return "amber"
	case ToneGreen:
		return "green"
	default:
		return "red"
	}
}

// StatusTone maps a status to its tone by exact string match.
func StatusTone(status string) Tone {
	switch status {
	case "Pending":
		return ToneAmber
	case "Completed":
		return ToneGreen
	default:
		return ToneRed
	}
}

// DisplayName renders the customer name, substituting the fixed fallback
// label for an empty value.
func DisplayName(o models.Order) string {
	if o.CustomerName == "" {
		return FallbackCustomerName
	}
	return o.CustomerName
}

// DisplayTotal renders the total with two decimal places; an absent total
// renders as "0.00".
func DisplayTotal(o models.Order) string {
	return o.TotalAmount.StringFixed(2)
}

// DisplayDate renders the order date as a localized calendar date.
func DisplayDate(o models.Order) string {
	return o.OrderDate.Local().Format("02 Jan 2006")
}
