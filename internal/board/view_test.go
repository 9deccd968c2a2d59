package board

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"orderdeck/internal/models"
)

func TestStatusTone(t *testing.T) {
	tests := []struct {
		status string
		want   Tone
	}{
		{"Pending", ToneAmber},
		{"Completed", ToneGreen},
		{"Shipped", ToneRed},
		{"Cancelled", ToneRed},
		{"pending", ToneRed}, // exact match only
		{"", ToneRed},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			require.Equal(t, tt.want, StatusTone(tt.status))
		})
	}
}

func TestToneString(t *testing.T) {
	require.Equal(t, "amber", ToneAmber.String())
	require.Equal(t, "green", ToneGreen.String())
	require.Equal(t, "red", ToneRed.String())
}

func TestDisplayName_FallbackForEmpty(t *testing.T) {
	require.Equal(t, FallbackCustomerName, DisplayName(models.Order{}))
	require.Equal(t, "Ada", DisplayName(models.Order{CustomerName: "Ada"}))
}

func TestDisplayTotal(t *testing.T) {
	require.Equal(t, "0.00", DisplayTotal(models.Order{}), "absent total renders as zero")

	o := models.Order{TotalAmount: decimal.RequireFromString("49.9")}
	require.Equal(t, "49.90", DisplayTotal(o))
}

func TestDisplayDate(t *testing.T) {
	o := models.Order{OrderDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	require.NotEmpty(t, DisplayDate(o))
}
