package templates

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-app/domain"
)

func render(t *testing.T, name string, data interface{}) string {
	t.Helper()
	tmpl, err := Load()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestMoneyAndLabels(t *testing.T) {
	assert.Equal(t, "$300", Money(300))
	assert.Equal(t, "$55.50", Money(55.5))
	assert.Equal(t, "1 night", NightsLabel(1))
	assert.Equal(t, "3 nights", NightsLabel(3))
	assert.Equal(t, "1 guest", GuestsLabel(1))
	assert.Equal(t, "6 guests", GuestsLabel(6))
}

func TestCatalog(t *testing.T) {
	out := render(t, "catalog", map[string]interface{}{
		"Title": "Properties",
		"View": domain.Loaded([]domain.Property{
			{ID: "7", Name: "Cabaña del Lago", Location: "Villa La Angostura", Price: 120},
		}),
	})
	assert.Contains(t, out, `href="/properties/7"`)
	assert.Contains(t, out, "Cabaña del Lago")
	assert.Contains(t, out, "$120/night")
	assert.Contains(t, out, domain.PlaceholderImage)

	out = render(t, "catalog", map[string]interface{}{
		"Title": "Properties",
		"View":  domain.Failed[[]domain.Property](domain.MsgLoadPropertiesFail),
	})
	assert.Contains(t, out, domain.MsgLoadPropertiesFail)
	assert.NotContains(t, out, "property-card")
}

func TestBookingForm_Submitting(t *testing.T) {
	form := domain.NewBookingForm("7", 100)
	require.NoError(t, form.Edit("2024-08-20", "2024-08-23", 2))
	_, err := form.BeginSubmit()
	require.NoError(t, err)
	snap := form.Snapshot()

	out := render(t, "booking_form", map[string]interface{}{"Form": &snap})
	assert.Contains(t, out, "Processing...")
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "$100 × 3 nights")
	assert.Contains(t, out, "$300")
	assert.Contains(t, out, "You won't be charged yet")
}

func TestBookingForm_Idle(t *testing.T) {
	snap := domain.NewBookingForm("7", 100).Snapshot()
	out := render(t, "booking_form", map[string]interface{}{"Form": &snap})
	assert.Contains(t, out, ">Reserve<")
	assert.NotContains(t, out, "Processing...")
	assert.NotContains(t, out, "price-breakdown")
	assert.Contains(t, out, `<option value="1" selected>1 guest</option>`)
	assert.Contains(t, out, `<option value="6">6 guests</option>`)
}

func TestSummaryPage(t *testing.T) {
	q, err := domain.QuoteStay("2024-08-20", "2024-08-23", 100)
	require.NoError(t, err)
	summary := domain.NewOrderSummary(domain.Property{Name: "Casa"}, q, 65)
	policy := domain.NewCancellationPolicy(q.CheckIn)

	out := render(t, "summary", map[string]interface{}{
		"Title":   "Order summary",
		"Summary": &summary,
		"Policy":  &policy,
		"BackURL": "/properties/7",
	})
	assert.Contains(t, out, "Booking Fee")
	assert.Contains(t, out, "$65")
	assert.Contains(t, out, "$365")
	assert.Contains(t, out, "Free cancellation before Aug 19")
	assert.Contains(t, out, "Follow the house rules")
}
