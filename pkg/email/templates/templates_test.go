package templates_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imic/pkg/email/templates"
)

func TestContactNotification(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.ContactNotification(templates.ContactData{
		Name:       "Sara <b>",
		Email:      "sara@example.com",
		Phone:      "+20 100 000 0000",
		Message:    "Kitchen redesign",
		Location:   "Cairo",
		UnitType:   "villa",
		ReceivedAt: time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC),
	}))
	require.NoError(t, err)

	assert.Contains(t, html, "New contact request")
	assert.Contains(t, html, "sara@example.com")
	assert.Contains(t, html, "Kitchen redesign")
	assert.Contains(t, html, "Sara &lt;b&gt;")
	assert.Contains(t, html, "2025-05-01 09:30 UTC")
}

func TestAppointmentNotification(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.AppointmentNotification(templates.AppointmentData{
		Name:  "Omar",
		Phone: "0100",
		Date:  "2025-06-01",
		Time:  "14:30",
	}))
	require.NoError(t, err)

	assert.Contains(t, html, "New appointment request")
	assert.Contains(t, html, "2025-06-01")
	assert.Contains(t, html, "14:30")
}
