package notify_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/internal/application/ports"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/notify"
)

func TestCollector_AcumulaYReenvia(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewCollector(notify.NewLogNotifier(zerolog.New(&buf)))

	assert.NotNil(t, c.Notifications())
	assert.Empty(t, c.Notifications())

	c.Notify(ports.Notification{Title: "Customer Created Successfully!", Severity: ports.SeveritySuccess})
	c.Notify(ports.Notification{Title: "Error deleting customer", Severity: ports.SeverityError})

	got := c.Notifications()
	require.Len(t, got, 2)
	assert.Equal(t, "Customer Created Successfully!", got[0].Title)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "Error deleting customer")
}

func TestCollector_SinSiguiente(t *testing.T) {
	c := notify.NewCollector(nil)
	c.Notify(ports.Notification{Title: "x", Severity: ports.SeverityInfo})
	assert.Len(t, c.Notifications(), 1)
}
