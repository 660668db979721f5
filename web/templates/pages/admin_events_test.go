package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"puja_site_echo/internal/events"
)

func TestEventListEscapesTitles(t *testing.T) {
	rows := events.Rows([]events.Record{{Title: `<script>alert(1)</script>`, Date: "2025-09-28"}})

	var buf bytes.Buffer
	if err := EventList(rows).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Errorf("title not escaped: %s", out)
	}
	if !strings.Contains(out, `action="/admin/events/0/edit"`) || !strings.Contains(out, `action="/admin/events/0/delete"`) {
		t.Errorf("row actions missing: %s", out)
	}
}

func TestEventsPanelKeepsFormInput(t *testing.T) {
	var buf bytes.Buffer
	props := EventsPanelProps{Form: events.Form{Title: `Puja "Meeting"`, Date: "2025-09-28"}}
	if err := EventsPanel(props).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `value="Puja &#34;Meeting&#34;"`) {
		t.Errorf("title input not filled: %s", out)
	}
	if !strings.Contains(out, `value="2025-09-28"`) {
		t.Errorf("date input not filled: %s", out)
	}
}
