package tui

import (
	"strings"
	"testing"

	"github.com/termcade/termcade/internal/core"
)

func TestMenuGreetsConnectedUser(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

	m := NewMenuModel(nil, cfg, "ada")
	if !strings.Contains(m.View(), "Welcome, ada") {
		t.Error("menu does not greet the connected user")
	}

	local := NewMenuModel(nil, cfg, "")
	if strings.Contains(local.View(), "Welcome,") {
		t.Error("local menu rendered a greeting for an empty username")
	}
}
