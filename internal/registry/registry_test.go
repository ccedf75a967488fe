package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/niwa/internal/config"
	"github.com/vovakirdan/niwa/internal/core"
)

type stubGame struct {
	id         string
	configured bool
	fail       bool
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Configure(config.Config) error {
	if g.fail {
		return errors.New("boom")
	}
	g.configured = true
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	assert.True(t, Exists("stub_a"))
	g, err := Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, "stub_a", g.ID())

	var found bool
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			assert.Equal(t, "Stub stub_a", info.Title)
		}
	}
	assert.True(t, found)

	assert.Panics(t, func() {
		Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	assert.Error(t, err)
	assert.False(t, Exists("no_such_game"))
}

func TestCreateConfigured(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_c", func() Game { return &stubGame{id: "stub_c", fail: true} })

	g, err := CreateConfigured("stub_b", config.Default())
	require.NoError(t, err)
	assert.True(t, g.(*stubGame).configured)

	_, err = CreateConfigured("stub_c", config.Default())
	assert.Error(t, err)
}
