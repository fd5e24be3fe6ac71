package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoToStep_ClearsOverlays(t *testing.T) {
	seqs := [][]Step{
		{StepResults},
		{StepScan, StepLanding},
		{StepDocumentType, StepResults, StepScan},
	}
	for _, seq := range seqs {
		n := NewNavigation()
		for _, s := range seq {
			n.ToggleProfile()
			n.GoToStep(s)
			assert.False(t, n.ShowingProfile())
			assert.False(t, n.ShowingAbout())
		}
		assert.Equal(t, seq[len(seq)-1], n.Step())
	}
}

func TestGoBack(t *testing.T) {
	n := NewNavigation()
	n.GoBack()
	assert.Equal(t, StepLanding, n.Step(), "back from landing is a no-op")

	n.GoToStep(StepResults)
	want := []Step{StepDocumentType, StepScan, StepLanding}
	for _, w := range want {
		n.GoBack()
		assert.Equal(t, w, n.Step())
	}
	n.GoBack()
	assert.Equal(t, StepLanding, n.Step())
}

func TestGoBack_KeepsOverlay(t *testing.T) {
	n := NewNavigation()
	n.GoToStep(StepScan)
	n.ToggleProfile()
	n.GoBack()
	assert.Equal(t, StepLanding, n.Step())
	assert.True(t, n.ShowingProfile())
}

func TestToggleProfile_ClosesAbout(t *testing.T) {
	n := NewNavigation()
	n.ToggleAbout()
	assert.True(t, n.ShowingAbout())

	n.ToggleProfile()
	assert.True(t, n.ShowingProfile())
	assert.False(t, n.ShowingAbout())

	n.ToggleProfile()
	assert.False(t, n.ShowingProfile())
	assert.False(t, n.ShowingAbout())
}

func TestGoToHome_And_Reset(t *testing.T) {
	for name, op := range map[string]func(*Navigation){
		"home":  (*Navigation).GoToHome,
		"reset": (*Navigation).Reset,
	} {
		t.Run(name, func(t *testing.T) {
			n := NewNavigation()
			n.GoToStep(StepResults)
			n.ToggleProfile()
			op(n)
			assert.Equal(t, StepLanding, n.Step())
			assert.False(t, n.ShowingProfile())
			assert.False(t, n.ShowingAbout())
			op(n)
			assert.Equal(t, StepLanding, n.Step())
		})
	}
}

func TestNext(t *testing.T) {
	n := NewNavigation()
	n.Next()
	assert.Equal(t, StepLanding, n.Step(), "landing has no next")

	n.StartScan()
	n.Next()
	assert.Equal(t, StepDocumentType, n.Step())
	n.Next()
	assert.Equal(t, StepResults, n.Step())
	n.Next()
	assert.Equal(t, StepResults, n.Step())
}

func TestHeaderControls(t *testing.T) {
	n := NewNavigation()
	assert.False(t, n.ShowBack())
	assert.True(t, n.ShowScanButton())

	n.ToggleProfile()
	assert.False(t, n.ShowScanButton())

	n.GoToStep(StepScan)
	assert.True(t, n.ShowBack())
	assert.False(t, n.ShowScanButton())
}

func TestCompose(t *testing.T) {
	n := NewNavigation()
	assert.Equal(t, ScreenLanding, Compose(n))

	for step, want := range map[Step]Screen{
		StepLanding:      ScreenLanding,
		StepScan:         ScreenScan,
		StepDocumentType: ScreenDocumentType,
		StepResults:      ScreenResults,
	} {
		n.GoToStep(step)
		assert.Equal(t, want, Compose(n), step.String())
		n.ToggleProfile()
		assert.Equal(t, ScreenProfile, Compose(n), "profile hides %s", step)
		n.ToggleAbout()
		assert.Equal(t, want, Compose(n), "about keeps %s", step)
	}
}
