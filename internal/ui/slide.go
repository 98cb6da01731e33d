package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Transition is a running open/close slide of the layer panel. Nothing has
// to wait for it; Done is closed when it finishes or is canceled.
type Transition struct {
	expanding bool
	anim      *fyne.Animation

	once     sync.Once
	mu       sync.Mutex
	canceled bool
	done     chan struct{}
}

func newTransition(expanding bool) *Transition {
	return &Transition{
		expanding: expanding,
		done:      make(chan struct{}),
	}
}

// Expanding reports whether the transition opens the panel
func (t *Transition) Expanding() bool {
	return t.expanding
}

// Done is closed once the transition has completed or been canceled
func (t *Transition) Done() <-chan struct{} {
	return t.done
}

// Canceled reports whether the transition was stopped before completing
func (t *Transition) Canceled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.canceled
}

// Cancel stops the transition where it is. It is a no-op once Done is closed.
func (t *Transition) Cancel() {
	t.once.Do(func() {
		t.mu.Lock()
		t.canceled = true
		t.mu.Unlock()
		if t.anim != nil {
			t.anim.Stop()
		}
		close(t.done)
	})
}

func (t *Transition) finish(fn func()) {
	t.once.Do(func() {
		if fn != nil {
			fn()
		}
		close(t.done)
	})
}

func (t *Transition) finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// slidePanel clips content to a fraction of its height so it can slide
// open and closed.
type slidePanel struct {
	content  fyne.CanvasObject
	clip     *container.Scroll
	fraction float32
}

func newSlidePanel(content fyne.CanvasObject, expanded bool) *slidePanel {
	s := &slidePanel{
		content: content,
		clip:    container.NewVScroll(content),
	}
	if expanded {
		s.setFraction(1)
	} else {
		s.setFraction(0)
		s.clip.Hide()
	}
	return s
}

// Object returns the canvas object to place in a layout
func (s *slidePanel) Object() fyne.CanvasObject {
	return s.clip
}

// Visible reports whether any part of the panel is showing
func (s *slidePanel) Visible() bool {
	return s.clip.Visible()
}

func (s *slidePanel) setFraction(f float32) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	s.fraction = f
	full := s.content.MinSize()
	s.clip.SetMinSize(fyne.NewSize(full.Width, full.Height*f))
	s.clip.Refresh()
}

// fit resizes the panel to its content after the content grew or shrank
func (s *slidePanel) fit() {
	s.setFraction(s.fraction)
}

// slide animates the panel towards expanded or collapsed over d
func (s *slidePanel) slide(expanding bool, d time.Duration) *Transition {
	t := newTransition(expanding)
	if expanding {
		s.clip.Show()
	}

	complete := func() {
		if expanding {
			s.setFraction(1)
		} else {
			s.setFraction(0)
			s.clip.Hide()
		}
	}

	if d <= 0 {
		t.finish(complete)
		return t
	}

	start := s.fraction
	target := float32(0)
	if expanding {
		target = 1
	}

	t.anim = fyne.NewAnimation(d, func(progress float32) {
		if t.finished() {
			return
		}
		s.setFraction(start + (target-start)*progress)
		if progress >= 1 {
			t.finish(complete)
		}
	})
	t.anim.Curve = fyne.AnimationEaseInOut
	t.anim.Start()
	return t
}
