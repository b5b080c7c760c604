package dispatch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayaan-qadri/wagtail/internal/config"
	"github.com/ayaan-qadri/wagtail/internal/dom"
	"github.com/ayaan-qadri/wagtail/internal/state"
	"github.com/ayaan-qadri/wagtail/internal/zone"
)

func newZone(t *testing.T, modify func(*config.Config)) (*zone.Controller, *dom.Element) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.ActiveClass = "hovered"
	if modify != nil {
		modify(cfg)
	}
	require.NoError(t, cfg.Validate())

	element := dom.NewElement("drop-target")
	c := zone.NewController(cfg, element)
	t.Cleanup(c.Detach)

	return c, element
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	d := NewDispatcher()
	t.Cleanup(d.Stop)
	return d
}

func TestDispatcher_InvokesBoundHandler(t *testing.T) {
	d := newTestDispatcher(t)

	var got []string
	d.Bind(Binding{Event: "dragover", Handler: func(evt *zone.Event) {
		got = append(got, evt.Name)
	}})

	d.Dispatch(&zone.Event{Name: "dragover"})
	d.Dispatch(&zone.Event{Name: "unbound"})

	assert.Equal(t, []string{"dragover"}, got)
}

func TestDispatcher_NoopBindingSuppressesDefault(t *testing.T) {
	d := newTestDispatcher(t)
	c, _ := newZone(t, nil)

	d.Bind(Binding{Event: "drop", Handler: c.Noop, PreventDefault: true})

	evt := &zone.Event{Name: "drop", Cancelable: true}
	d.Dispatch(evt)

	assert.True(t, evt.DefaultPrevented())
	assert.Equal(t, state.ModeInactive, c.Mode())
}

func TestDispatcher_PreventDefaultIgnoredWhenNotCancelable(t *testing.T) {
	d := newTestDispatcher(t)
	c, _ := newZone(t, nil)

	d.Bind(Binding{Event: "drop", Handler: c.Noop, PreventDefault: true})

	evt := &zone.Event{Name: "drop"}
	d.Dispatch(evt)

	assert.False(t, evt.DefaultPrevented())
}

func TestDispatcher_BindingParamsReachHandler(t *testing.T) {
	d := newTestDispatcher(t)
	c, _ := newZone(t, nil)

	d.Bind(Binding{
		Event:   "panel:toggle",
		Handler: c.Switch,
		Params:  map[string]any{"active": true},
	})

	d.Dispatch(&zone.Event{Name: "panel:toggle"})
	assert.Equal(t, state.ModeActive, c.Mode())
}

func TestDispatcher_DetailWinsOverBindingParams(t *testing.T) {
	d := newTestDispatcher(t)
	c, _ := newZone(t, nil)

	d.Bind(Binding{
		Event:   "panel:toggle",
		Handler: c.Switch,
		Params:  map[string]any{"active": true},
	})

	d.Dispatch(&zone.Event{
		Name:   "panel:toggle",
		Detail: map[string]any{"active": false},
	})
	assert.Equal(t, state.ModeInactive, c.Mode())
}

func TestDispatcher_ParamsRestoredAfterHandler(t *testing.T) {
	d := newTestDispatcher(t)

	d.Bind(Binding{
		Event:   "panel:toggle",
		Handler: func(evt *zone.Event) {},
		Params:  map[string]any{"active": true},
	})

	evt := &zone.Event{Name: "panel:toggle"}
	d.Dispatch(evt)
	assert.Nil(t, evt.Params)
}

func TestDispatcher_MultipleBindingsInOrder(t *testing.T) {
	d := newTestDispatcher(t)

	var order []string
	d.Bind(Binding{Event: "dragover", Handler: func(evt *zone.Event) {
		order = append(order, "first")
	}})
	d.Bind(Binding{Event: "dragover", Handler: func(evt *zone.Event) {
		order = append(order, "second")
	}})

	d.Dispatch(&zone.Event{Name: "dragover"})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcher_IndependentControllers(t *testing.T) {
	d := newTestDispatcher(t)

	sidebar, sidebarEl := newZone(t, nil)
	footer, footerEl := newZone(t, func(cfg *config.Config) {
		cfg.ActiveClass = "highlighted"
	})

	d.Bind(Binding{Event: "sidebar:toggle", Handler: sidebar.Switch})
	d.Bind(Binding{Event: "footer:toggle", Handler: footer.Switch})

	d.Dispatch(&zone.Event{Name: "sidebar:toggle", Detail: map[string]any{"active": true}})

	assert.Equal(t, state.ModeActive, sidebar.Mode())
	assert.Equal(t, state.ModeInactive, footer.Mode())
	assert.True(t, sidebarEl.HasClass("hovered"))
	assert.False(t, footerEl.HasClass("highlighted"))
}

func TestDispatcher_PublishDeliversAsynchronously(t *testing.T) {
	d := newTestDispatcher(t)

	var mu sync.Mutex
	var got []string
	d.Bind(Binding{Event: "dragover", Handler: func(evt *zone.Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, evt.Name)
	}})

	d.Publish(&zone.Event{Name: "dragover"})
	d.Publish(&zone.Event{Name: "dragover"})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestDispatcher_PublishSerializesDeliveries(t *testing.T) {
	d := newTestDispatcher(t)

	var mu sync.Mutex
	var order []int
	d.Bind(Binding{Event: "tick", Handler: func(evt *zone.Event) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, evt.Detail["seq"].(int))
	}})

	for i := 0; i < 20; i++ {
		d.Publish(&zone.Event{Name: "tick", Detail: map[string]any{"seq": i}})
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 20
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for i, seq := range order {
		assert.Equal(t, i, seq)
	}
}
