package testutil

import (
	"io"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Views is a minimal fiber.Views engine for handler tests. It writes the
// template name and remembers the data of the last render.
type Views struct {
	mu       sync.Mutex
	name     string
	data     fiber.Map
	layouts  []string
	rendered int
}

// Load implements fiber.Views.
func (*Views) Load() error { return nil }

// Render implements fiber.Views.
func (v *Views) Render(w io.Writer, name string, data any, layouts ...string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.name = name
	v.layouts = layouts
	v.rendered++

	if m, ok := data.(fiber.Map); ok {
		v.data = m
	}

	_, err := io.WriteString(w, name)

	return err
}

// Last returns the name, data and layouts of the last render.
func (v *Views) Last() (string, fiber.Map, []string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.name, v.data, v.layouts
}

// Count returns how often Render was called.
func (v *Views) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rendered
}
