package skin

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrMethodNotBound is returned by Call for a name with no bound method.
var ErrMethodNotBound = errors.New("method not bound")

// Method is a caller-supplied operation bound to a Collection. The
// collection it was called on is passed as c, so a Method can use any
// facade helper, e.g. c.FindByID.
type Method func(ctx context.Context, c *Collection, args ...interface{}) (interface{}, error)

// Bind installs fn under name, replacing any previous binding.
func (c *Collection) Bind(name string, fn Method) *Collection {
	c.mu.Lock()
	c.methods[name] = fn
	c.mu.Unlock()
	return c
}

// BindAll installs every method in methods.
func (c *Collection) BindAll(methods map[string]Method) *Collection {
	c.mu.Lock()
	for name, fn := range methods {
		c.methods[name] = fn
	}
	c.mu.Unlock()
	return c
}

// HasMethod reports whether name is bound.
func (c *Collection) HasMethod(name string) bool {
	c.mu.RLock()
	_, ok := c.methods[name]
	c.mu.RUnlock()
	return ok
}

// Methods returns the bound method names in sorted order.
func (c *Collection) Methods() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Call invokes the method bound under name with c as its receiver.
func (c *Collection) Call(ctx context.Context, name string, args ...interface{}) (interface{}, error) {
	c.mu.RLock()
	fn, ok := c.methods[name]
	c.mu.RUnlock()
	if !ok || fn == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrMethodNotBound, c.Name(), name)
	}
	return fn(ctx, c, args...)
}
