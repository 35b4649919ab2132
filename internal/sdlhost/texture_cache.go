package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// textureCache keeps the most recently used textures, destroying the
// least recently used one when full.
type textureCache[K comparable] struct {
	textures map[K]*sdl.Texture
	order    []K // least recently used first
	maxSize  int
}

func newTextureCache[K comparable](maxSize int) *textureCache[K] {
	return &textureCache[K]{
		textures: make(map[K]*sdl.Texture, maxSize),
		order:    make([]K, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *textureCache[K]) get(key K) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

func (c *textureCache[K]) set(key K, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *textureCache[K]) moveToEnd(key K) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache[K]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *textureCache[K]) destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	clear(c.textures)
	c.order = c.order[:0]
}
