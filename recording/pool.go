package recording

import (
	"image"

	"github.com/gogpu/fx"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Each Add operation clones mutable resources to ensure immutability.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths  []*fx.Path
	images []image.Image
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*fx.Path, 0, 64),
		images: make([]image.Image, 0, 8),
	}
}

// AddPath adds a clone of path to the pool and returns its reference.
func (p *ResourcePool) AddPath(path *fx.Path) PathRef {
	var cloned *fx.Path
	if path != nil {
		cloned = path.Clone()
	}
	p.paths = append(p.paths, cloned)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference, or nil.
func (p *ResourcePool) GetPath(ref PathRef) *fx.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddImage adds an image to the pool and returns its reference.
// Images are stored by reference.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference, or nil.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
	p.images = p.images[:0]
}

// Clone creates a deep copy of the resource pool.
// Paths are cloned; images are shared.
func (p *ResourcePool) Clone() *ResourcePool {
	clone := &ResourcePool{
		paths:  make([]*fx.Path, len(p.paths)),
		images: make([]image.Image, len(p.images)),
	}
	for i, path := range p.paths {
		if path != nil {
			clone.paths[i] = path.Clone()
		}
	}
	copy(clone.images, p.images)
	return clone
}
