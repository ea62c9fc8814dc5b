package rules

import (
	"errors"
	"math/bits"

	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// MissingTextureRule requires every referenced image to exist in the scene graph
// and, unless packed, on disk.
type MissingTextureRule struct{}

func (MissingTextureRule) offending(t validation.Target) (nameList, error) {
	refs, lookupErr := scopeImages(t)
	var names nameList
	for _, name := range refs {
		img, err := t.Graph.Image(name)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			names.add(name)
			continue
		}
		if !imageOnDisk(t.Files, img) {
			names.add(name)
		}
	}
	return names, lookupErr
}

func imageOnDisk(files domain.FileProbe, img domain.Image) bool {
	if img.Packed {
		return true
	}
	if img.Filepath == "" {
		return false
	}
	if files == nil {
		return true
	}
	return files.Exists(img.Filepath)
}

func (r MissingTextureRule) Validate(t validation.Target) domain.ValidationResult {
	names, err := r.offending(t)
	if err != nil {
		return validation.ReferenceFailure(err)
	}
	return offenders(names, "Missing textures", "All textures are present.")
}

// Fix removes the dangling image references. Removing an image also clears every
// node that pointed at it.
func (r MissingTextureRule) Fix(t validation.Target) error {
	names, err := r.offending(t)
	if err := fatal(err); err != nil {
		return err
	}
	cmds := make([]domain.Command, 0, len(names))
	for _, name := range names {
		cmds = append(cmds, domain.Remove(domain.KindImage, name))
	}
	return applyAll(t.Graph, cmds)
}

// SquareTextureRule requires image textures to be square. It has no fix.
type SquareTextureRule struct{}

func (SquareTextureRule) Validate(t validation.Target) domain.ValidationResult {
	imgs, err := resolvedImages(t)
	if err != nil {
		return validation.ReferenceFailure(err)
	}
	var names nameList
	for _, img := range imgs {
		if !img.IsSquare() {
			names.add(img.Name)
		}
	}
	return offenders(names, "Textures that are not square", "All textures are square.")
}

// TextureSizeRule requires image widths to be a power of two no larger than MaxSize.
type TextureSizeRule struct {
	MaxSize int
}

func (r TextureSizeRule) validSize(width int) bool {
	return domain.IsPowerOfTwo(width) && width <= r.MaxSize
}

func (r TextureSizeRule) offending(t validation.Target) ([]domain.Image, error) {
	imgs, err := resolvedImages(t)
	var bad []domain.Image
	for _, img := range imgs {
		if !r.validSize(img.Width) {
			bad = append(bad, img)
		}
	}
	return bad, err
}

func (r TextureSizeRule) Validate(t validation.Target) domain.ValidationResult {
	bad, err := r.offending(t)
	if err != nil {
		return validation.ReferenceFailure(err)
	}
	var names nameList
	for _, img := range bad {
		names.add(img.Name)
	}
	return offenders(names, "Textures with invalid size", "All textures have a valid size.")
}

// Fix rescales square images down to the nearest power of two, capped at MaxSize.
// Non-square images are left alone.
func (r TextureSizeRule) Fix(t validation.Target) error {
	bad, err := r.offending(t)
	if err := fatal(err); err != nil {
		return err
	}
	var cmds []domain.Command
	for _, img := range bad {
		if !img.IsSquare() || img.Width <= 0 {
			continue
		}
		size := r.TargetSize(img.Width)
		cmds = append(cmds, domain.SetProperty(domain.KindImage, img.Name, domain.PropSize, [2]int{size, size}))
	}
	return applyAll(t.Graph, cmds)
}

// TargetSize returns min(2^floor(log2(width)), MaxSize) for a positive width.
func (r TextureSizeRule) TargetSize(width int) int {
	size := 1 << (bits.Len(uint(width)) - 1)
	if size > r.MaxSize {
		return r.MaxSize
	}
	return size
}
