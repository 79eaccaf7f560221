package shader

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/engine/shading"
	"github.com/Faultbox/lathe/internal/logger"
)

// Set holds one linked Program per shading descriptor.
type Set struct {
	programs map[shading.ID]*Program
	order    []shading.ID
}

// NewSet compiles every descriptor. On failure the programs already linked
// are deleted and the error names the program that failed.
func NewSet(descs []shading.Descriptor) (*Set, error) {
	s := &Set{programs: make(map[shading.ID]*Program, len(descs))}

	for _, d := range descs {
		uniforms := make([]string, 0, len(d.Uniforms))
		for _, u := range d.Uniforms {
			uniforms = append(uniforms, u.GLSLName())
		}

		p, err := NewProgram(string(d.ID), d.Vertex, d.Fragment, uniforms...)
		if err != nil {
			s.Delete()
			return nil, fmt.Errorf("program %s: %w", d.ID, err)
		}
		for _, u := range uniforms {
			if p.Location(u) < 0 {
				logger.Debug("uniform not active", zap.String("program", p.Name), zap.String("uniform", u))
			}
		}

		s.programs[d.ID] = p
		s.order = append(s.order, d.ID)
	}

	logger.Info("shading programs linked", zap.Int("count", len(s.order)))
	return s, nil
}

// Get returns the program for id.
func (s *Set) Get(id shading.ID) (*Program, bool) {
	p, ok := s.programs[id]
	return p, ok
}

// Delete releases every program in reverse creation order.
func (s *Set) Delete() {
	for i := len(s.order) - 1; i >= 0; i-- {
		s.programs[s.order[i]].Delete()
	}
	s.programs = map[shading.ID]*Program{}
	s.order = nil
}
