//go:build !linux

package collector

import (
	"FlowScope/internal/diag"
	"FlowScope/internal/model"
	"errors"
)

// RingBufferSource requires linux. This stub keeps non-linux development
// builds compiling; the agent falls back to a channel source.
type RingBufferSource struct{}

func NewRingBufferSource(objectPath string, bufferBytes int, metrics *diag.Metrics) (*RingBufferSource, error) {
	return nil, errors.New("ring buffer source requires linux")
}

func (s *RingBufferSource) Drain(max int) ([]model.RawEvent, error) { return nil, nil }
func (s *RingBufferSource) Stats() model.SourceStats                { return model.SourceStats{} }
func (s *RingBufferSource) Close() error                            { return nil }
