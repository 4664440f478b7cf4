package gui

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options are the persistable tunables the pipeline consults. They live
// in [Memory] and can be round-tripped through YAML by the embedding
// application.
type Options struct {
	// ScreenReader makes non-interactive but focusable widgets (labels)
	// participate in tab navigation, so assistive tools can reach them.
	ScreenReader bool `yaml:"screen_reader"`

	// AnimationTime is the default duration, in seconds, of boolean
	// transitions driven by [CtxRef.AnimateBool].
	AnimationTime float32 `yaml:"animation_time"`

	// ItemSpacing is the default gap between adjacent widgets, in
	// points. Interaction uses half of it to fatten narrow hit targets.
	ItemSpacing Vec2 `yaml:"item_spacing"`

	// Interaction holds the hit-testing constants.
	Interaction InteractionOptions `yaml:"interaction"`

	// Tessellation controls how shapes are turned into meshes.
	Tessellation TessellationOptions `yaml:"tessellation"`
}

// InteractionOptions are empirically tuned hit-testing constants.
// Preserved as configuration rather than re-derived.
type InteractionOptions struct {
	// MaxInteractExpansion caps, per side, how much a hit rectangle may
	// be fattened beyond the visual rectangle, in points.
	MaxInteractExpansion float32 `yaml:"max_interact_expansion"`

	// InteractGap keeps fattened hit rectangles of adjacent widgets from
	// touching, so two things are never hovered at once.
	InteractGap float32 `yaml:"interact_gap"`

	// ResizeGrabRadius pads area hit-testing so window resize edges
	// remain grabbable slightly outside the window.
	ResizeGrabRadius float32 `yaml:"resize_grab_radius"`
}

// DefaultOptions returns the options every new Context starts with.
func DefaultOptions() Options {
	return Options{
		AnimationTime: 1.0 / 12.0,
		ItemSpacing:   Vec2{X: 8, Y: 3},
		Interaction: InteractionOptions{
			MaxInteractExpansion: 5,
			InteractGap:          0.5,
			ResizeGrabRadius:     5,
		},
		Tessellation: TessellationOptions{
			AntiAliased: true,
		},
	}
}

// LoadOptions reads options from a YAML file, with defaults filled in
// for anything the file omits.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}

// Save writes the options to a YAML file.
func (o Options) Save(path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write options: %w", err)
	}
	return nil
}
