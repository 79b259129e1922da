package cursor

import "log/slog"

// TrackerOption configures a [Tracker] during creation.
//
// Example:
//
//	// Planar world coordinates (default, for 2D cameras)
//	t := cursor.NewTracker()
//
//	// World rays (for 3D cameras)
//	t := cursor.NewTracker(cursor.WithProjection3D())
type TrackerOption func(*trackerOptions)

// trackerOptions holds optional configuration for Tracker creation.
type trackerOptions struct {
	mode   Projection
	logger *slog.Logger
}

// defaultTrackerOptions returns the default tracker options.
func defaultTrackerOptions() trackerOptions {
	return trackerOptions{
		mode:   Projection2D,
		logger: nil, // Package logger applies when nil.
	}
}

// WithProjection2D selects planar world coordinates. This is the default;
// the option exists to state the choice explicitly.
func WithProjection2D() TrackerOption {
	return func(o *trackerOptions) {
		o.mode = Projection2D
	}
}

// WithProjection3D selects world rays instead of planar coordinates. The
// mode is fixed for the tracker's lifetime.
func WithProjection3D() TrackerOption {
	return func(o *trackerOptions) {
		o.mode = Projection3D
	}
}

// WithLogger sets a logger for this tracker, overriding the package logger
// configured with [SetLogger].
func WithLogger(l *slog.Logger) TrackerOption {
	return func(o *trackerOptions) {
		o.logger = l
	}
}
