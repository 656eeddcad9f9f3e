package ggplot

// Option configures a Backend during creation.
//
// Example:
//
//	b := ggplot.New(bounds, host,
//	    ggplot.WithImageLookup(registry),
//	    ggplot.WithView(ggplot.View{X: 10, Y: 5, Scale: 2}),
//	)
type Option func(*options)

// options holds optional configuration for Backend creation.
type options struct {
	lookup        ImageLookup
	view          View
	pixelFallback bool
	noClip        bool
}

// defaultOptions returns the default backend options.
func defaultOptions() options {
	return options{
		view: DefaultView,
	}
}

// WithImageLookup sets where native image sizes are looked up. Without a
// lookup the Original and Fit image sizes fall back to the bounds.
func WithImageLookup(l ImageLookup) Option {
	return func(o *options) {
		o.lookup = l
	}
}

// WithView sets the initial pan/zoom state.
func WithView(v View) Option {
	return func(o *options) {
		o.view = v
	}
}

// WithPixelFallback draws pixels as unit line segments even when the
// painter implements paint.PixelPainter.
func WithPixelFallback() Option {
	return func(o *options) {
		o.pixelFallback = true
	}
}

// WithoutClip leaves the painter's clip rectangle untouched.
// By default New clips the painter to the bounds.
func WithoutClip() Option {
	return func(o *options) {
		o.noClip = true
	}
}
